package quant

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
)

// Aggregate sums the breakdown and packages the final result. It fails the whole
// assessment when any figure is not finite.
func Aggregate(profile model.OrganizationProfile, factors model.OrganizationFactors, scenarios []model.ScenarioResult, breakdown []model.CostBreakdownEntry) (*model.RiskAssessmentResult, error) {
	if err := checkFinite("aggregate", factors.SecurityScore, factors.RiskReduction, profile.InsuranceLimit); err != nil {
		return nil, err
	}

	var total int64
	for _, e := range breakdown {
		if e.AdjustedCost < 0 {
			return nil, goerr.New("negative adjusted cost",
				goerr.V(model.CategoryKey, e.ID),
				goerr.V(model.ValueKey, e.AdjustedCost))
		}
		if total > math.MaxInt64-e.AdjustedCost {
			return nil, goerr.Wrap(model.ErrNonFiniteValue, "total cost overflows",
				goerr.V(model.CategoryKey, e.ID))
		}
		total += e.AdjustedCost
	}

	var uninsured int64
	if gap := float64(total) - profile.InsuranceLimit; gap > 0 {
		v, err := roundCurrency("aggregate", gap)
		if err != nil {
			return nil, err
		}
		uninsured = v
	}

	return &model.RiskAssessmentResult{
		Scenarios:         scenarios,
		CostBreakdown:     breakdown,
		TotalCost:         total,
		SecurityScore:     int(math.Round(factors.SecurityScore * 100)),
		RiskReduction:     int(math.Round(factors.RiskReduction * 100)),
		UninsuredExposure: uninsured,
		Factors:           factors,
	}, nil
}
