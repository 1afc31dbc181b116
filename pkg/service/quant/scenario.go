package quant

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/model/config"
)

// Heuristic anchors around the median. Not derived from loss data; do not retune.
const (
	varianceRatio   = 0.6
	p5VarianceSpan  = 1.5
	p5Floor         = 0.15
	p25Multiplier   = 0.55
	p75Multiplier   = 1.65
	p95Multiplier   = 1.8
	p95TailExponent = 2.2
)

// AdjustedBase scales a scenario base cost by organization size, revenue and security posture
func AdjustedBase(baseCost float64, factors model.OrganizationFactors) float64 {
	return baseCost * factors.SizeFactor * factors.RevenueFactor * (1 - factors.RiskReduction)
}

// Distribution synthesizes the five-point cost distribution around adjustedBase
func Distribution(adjustedBase float64) (model.PercentileDistribution, error) {
	if err := checkFinite("distribution", adjustedBase); err != nil {
		return model.PercentileDistribution{}, err
	}

	variance := adjustedBase * varianceRatio
	points := []float64{
		math.Max(adjustedBase*p5Floor, adjustedBase-variance*p5VarianceSpan),
		adjustedBase * p25Multiplier,
		adjustedBase,
		adjustedBase * p75Multiplier,
		adjustedBase * p95Multiplier * p95TailExponent,
	}

	rounded := make([]int64, len(points))
	for i, p := range points {
		v, err := roundCurrency("distribution", p)
		if err != nil {
			return model.PercentileDistribution{}, err
		}
		rounded[i] = v
	}

	return model.PercentileDistribution{
		P5:     rounded[0],
		P25:    rounded[1],
		Median: rounded[2],
		P75:    rounded[3],
		P95:    rounded[4],
	}, nil
}

// GenerateScenarios produces one distribution per scenario, in catalog order
func GenerateScenarios(scenarios []config.ThreatScenario, factors model.OrganizationFactors) ([]model.ScenarioResult, error) {
	results := make([]model.ScenarioResult, 0, len(scenarios))
	for _, s := range scenarios {
		dist, err := Distribution(AdjustedBase(s.BaseCost, factors))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to generate scenario distribution",
				goerr.V(model.ScenarioKey, s.ID))
		}

		results = append(results, model.ScenarioResult{
			ID:          s.ID,
			Name:        s.Name,
			BaseCost:    s.BaseCost,
			Frequency:   s.Frequency,
			Severity:    s.Severity,
			Color:       s.Color,
			Percentiles: dist,
		})
	}
	return results, nil
}
