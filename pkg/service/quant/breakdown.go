package quant

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/model/config"
)

// ReductionFactor returns the capped reduction of a category for the given controls.
// synergy is the bonus earned by the number of enabled controls.
func ReductionFactor(category config.CostCategory, controls model.SecurityControlSet, synergy float64) float64 {
	var direct float64
	if category.Control != "" && controls.Enabled(category.Control) {
		direct = category.Reduction
	}
	return math.Min(direct+synergy, config.MaxCategoryReduction)
}

// AllocateCosts applies control reductions and size scaling to every cost category
func AllocateCosts(catalog *config.Catalog, controls model.SecurityControlSet, sizeFactor float64) ([]model.CostBreakdownEntry, error) {
	if err := checkFinite("breakdown", sizeFactor); err != nil {
		return nil, err
	}

	synergy := catalog.SynergyBonus(controls.EnabledCount())

	entries := make([]model.CostBreakdownEntry, 0, len(catalog.Categories))
	for _, cat := range catalog.Categories {
		reduction := ReductionFactor(cat, controls, synergy)
		adjusted, err := roundCurrency("breakdown", cat.BaseCost*(1-reduction)*sizeFactor)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to allocate category cost",
				goerr.V(model.CategoryKey, cat.ID))
		}

		entries = append(entries, model.CostBreakdownEntry{
			ID:              cat.ID,
			Name:            cat.Name,
			Icon:            cat.Icon,
			BaseCost:        cat.BaseCost,
			ReductionFactor: reduction,
			AdjustedCost:    adjusted,
		})
	}
	return entries, nil
}
