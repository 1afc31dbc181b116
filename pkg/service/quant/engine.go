package quant

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/model/config"
)

// Engine turns an organization profile and control set into a risk assessment.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *config.Catalog
}

// New creates an engine over the given catalog. A nil catalog selects the default one.
func New(catalog *config.Catalog) (*Engine, error) {
	if catalog == nil {
		catalog = config.DefaultCatalog()
	}
	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog for engine")
	}
	return &Engine{catalog: catalog}, nil
}

// Catalog returns the catalog the engine computes against
func (e *Engine) Catalog() *config.Catalog {
	return e.catalog
}

// Assess runs the full pipeline. On any failure it returns a nil result.
func (e *Engine) Assess(profile model.OrganizationProfile, controls model.SecurityControlSet) (*model.RiskAssessmentResult, error) {
	factors, err := ComputeFactors(profile, controls)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute organization factors")
	}

	scenarios, err := GenerateScenarios(e.catalog.Scenarios, factors)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate scenarios")
	}

	breakdown, err := AllocateCosts(e.catalog, controls, factors.SizeFactor)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to allocate costs")
	}

	result, err := Aggregate(profile, factors, scenarios, breakdown)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to aggregate assessment")
	}

	return result, nil
}
