package model

import (
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

// OrganizationFactors is the output of the organization factor model
type OrganizationFactors struct {
	SecurityScore float64 `json:"securityScore"`
	SizeFactor    float64 `json:"sizeFactor"`
	RevenueFactor float64 `json:"revenueFactor"`
	RiskReduction float64 `json:"riskReduction"`
}

// PercentileDistribution is a five-point cost summary of a threat scenario, in whole currency units
type PercentileDistribution struct {
	P5     int64 `json:"5th"`
	P25    int64 `json:"25th"`
	Median int64 `json:"Median"`
	P75    int64 `json:"75th"`
	P95    int64 `json:"95th"`
}

// Get returns the value at the given key
func (d PercentileDistribution) Get(key types.PercentileKey) (int64, bool) {
	switch key {
	case types.P5:
		return d.P5, true
	case types.P25:
		return d.P25, true
	case types.Median:
		return d.Median, true
	case types.P75:
		return d.P75, true
	case types.P95:
		return d.P95, true
	default:
		return 0, false
	}
}

// Values returns the five points in key order
func (d PercentileDistribution) Values() []int64 {
	return []int64{d.P5, d.P25, d.Median, d.P75, d.P95}
}

// IsOrdered reports whether the points are non-negative and non-decreasing
func (d PercentileDistribution) IsOrdered() bool {
	values := d.Values()
	if values[0] < 0 {
		return false
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}

// ScenarioResult is a threat scenario with its synthesized cost distribution
type ScenarioResult struct {
	ID          types.ScenarioID       `json:"id"`
	Name        string                 `json:"name"`
	BaseCost    float64                `json:"baseCost"`
	Frequency   string                 `json:"frequency"`
	Severity    string                 `json:"severity"`
	Color       string                 `json:"color"`
	Percentiles PercentileDistribution `json:"percentiles"`
}

// CostBreakdownEntry is a cost category after control reductions and size scaling
type CostBreakdownEntry struct {
	ID              types.CategoryID `json:"id"`
	Name            string           `json:"name"`
	Icon            string           `json:"icon"`
	BaseCost        float64          `json:"baseCost"`
	ReductionFactor float64          `json:"reductionFactor"`
	AdjustedCost    int64            `json:"adjustedCost"`
}

// RiskAssessmentResult is the complete output of one engine invocation
type RiskAssessmentResult struct {
	Scenarios         []ScenarioResult     `json:"scenarios"`
	CostBreakdown     []CostBreakdownEntry `json:"costBreakdown"`
	TotalCost         int64                `json:"totalCost"`
	SecurityScore     int                  `json:"securityScore"`
	RiskReduction     int                  `json:"riskReduction"`
	UninsuredExposure int64                `json:"uninsuredExposure"`
	Factors           OrganizationFactors  `json:"factors"`
}

// Clone returns a deep copy of the result
func (r *RiskAssessmentResult) Clone() *RiskAssessmentResult {
	if r == nil {
		return nil
	}
	copied := *r
	copied.Scenarios = make([]ScenarioResult, len(r.Scenarios))
	copy(copied.Scenarios, r.Scenarios)
	copied.CostBreakdown = make([]CostBreakdownEntry, len(r.CostBreakdown))
	copy(copied.CostBreakdown, r.CostBreakdown)
	return &copied
}

// Scenario looks up a scenario result by ID
func (r *RiskAssessmentResult) Scenario(id types.ScenarioID) (ScenarioResult, bool) {
	for _, s := range r.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioResult{}, false
}

// Category looks up a cost breakdown entry by ID
func (r *RiskAssessmentResult) Category(id types.CategoryID) (CostBreakdownEntry, bool) {
	for _, e := range r.CostBreakdown {
		if e.ID == id {
			return e, true
		}
	}
	return CostBreakdownEntry{}, false
}
