package quant

import (
	"math"

	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

// BaseSecurityWeight is credited to every organization regardless of controls
const BaseSecurityWeight = 0.15

// controlWeights sum with BaseSecurityWeight to exactly 1.0
var controlWeights = map[types.ControlID]float64{
	types.ControlBackupsIsolated:  0.15,
	types.ControlMFAEnabled:       0.20,
	types.ControlPhishingTraining: 0.15,
	types.ControlVendorReviews:    0.25,
	types.ControlIRTabletop:       0.10,
}

const (
	employeeFloor        = 10.0
	employeeReference    = 100.0
	sizeCoefficient      = 0.2
	revenueFloor         = 1_000_000.0
	revenueReference     = 10_000_000.0
	revenueCoefficient   = 0.15
	reductionCoefficient = 0.65
	maxRiskReduction     = 0.75
)

// ControlWeight returns the security-score weight of a control
func ControlWeight(id types.ControlID) float64 {
	return controlWeights[id]
}

// ComputeFactors derives the security score, scale factors and risk reduction of an
// organization.
func ComputeFactors(profile model.OrganizationProfile, controls model.SecurityControlSet) (model.OrganizationFactors, error) {
	score := BaseSecurityWeight
	for _, id := range types.AllControls() {
		if controls.Enabled(id) {
			score += controlWeights[id]
		}
	}

	employees := math.Max(float64(profile.Employees), employeeFloor)
	sizeFactor := math.Max(1, math.Log10(employees/employeeReference)*sizeCoefficient+1)

	revenue := math.Max(profile.Revenue, revenueFloor)
	revenueFactor := math.Max(1, math.Log10(revenue/revenueReference)*revenueCoefficient+1)

	factors := model.OrganizationFactors{
		SecurityScore: score,
		SizeFactor:    sizeFactor,
		RevenueFactor: revenueFactor,
		RiskReduction: math.Min(score*reductionCoefficient, maxRiskReduction),
	}

	if err := checkFinite("factors",
		factors.SecurityScore, factors.SizeFactor, factors.RevenueFactor, factors.RiskReduction,
	); err != nil {
		return model.OrganizationFactors{}, err
	}

	return factors, nil
}
