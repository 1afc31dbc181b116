package model

import (
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

// OrganizationProfile describes the organization being assessed
type OrganizationProfile struct {
	Employees      int     `json:"employees" yaml:"employees" toml:"employees"`
	Revenue        float64 `json:"revenue" yaml:"revenue" toml:"revenue"`
	InsuranceLimit float64 `json:"insuranceLimit" yaml:"insurance_limit" toml:"insurance_limit"`
}

// Value returns the numeric value of a bounds-checked field
func (p OrganizationProfile) Value(field types.InputField) (float64, bool) {
	switch field {
	case types.InputFieldEmployees:
		return float64(p.Employees), true
	case types.InputFieldRevenue:
		return p.Revenue, true
	case types.InputFieldInsuranceLimit:
		return p.InsuranceLimit, true
	default:
		return 0, false
	}
}

// SecurityControlSet holds the five independent security-control toggles
type SecurityControlSet struct {
	BackupsIsolated  bool `json:"backupsIsolated" yaml:"backups_isolated" toml:"backups_isolated"`
	MFAEnabled       bool `json:"mfaEnabled" yaml:"mfa_enabled" toml:"mfa_enabled"`
	PhishingTraining bool `json:"phishingTraining" yaml:"phishing_training" toml:"phishing_training"`
	VendorReviews    bool `json:"vendorReviews" yaml:"vendor_reviews" toml:"vendor_reviews"`
	IRTabletop       bool `json:"irTabletop" yaml:"ir_tabletop" toml:"ir_tabletop"`
}

// AllControlsEnabled returns a control set with every toggle on
func AllControlsEnabled() SecurityControlSet {
	return SecurityControlSet{
		BackupsIsolated:  true,
		MFAEnabled:       true,
		PhishingTraining: true,
		VendorReviews:    true,
		IRTabletop:       true,
	}
}

// NewSecurityControlSet builds a control set with the given controls enabled.
// Unknown IDs are ignored.
func NewSecurityControlSet(enabled ...types.ControlID) SecurityControlSet {
	var s SecurityControlSet
	for _, id := range enabled {
		s = s.With(id, true)
	}
	return s
}

// Enabled reports whether the given control is on
func (s SecurityControlSet) Enabled(id types.ControlID) bool {
	switch id {
	case types.ControlBackupsIsolated:
		return s.BackupsIsolated
	case types.ControlMFAEnabled:
		return s.MFAEnabled
	case types.ControlPhishingTraining:
		return s.PhishingTraining
	case types.ControlVendorReviews:
		return s.VendorReviews
	case types.ControlIRTabletop:
		return s.IRTabletop
	default:
		return false
	}
}

// With returns a copy of the set with one control switched
func (s SecurityControlSet) With(id types.ControlID, on bool) SecurityControlSet {
	switch id {
	case types.ControlBackupsIsolated:
		s.BackupsIsolated = on
	case types.ControlMFAEnabled:
		s.MFAEnabled = on
	case types.ControlPhishingTraining:
		s.PhishingTraining = on
	case types.ControlVendorReviews:
		s.VendorReviews = on
	case types.ControlIRTabletop:
		s.IRTabletop = on
	}
	return s
}

// EnabledControls returns the IDs of all enabled controls in display order
func (s SecurityControlSet) EnabledControls() []types.ControlID {
	var ids []types.ControlID
	for _, id := range types.AllControls() {
		if s.Enabled(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// EnabledCount returns the number of enabled controls
func (s SecurityControlSet) EnabledCount() int {
	return len(s.EnabledControls())
}
