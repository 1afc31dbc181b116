package types

// ControlID names one of the security-control toggles
type ControlID string

const (
	ControlBackupsIsolated  ControlID = "backups-isolated"
	ControlMFAEnabled       ControlID = "mfa-enabled"
	ControlPhishingTraining ControlID = "phishing-training"
	ControlVendorReviews    ControlID = "vendor-reviews"
	ControlIRTabletop       ControlID = "ir-tabletop"
)

// AllControls returns every control in display order
func AllControls() []ControlID {
	return []ControlID{
		ControlBackupsIsolated,
		ControlMFAEnabled,
		ControlPhishingTraining,
		ControlVendorReviews,
		ControlIRTabletop,
	}
}

// IsValid checks if the control ID is one of the known controls
func (c ControlID) IsValid() bool {
	switch c {
	case ControlBackupsIsolated,
		ControlMFAEnabled,
		ControlPhishingTraining,
		ControlVendorReviews,
		ControlIRTabletop:
		return true
	default:
		return false
	}
}

// Label returns a human readable name of the control
func (c ControlID) Label() string {
	switch c {
	case ControlBackupsIsolated:
		return "Isolated backups"
	case ControlMFAEnabled:
		return "Multi-factor authentication"
	case ControlPhishingTraining:
		return "Phishing training"
	case ControlVendorReviews:
		return "Vendor security reviews"
	case ControlIRTabletop:
		return "Incident response tabletop"
	default:
		return string(c)
	}
}

// String returns the string representation of the control ID
func (c ControlID) String() string {
	return string(c)
}

