package types

// InputField names a numeric field of the organization profile that is bounds-checked
type InputField string

const (
	InputFieldEmployees      InputField = "employees"
	InputFieldRevenue        InputField = "revenue"
	InputFieldInsuranceLimit InputField = "insurance-limit"
)

// AllInputFields returns all bounds-checked fields
func AllInputFields() []InputField {
	return []InputField{
		InputFieldEmployees,
		InputFieldRevenue,
		InputFieldInsuranceLimit,
	}
}

// IsValid checks if the field is known
func (f InputField) IsValid() bool {
	switch f {
	case InputFieldEmployees,
		InputFieldRevenue,
		InputFieldInsuranceLimit:
		return true
	default:
		return false
	}
}

// Label returns the display label used in validation messages
func (f InputField) Label() string {
	switch f {
	case InputFieldEmployees:
		return "Employees"
	case InputFieldRevenue:
		return "Annual revenue"
	case InputFieldInsuranceLimit:
		return "Insurance limit"
	default:
		return string(f)
	}
}

// String returns the string representation of the field
func (f InputField) String() string {
	return string(f)
}
