package model

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/secmon-lab/riskquant/pkg/domain/model/config"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

// InputValidator bounds-checks numeric profile fields against configured ranges.
// It is advisory: a rejected value is reported but never blocked, and the caller decides
// whether to apply it. Not safe for concurrent use.
type InputValidator struct {
	ranges map[types.InputField]config.Range
	errors map[types.InputField]string
}

// NewInputValidator creates a validator for the given ranges
func NewInputValidator(ranges map[types.InputField]config.Range) *InputValidator {
	copied := make(map[types.InputField]config.Range, len(ranges))
	for k, v := range ranges {
		copied[k] = v
	}
	return &InputValidator{
		ranges: copied,
		errors: make(map[types.InputField]string),
	}
}

// Check validates value for field. It records a bound message on rejection and clears any
// previous message for the field on acceptance. Fields without a configured range pass.
func (v *InputValidator) Check(field types.InputField, value float64) bool {
	r, ok := v.ranges[field]
	if !ok {
		delete(v.errors, field)
		return true
	}

	if math.IsNaN(value) || !r.Contains(value) {
		v.errors[field] = boundMessage(field, r)
		return false
	}

	delete(v.errors, field)
	return true
}

// CheckProfile checks every bounds-checked field of the profile without stopping at the
// first rejection. It returns true only if all fields are within range.
func (v *InputValidator) CheckProfile(p OrganizationProfile) bool {
	valid := true
	for _, field := range types.AllInputFields() {
		value, _ := p.Value(field)
		if !v.Check(field, value) {
			valid = false
		}
	}
	return valid
}

// Error returns the recorded message for field, if any
func (v *InputValidator) Error(field types.InputField) (string, bool) {
	msg, ok := v.errors[field]
	return msg, ok
}

// Errors returns a copy of all recorded messages keyed by field
func (v *InputValidator) Errors() map[types.InputField]string {
	copied := make(map[types.InputField]string, len(v.errors))
	for k, msg := range v.errors {
		copied[k] = msg
	}
	return copied
}

// HasErrors returns true if any field currently has a recorded message
func (v *InputValidator) HasErrors() bool {
	return len(v.errors) > 0
}

func boundMessage(field types.InputField, r config.Range) string {
	return fmt.Sprintf("%s must be between %s and %s", field.Label(), humanize.Commaf(r.Min), humanize.Commaf(r.Max))
}
