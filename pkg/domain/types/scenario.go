package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ScenarioID identifies a threat scenario in the catalog
type ScenarioID string

// Validate checks if the ScenarioID is valid
func (s ScenarioID) Validate() error {
	if s == "" {
		return goerr.New("scenario ID cannot be empty")
	}
	if !idPattern.MatchString(string(s)) {
		return goerr.New("scenario ID must be lowercase alphanumeric with hyphens", goerr.V("id", s))
	}
	return nil
}

// String returns the string representation of ScenarioID
func (s ScenarioID) String() string {
	return string(s)
}
