package model

import "github.com/m-mizutani/goerr/v2"

// Assessment errors
var (
	ErrNonFiniteValue = goerr.New("computation produced a non-finite value")
)

// Context keys for error values
const (
	StageKey    = "stage"
	ValueKey    = "value"
	ScenarioKey = "scenario_id"
	CategoryKey = "category_id"
)
