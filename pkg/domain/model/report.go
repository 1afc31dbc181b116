package model

import (
	"time"

	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

// AssessmentReport wraps an engine result with its inputs and advisory validation messages
type AssessmentReport struct {
	ID         string                      `json:"id"`
	Name       string                      `json:"name,omitempty"`
	AssessedAt time.Time                   `json:"assessedAt"`
	Profile    OrganizationProfile         `json:"profile"`
	Controls   SecurityControlSet          `json:"controls"`
	Warnings   map[types.InputField]string `json:"warnings,omitempty"`
	Result     *RiskAssessmentResult       `json:"result"`
}

// BatchReport holds the reports of one batch run in input order
type BatchReport struct {
	ID      string              `json:"id"`
	Reports []*AssessmentReport `json:"reports"`
}

// BatchEntry is one named profile in a batch input file
type BatchEntry struct {
	Name     string              `json:"name" yaml:"name" toml:"name"`
	Profile  OrganizationProfile `json:"profile" yaml:"profile" toml:"profile"`
	Controls SecurityControlSet  `json:"controls" yaml:"controls" toml:"controls"`
}

// BatchInput is the top-level document of a batch input file
type BatchInput struct {
	Entries []BatchEntry `json:"entries" yaml:"entries" toml:"entry"`
}
