package config

import (
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

// MaxCategoryReduction caps the total reduction of any cost category
const MaxCategoryReduction = 0.70

// ErrInvalidCatalog is returned when catalog data breaks an invariant
var ErrInvalidCatalog = goerr.New("invalid catalog")

// ThreatScenario is a fixed reference scenario with a baseline incident cost
type ThreatScenario struct {
	ID        types.ScenarioID
	Name      string
	BaseCost  float64
	Frequency string
	Severity  string
	Color     string // hex color code for charts
}

// CostCategory is a fixed cost bucket of an incident. Control is the security control that
// directly reduces this category by Reduction; an empty Control means no direct mapping.
type CostCategory struct {
	ID        types.CategoryID
	Name      string
	BaseCost  float64
	Icon      string
	Control   types.ControlID
	Reduction float64
}

// SynergyTier grants Bonus when at least MinControls controls are enabled
type SynergyTier struct {
	MinControls int
	Bonus       float64
}

// Range is an inclusive numeric bound
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v is within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Catalog holds the static reference data the engine computes against
type Catalog struct {
	Scenarios  []ThreatScenario
	Categories []CostCategory
	Synergy    []SynergyTier
	Ranges     map[types.InputField]Range
}

// DefaultCatalog returns a fresh copy of the built-in catalog
func DefaultCatalog() *Catalog {
	return &Catalog{
		Scenarios: []ThreatScenario{
			{ID: "ransomware", Name: "Ransomware", BaseCost: 850_000, Frequency: "Medium", Severity: "Critical", Color: "#DC2626"},
			{ID: "phishing", Name: "Phishing", BaseCost: 300_000, Frequency: "High", Severity: "Medium", Color: "#F59E0B"},
			{ID: "data-breach", Name: "Data Breach", BaseCost: 550_000, Frequency: "Low", Severity: "High", Color: "#7C3AED"},
		},
		Categories: []CostCategory{
			{ID: "emergency-it-forensics", Name: "Emergency IT/Forensics", BaseCost: 85_000, Icon: "server", Control: types.ControlBackupsIsolated, Reduction: 0.35},
			{ID: "revenue-loss", Name: "Revenue Loss", BaseCost: 250_000, Icon: "trending-down", Control: types.ControlMFAEnabled, Reduction: 0.25},
			{ID: "client-churn", Name: "Client Churn", BaseCost: 180_000, Icon: "users", Control: types.ControlPhishingTraining, Reduction: 0.30},
			{ID: "regulatory-fines", Name: "Regulatory Fines", BaseCost: 120_000, Icon: "scale", Control: types.ControlVendorReviews, Reduction: 0.45},
			{ID: "staff-overtime", Name: "Staff Overtime", BaseCost: 45_000, Icon: "clock", Control: types.ControlIRTabletop, Reduction: 0.40},
			{ID: "legal-counsel", Name: "Legal Counsel", BaseCost: 75_000, Icon: "briefcase"},
			{ID: "customer-notification", Name: "Customer Notification", BaseCost: 25_000, Icon: "mail"},
			{ID: "credit-monitoring", Name: "Credit Monitoring", BaseCost: 40_000, Icon: "credit-card"},
			{ID: "public-relations", Name: "Public Relations", BaseCost: 35_000, Icon: "megaphone"},
			{ID: "system-restoration", Name: "System Restoration", BaseCost: 95_000, Icon: "wrench"},
			{ID: "insurance-premium-increase", Name: "Insurance Premium Increase", BaseCost: 30_000, Icon: "shield"},
		},
		Synergy: []SynergyTier{
			{MinControls: 4, Bonus: 0.15},
			{MinControls: 3, Bonus: 0.10},
		},
		Ranges: map[types.InputField]Range{
			types.InputFieldEmployees:      {Min: 1, Max: 1_000_000},
			types.InputFieldRevenue:        {Min: 0, Max: 100_000_000_000},
			types.InputFieldInsuranceLimit: {Min: 0, Max: 10_000_000_000},
		},
	}
}

// SynergyBonus returns the bonus of the highest tier reached by enabled controls
func (c *Catalog) SynergyBonus(enabled int) float64 {
	tiers := make([]SynergyTier, len(c.Synergy))
	copy(tiers, c.Synergy)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinControls > tiers[j].MinControls })

	for _, tier := range tiers {
		if enabled >= tier.MinControls {
			return tier.Bonus
		}
	}
	return 0
}

// Scenario looks up a threat scenario by ID
func (c *Catalog) Scenario(id types.ScenarioID) (ThreatScenario, bool) {
	for _, s := range c.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ThreatScenario{}, false
}

// Category looks up a cost category by ID
func (c *Catalog) Category(id types.CategoryID) (CostCategory, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return CostCategory{}, false
}

// Validate checks the catalog invariants
func (c *Catalog) Validate() error {
	if len(c.Scenarios) == 0 {
		return goerr.Wrap(ErrInvalidCatalog, "at least one scenario is required")
	}
	if len(c.Categories) == 0 {
		return goerr.Wrap(ErrInvalidCatalog, "at least one cost category is required")
	}

	scenarioIDs := make(map[types.ScenarioID]bool)
	for _, s := range c.Scenarios {
		if err := s.ID.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidCatalog, "invalid scenario ID", goerr.V("id", s.ID), goerr.V("reason", err.Error()))
		}
		if scenarioIDs[s.ID] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate scenario ID", goerr.V("id", s.ID))
		}
		scenarioIDs[s.ID] = true
		if s.Name == "" {
			return goerr.Wrap(ErrInvalidCatalog, "scenario name is required", goerr.V("id", s.ID))
		}
		if !isCost(s.BaseCost) {
			return goerr.Wrap(ErrInvalidCatalog, "scenario base cost must be finite and non-negative",
				goerr.V("id", s.ID), goerr.V("base_cost", s.BaseCost))
		}
	}

	categoryIDs := make(map[types.CategoryID]bool)
	for _, cat := range c.Categories {
		if err := cat.ID.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidCatalog, "invalid category ID", goerr.V("id", cat.ID), goerr.V("reason", err.Error()))
		}
		if categoryIDs[cat.ID] {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate category ID", goerr.V("id", cat.ID))
		}
		categoryIDs[cat.ID] = true
		if cat.Name == "" {
			return goerr.Wrap(ErrInvalidCatalog, "category name is required", goerr.V("id", cat.ID))
		}
		if !isCost(cat.BaseCost) {
			return goerr.Wrap(ErrInvalidCatalog, "category base cost must be finite and non-negative",
				goerr.V("id", cat.ID), goerr.V("base_cost", cat.BaseCost))
		}
		if cat.Control != "" && !cat.Control.IsValid() {
			return goerr.Wrap(ErrInvalidCatalog, "unknown control", goerr.V("id", cat.ID), goerr.V("control", cat.Control))
		}
		if math.IsNaN(cat.Reduction) || cat.Reduction < 0 || cat.Reduction > MaxCategoryReduction {
			return goerr.Wrap(ErrInvalidCatalog, "category reduction must be between 0 and 0.70",
				goerr.V("id", cat.ID), goerr.V("reduction", cat.Reduction))
		}
	}

	tiers := make([]SynergyTier, len(c.Synergy))
	copy(tiers, c.Synergy)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinControls < tiers[j].MinControls })
	for i, tier := range tiers {
		if tier.MinControls < 1 || math.IsNaN(tier.Bonus) || tier.Bonus < 0 || tier.Bonus > MaxCategoryReduction {
			return goerr.Wrap(ErrInvalidCatalog, "invalid synergy tier",
				goerr.V("min_controls", tier.MinControls), goerr.V("bonus", tier.Bonus))
		}
		if i == 0 {
			continue
		}
		// Enabling another control must never lower the bonus.
		prev := tiers[i-1]
		if tier.MinControls == prev.MinControls {
			return goerr.Wrap(ErrInvalidCatalog, "duplicate synergy threshold", goerr.V("min_controls", tier.MinControls))
		}
		if tier.Bonus < prev.Bonus {
			return goerr.Wrap(ErrInvalidCatalog, "synergy bonus decreases as threshold rises",
				goerr.V("min_controls", tier.MinControls), goerr.V("bonus", tier.Bonus),
				goerr.V("previous_bonus", prev.Bonus))
		}
	}

	for _, field := range types.AllInputFields() {
		r, ok := c.Ranges[field]
		if !ok {
			return goerr.Wrap(ErrInvalidCatalog, "missing input range", goerr.V("field", field))
		}
		if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Min > r.Max {
			return goerr.Wrap(ErrInvalidCatalog, "input range min must not exceed max",
				goerr.V("field", field), goerr.V("min", r.Min), goerr.V("max", r.Max))
		}
	}

	return nil
}

func isCost(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
