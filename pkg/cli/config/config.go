package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	domainConfig "github.com/secmon-lab/riskquant/pkg/domain/model/config"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Catalog holds the optional catalog override file
type Catalog struct {
	path string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a TOML file overriding the built-in scenarios, cost categories and input ranges",
			Category:    "Catalog",
			Sources:     cli.EnvVars("RISKQUANT_CATALOG"),
			Destination: &c.path,
		},
	}
}

// LogValue implements slog.LogValuer
func (c Catalog) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", c.path))
}

// Configure returns the effective catalog: the built-in one when no path is set, otherwise
// the file merged over the built-in one.
func (c *Catalog) Configure() (*domainConfig.Catalog, error) {
	if c.path == "" {
		return domainConfig.DefaultCatalog(), nil
	}
	return LoadCatalog(c.path)
}

// CatalogFile is the TOML representation of a catalog override. Omitted sections keep the
// built-in values.
type CatalogFile struct {
	Scenarios  []ScenarioEntry       `toml:"scenario"`
	Categories []CategoryEntry       `toml:"category"`
	Synergy    []SynergyEntry        `toml:"synergy"`
	Ranges     map[string]RangeEntry `toml:"range"`
}

// ScenarioEntry is one [[scenario]] table
type ScenarioEntry struct {
	ID        string  `toml:"id"`
	Name      string  `toml:"name"`
	BaseCost  float64 `toml:"base_cost"`
	Frequency string  `toml:"frequency"`
	Severity  string  `toml:"severity"`
	Color     string  `toml:"color"`
}

// CategoryEntry is one [[category]] table
type CategoryEntry struct {
	ID        string  `toml:"id"`
	Name      string  `toml:"name"`
	BaseCost  float64 `toml:"base_cost"`
	Icon      string  `toml:"icon"`
	Control   string  `toml:"control"`
	Reduction float64 `toml:"reduction"`
}

// SynergyEntry is one [[synergy]] table
type SynergyEntry struct {
	MinControls int     `toml:"min_controls"`
	Bonus       float64 `toml:"bonus"`
}

// RangeEntry is one [range.<field>] table
type RangeEntry struct {
	Min float64 `toml:"min"`
	Max float64 `toml:"max"`
}

// LoadCatalog reads a TOML catalog override from path
func LoadCatalog(path string) (*domainConfig.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "catalog file not found", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V(ConfigPathKey, path))
	}

	var file CatalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse catalog file",
			goerr.V(ConfigPathKey, path), goerr.V("cause", err.Error()))
	}

	catalog, err := file.ToDomainCatalog()
	if err != nil {
		return nil, goerr.Wrap(err, "invalid catalog file", goerr.V(ConfigPathKey, path))
	}

	return catalog, nil
}

// ToDomainCatalog merges the file over the built-in catalog and validates the result
func (f *CatalogFile) ToDomainCatalog() (*domainConfig.Catalog, error) {
	catalog := domainConfig.DefaultCatalog()

	if len(f.Scenarios) > 0 {
		catalog.Scenarios = make([]domainConfig.ThreatScenario, len(f.Scenarios))
		for i, s := range f.Scenarios {
			catalog.Scenarios[i] = domainConfig.ThreatScenario{
				ID:        types.ScenarioID(s.ID),
				Name:      s.Name,
				BaseCost:  s.BaseCost,
				Frequency: s.Frequency,
				Severity:  s.Severity,
				Color:     s.Color,
			}
		}
	}

	if len(f.Categories) > 0 {
		catalog.Categories = make([]domainConfig.CostCategory, len(f.Categories))
		for i, c := range f.Categories {
			catalog.Categories[i] = domainConfig.CostCategory{
				ID:        types.CategoryID(c.ID),
				Name:      c.Name,
				BaseCost:  c.BaseCost,
				Icon:      c.Icon,
				Control:   types.ControlID(c.Control),
				Reduction: c.Reduction,
			}
		}
	}

	if len(f.Synergy) > 0 {
		catalog.Synergy = make([]domainConfig.SynergyTier, len(f.Synergy))
		for i, s := range f.Synergy {
			catalog.Synergy[i] = domainConfig.SynergyTier{
				MinControls: s.MinControls,
				Bonus:       s.Bonus,
			}
		}
	}

	for name, r := range f.Ranges {
		field := types.InputField(name)
		if !field.IsValid() {
			return nil, goerr.Wrap(ErrInvalidConfig, "unknown input range field", goerr.V(FieldKey, name))
		}
		catalog.Ranges[field] = domainConfig.Range{Min: r.Min, Max: r.Max}
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(errors.Join(ErrInvalidConfig, err), "catalog validation failed")
	}

	return catalog, nil
}

// FromDomainCatalog converts a catalog into its file representation
func FromDomainCatalog(c *domainConfig.Catalog) *CatalogFile {
	f := &CatalogFile{
		Scenarios:  make([]ScenarioEntry, len(c.Scenarios)),
		Categories: make([]CategoryEntry, len(c.Categories)),
		Synergy:    make([]SynergyEntry, len(c.Synergy)),
		Ranges:     make(map[string]RangeEntry, len(c.Ranges)),
	}

	for i, s := range c.Scenarios {
		f.Scenarios[i] = ScenarioEntry{
			ID:        s.ID.String(),
			Name:      s.Name,
			BaseCost:  s.BaseCost,
			Frequency: s.Frequency,
			Severity:  s.Severity,
			Color:     s.Color,
		}
	}
	for i, cat := range c.Categories {
		f.Categories[i] = CategoryEntry{
			ID:        cat.ID.String(),
			Name:      cat.Name,
			BaseCost:  cat.BaseCost,
			Icon:      cat.Icon,
			Control:   string(cat.Control),
			Reduction: cat.Reduction,
		}
	}
	for i, tier := range c.Synergy {
		f.Synergy[i] = SynergyEntry{MinControls: tier.MinControls, Bonus: tier.Bonus}
	}
	for field, r := range c.Ranges {
		f.Ranges[string(field)] = RangeEntry{Min: r.Min, Max: r.Max}
	}

	return f
}
