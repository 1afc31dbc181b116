package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskquant/pkg/cli/config"
	domainConfig "github.com/secmon-lab/riskquant/pkg/domain/model/config"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestCatalogConfigure(t *testing.T) {
	t.Run("no path selects the built-in catalog", func(t *testing.T) {
		catalog, err := config.NewCatalogForTest("").Configure()
		gt.NoError(t, err).Required()
		gt.Value(t, catalog).Equal(domainConfig.DefaultCatalog())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.NewCatalogForTest(filepath.Join(t.TempDir(), "none.toml")).Configure()
		gt.Error(t, err).Is(config.ErrConfigNotFound)
	})
}

func TestLoadCatalog(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, c *domainConfig.Catalog)
	}{
		{
			name:    "empty file keeps defaults",
			content: ``,
			check: func(t *testing.T, c *domainConfig.Catalog) {
				gt.Value(t, c).Equal(domainConfig.DefaultCatalog())
			},
		},
		{
			name: "scenarios replace the built-in ones",
			content: `
[[scenario]]
id = "insider-threat"
name = "Insider Threat"
base_cost = 400000.0
frequency = "Low"
severity = "High"
color = "#0EA5E9"
`,
			check: func(t *testing.T, c *domainConfig.Catalog) {
				gt.Array(t, c.Scenarios).Length(1)
				gt.Value(t, c.Scenarios[0].ID).Equal(types.ScenarioID("insider-threat"))
				gt.Value(t, c.Scenarios[0].BaseCost).Equal(400000.0)
				gt.Array(t, c.Categories).Length(len(domainConfig.DefaultCatalog().Categories))
			},
		},
		{
			name: "categories with control mapping",
			content: `
[[category]]
id = "downtime"
name = "Downtime"
base_cost = 100000.0
icon = "clock"
control = "backups-isolated"
reduction = 0.5

[[category]]
id = "legal"
name = "Legal"
base_cost = 20000.0
`,
			check: func(t *testing.T, c *domainConfig.Catalog) {
				gt.Array(t, c.Categories).Length(2)
				gt.Value(t, c.Categories[0].Control).Equal(types.ControlBackupsIsolated)
				gt.Value(t, c.Categories[0].Reduction).Equal(0.5)
				gt.Value(t, c.Categories[1].Control).Equal(types.ControlID(""))
			},
		},
		{
			name: "ranges merge per field",
			content: `
[range.employees]
min = 10.0
max = 5000.0
`,
			check: func(t *testing.T, c *domainConfig.Catalog) {
				gt.Value(t, c.Ranges[types.InputFieldEmployees]).Equal(domainConfig.Range{Min: 10, Max: 5000})
				gt.Value(t, c.Ranges[types.InputFieldRevenue]).Equal(domainConfig.DefaultCatalog().Ranges[types.InputFieldRevenue])
			},
		},
		{
			name: "synergy tiers",
			content: `
[[synergy]]
min_controls = 5
bonus = 0.2
`,
			check: func(t *testing.T, c *domainConfig.Catalog) {
				gt.Value(t, c.SynergyBonus(5)).Equal(0.2)
				gt.Value(t, c.SynergyBonus(4)).Equal(0.0)
			},
		},
		{
			name:    "malformed TOML",
			content: `[[scenario]`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "reduction above cap",
			content: `
[[category]]
id = "downtime"
name = "Downtime"
base_cost = 1.0
control = "mfa-enabled"
reduction = 0.9
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "unknown control",
			content: `
[[category]]
id = "downtime"
name = "Downtime"
base_cost = 1.0
control = "firewall"
reduction = 0.1
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "duplicate scenario",
			content: `
[[scenario]]
id = "a"
name = "A"
base_cost = 1.0

[[scenario]]
id = "a"
name = "A again"
base_cost = 2.0
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "negative cost",
			content: `
[[scenario]]
id = "a"
name = "A"
base_cost = -5.0
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "unknown range field",
			content: `
[range.headcount]
min = 1.0
max = 2.0
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "inverted range",
			content: `
[range.revenue]
min = 10.0
max = 1.0
`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := config.LoadCatalog(writeFile(t, tt.content))
			if tt.wantErr != nil {
				gt.Error(t, err).Is(tt.wantErr)
				gt.Value(t, catalog).Nil()
				return
			}
			gt.NoError(t, err).Required()
			tt.check(t, catalog)
		})
	}
}

func TestLoadCatalogValidationError(t *testing.T) {
	_, err := config.LoadCatalog(writeFile(t, `
[[synergy]]
min_controls = 3
bonus = 0.3

[[synergy]]
min_controls = 4
bonus = 0.05
`))
	gt.Error(t, err).Is(config.ErrInvalidConfig)
	gt.Error(t, err).Is(domainConfig.ErrInvalidCatalog)
}
