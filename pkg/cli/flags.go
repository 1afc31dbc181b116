package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// profileFlags binds the organization profile fields
func profileFlags(p *model.OrganizationProfile) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "employees",
			Aliases:     []string{"e"},
			Usage:       "Number of employees",
			Category:    "Organization",
			Value:       50,
			Sources:     cli.EnvVars("RISKQUANT_EMPLOYEES"),
			Destination: &p.Employees,
		},
		&cli.FloatFlag{
			Name:        "revenue",
			Aliases:     []string{"r"},
			Usage:       "Annual revenue in USD",
			Category:    "Organization",
			Value:       5_000_000,
			Sources:     cli.EnvVars("RISKQUANT_REVENUE"),
			Destination: &p.Revenue,
		},
		&cli.FloatFlag{
			Name:        "insurance-limit",
			Usage:       "Cyber insurance coverage limit in USD",
			Category:    "Organization",
			Value:       1_000_000,
			Sources:     cli.EnvVars("RISKQUANT_INSURANCE_LIMIT"),
			Destination: &p.InsuranceLimit,
		},
	}
}

// controlFlags binds the security control toggles
func controlFlags(s *model.SecurityControlSet, all *bool) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "backups-isolated",
			Usage:       "Backups are isolated from the production network",
			Category:    "Security controls",
			Destination: &s.BackupsIsolated,
		},
		&cli.BoolFlag{
			Name:        "mfa-enabled",
			Usage:       "Multi-factor authentication is enforced",
			Category:    "Security controls",
			Destination: &s.MFAEnabled,
		},
		&cli.BoolFlag{
			Name:        "phishing-training",
			Usage:       "Staff receive regular phishing training",
			Category:    "Security controls",
			Destination: &s.PhishingTraining,
		},
		&cli.BoolFlag{
			Name:        "vendor-reviews",
			Usage:       "Vendor security reviews are performed",
			Category:    "Security controls",
			Destination: &s.VendorReviews,
		},
		&cli.BoolFlag{
			Name:        "ir-tabletop",
			Usage:       "Incident response tabletop exercises are held",
			Category:    "Security controls",
			Destination: &s.IRTabletop,
		},
		&cli.BoolFlag{
			Name:        "all-controls",
			Usage:       "Enable every security control",
			Category:    "Security controls",
			Destination: all,
		},
	}
}

func outputFlags(format, output *string, defaultFormat string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format [text|json]",
			Value:       defaultFormat,
			Destination: format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when empty or -)",
			Destination: output,
		},
	}
}

// openOutput returns stdout or the file at path. The closer must always be called.
func openOutput(ctx context.Context, path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return nil, func() {}, goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}

	return f, func() { safe.Close(ctx, f) }, nil
}
