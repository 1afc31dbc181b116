package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/cli/config"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/usecase"
	"github.com/secmon-lab/riskquant/pkg/utils/errutil"
	"github.com/urfave/cli/v3"
)

func cmdAssess() *cli.Command {
	var profile model.OrganizationProfile
	var controls model.SecurityControlSet
	var allControls bool
	var format, output string
	var catalogCfg config.Catalog

	var flags []cli.Flag
	flags = append(flags, profileFlags(&profile)...)
	flags = append(flags, controlFlags(&controls, &allControls)...)
	flags = append(flags, outputFlags(&format, &output, formatText)...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "assess",
		Aliases: []string{"a"},
		Usage:   "Assess the financial impact of cyber incidents for one organization",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != formatText && format != formatJSON {
				return goerr.Wrap(ErrUnsupportedFormat, "invalid output format", goerr.V("format", format))
			}

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			uc, err := usecase.New(usecase.WithCatalog(catalog), usecase.WithCacheSize(0))
			if err != nil {
				return err
			}

			if allControls {
				controls = model.AllControlsEnabled()
			}

			report, err := uc.Assessment.Assess(ctx, profile, controls)
			if err != nil {
				errutil.Handle(ctx, err, "assessment failed")
				return goerr.Wrap(err, "no assessment available")
			}

			w, closer, err := openOutput(ctx, output)
			if err != nil {
				return err
			}
			defer closer()

			if format == formatJSON {
				return writeJSON(w, report)
			}
			return renderReport(w, report)
		},
	}
}
