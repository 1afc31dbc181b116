package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/riskquant/pkg/cli/config"
	"github.com/secmon-lab/riskquant/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdCatalog() *cli.Command {
	var output string
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output file path (stdout when empty or -)",
			Destination: &output,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:  "catalog",
		Usage: "Validate and print the effective catalog as TOML",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			logging.From(ctx).Info("Catalog validation passed",
				"catalog", catalogCfg,
				"scenario_count", len(catalog.Scenarios),
				"category_count", len(catalog.Categories),
			)

			data, err := toml.Marshal(config.FromDomainCatalog(catalog))
			if err != nil {
				return goerr.Wrap(err, "failed to encode catalog")
			}

			w, closer, err := openOutput(ctx, output)
			if err != nil {
				return err
			}
			defer closer()

			if _, err := w.Write(data); err != nil {
				return goerr.Wrap(err, "failed to write catalog")
			}
			return nil
		},
	}
}
