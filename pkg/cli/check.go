package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/cli/config"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/domain/types"
	"github.com/secmon-lab/riskquant/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var profile model.OrganizationProfile
	var output string
	var catalogCfg config.Catalog

	var flags []cli.Flag
	flags = append(flags, profileFlags(&profile)...)
	flags = append(flags, &cli.StringFlag{
		Name:        "output",
		Aliases:     []string{"o"},
		Usage:       "Output file path (stdout when empty or -)",
		Destination: &output,
	})
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:  "check",
		Usage: "Check organization values against the accepted input ranges",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			uc, err := usecase.New(usecase.WithCatalog(catalog), usecase.WithCacheSize(0))
			if err != nil {
				return err
			}

			w, closer, err := openOutput(ctx, output)
			if err != nil {
				return err
			}
			defer closer()

			msgs := uc.Assessment.Validate(profile)
			for _, field := range types.AllInputFields() {
				status := "ok"
				if msg, ok := msgs[field]; ok {
					status = msg
				}
				if _, err := fmt.Fprintf(w, "%s: %s\n", field.Label(), status); err != nil {
					return goerr.Wrap(err, "failed to write check result")
				}
			}

			if len(msgs) > 0 {
				return goerr.Wrap(ErrOutOfRange, "profile has out-of-range values", goerr.V("fields", len(msgs)))
			}
			return nil
		},
	}
}
