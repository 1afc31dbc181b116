package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/riskquant/pkg/cli/config"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/usecase"
	"github.com/secmon-lab/riskquant/pkg/utils/errutil"
	"github.com/secmon-lab/riskquant/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const defaultBatchConcurrency = 4

func cmdBatch() *cli.Command {
	var input string
	var concurrency int
	var format, output string
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Batch input file (.toml, .yaml, .yml or .json)",
			Required:    true,
			Destination: &input,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Maximum number of concurrent assessments",
			Value:       defaultBatchConcurrency,
			Sources:     cli.EnvVars("RISKQUANT_BATCH_CONCURRENCY"),
			Destination: &concurrency,
		},
	}
	flags = append(flags, outputFlags(&format, &output, formatJSON)...)
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "Assess many organizations from a file",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != formatText && format != formatJSON {
				return goerr.Wrap(ErrUnsupportedFormat, "invalid output format", goerr.V("format", format))
			}

			entries, err := loadBatchInput(input)
			if err != nil {
				return err
			}

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			uc, err := usecase.New(usecase.WithCatalog(catalog))
			if err != nil {
				return err
			}

			logging.From(ctx).Info("Running batch assessment", "input", input, "entries", len(entries), "concurrency", concurrency)

			batch, err := uc.Assessment.AssessBatch(ctx, entries, concurrency)
			if err != nil {
				errutil.Handle(ctx, err, "batch assessment failed")
				return goerr.Wrap(err, "no batch assessment available")
			}

			w, closer, err := openOutput(ctx, output)
			if err != nil {
				return err
			}
			defer closer()

			if format == formatJSON {
				return writeJSON(w, batch)
			}
			for i, report := range batch.Reports {
				if i > 0 {
					if _, err := w.Write([]byte("\n")); err != nil {
						return goerr.Wrap(err, "failed to write report")
					}
				}
				if err := renderReport(w, report); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// loadBatchInput decodes a batch file by its extension
func loadBatchInput(path string) ([]model.BatchEntry, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read batch input", goerr.V("path", path))
	}

	var in model.BatchInput
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &in)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &in)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&in)
	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "unknown batch input extension", goerr.V("path", path), goerr.V("ext", ext))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode batch input", goerr.V("path", path))
	}

	return in.Entries, nil
}
