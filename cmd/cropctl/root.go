// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/indradhanu/internal/config"
	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/logging"
	"github.com/tomtom215/indradhanu/internal/ml"
	"github.com/tomtom215/indradhanu/internal/predictor"
)

var version = "2.0.0-dev"

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	dataset  string
	sheet    string
	trees    int
	seed     int64
	cacheDir string
	format   string
	logLevel string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "cropctl",
		Short: "Offline crop recommendations from a historical dataset",
		Long: `cropctl trains the same models as the server on a local dataset and
answers recommendation, catalogue and history queries without running the API.

Datasets may be .xlsx, .xlsm or .csv files with the columns Crop, Yield, Price,
Nitrogen, Phosphorus, Potassium, Temperature, Humidity, pH_Value and Rainfall.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.format {
			case formatJSON, formatYAML:
			default:
				return fmt.Errorf("unsupported format %q (want json or yaml)", opts.format)
			}
			if !logging.ValidLevel(opts.logLevel) {
				return fmt.Errorf("unsupported log level %q", opts.logLevel)
			}
			logCfg := logging.DefaultConfig()
			logCfg.Level = opts.logLevel
			logCfg.Format = "console"
			logCfg.Output = cmd.ErrOrStderr()
			logging.Init(logCfg)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.dataset, "dataset", config.DefaultDatasetPath, "Dataset file (.xlsx, .xlsm or .csv)")
	flags.StringVar(&opts.sheet, "sheet", "", "Workbook sheet (default: first sheet)")
	flags.IntVar(&opts.trees, "trees", 100, "Trees per forest")
	flags.Int64Var(&opts.seed, "seed", 42, "Training seed")
	flags.StringVar(&opts.cacheDir, "cache-dir", "", "Reuse trained models from this directory")
	flags.StringVarP(&opts.format, "format", "f", formatJSON, "Output format: json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	cmd.AddCommand(newCropsCommand(opts))
	cmd.AddCommand(newPredictCommand(opts))
	cmd.AddCommand(newTopCommand(opts))
	cmd.AddCommand(newInfoCommand(opts))
	cmd.AddCommand(newHistoryCommand(opts))
	cmd.AddCommand(newReportCommand(opts))

	return cmd
}

// loadStore reads the dataset and builds the models.
func (o *globalOptions) loadStore(ctx context.Context) (*predictor.Store, error) {
	if o.trees <= 0 {
		return nil, fmt.Errorf("--trees must be positive, got %d", o.trees)
	}
	table, err := dataset.Load(o.dataset, dataset.Options{Sheet: o.sheet})
	if err != nil {
		return nil, err
	}

	forest := ml.DefaultForestConfig()
	forest.Trees = o.trees
	forest.Seed = o.seed

	store, err := predictor.Build(ctx, table, predictor.Config{Forest: forest, CacheDir: o.cacheDir})
	if err != nil {
		return nil, fmt.Errorf("build models: %w", err)
	}
	logging.Debug().Int("records", table.Len()).Bool("from_cache", store.Stats().FromCache).Msg("Models ready")
	return store, nil
}

func execute() error {
	return newRootCommand().ExecuteContext(context.Background())
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
