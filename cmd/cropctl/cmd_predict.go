// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/indradhanu/internal/dataset"
	"github.com/tomtom215/indradhanu/internal/validation"
)

// featureFlags binds the seven model inputs to required flags.
type featureFlags struct {
	fv dataset.FeatureVector
}

func (f *featureFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	bind := []struct {
		name  string
		dst   *float64
		usage string
	}{
		{"nitrogen", &f.fv.Nitrogen, "Soil nitrogen"},
		{"phosphorus", &f.fv.Phosphorus, "Soil phosphorus"},
		{"potassium", &f.fv.Potassium, "Soil potassium"},
		{"temperature", &f.fv.Temperature, "Temperature in °C"},
		{"humidity", &f.fv.Humidity, "Relative humidity in %"},
		{"ph", &f.fv.PHValue, "Soil pH"},
		{"rainfall", &f.fv.Rainfall, "Rainfall in mm"},
	}
	for _, b := range bind {
		flags.Float64Var(b.dst, b.name, 0, b.usage)
		_ = cmd.MarkFlagRequired(b.name)
	}
}

// vector returns the parsed inputs, rejecting NaN and infinities the same
// way the HTTP API does.
func (f *featureFlags) vector() (dataset.FeatureVector, error) {
	in := validation.NewFeatureInput(f.fv)
	if verr := validation.ValidateStruct(&in); verr != nil {
		return dataset.FeatureVector{}, verr
	}
	return f.fv, nil
}

func newPredictCommand(opts *globalOptions) *cobra.Command {
	features := &featureFlags{}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Recommend the single best crop",
		Example: `  cropctl predict --nitrogen 90 --phosphorus 42 --potassium 43 \
    --temperature 20.8 --humidity 82 --ph 6.5 --rainfall 202.9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fv, err := features.vector()
			if err != nil {
				return err
			}
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			pred, err := store.Predict(fv)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.format, pred)
		},
	}
	features.register(cmd)
	return cmd
}

func newTopCommand(opts *globalOptions) *cobra.Command {
	features := &featureFlags{}
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Recommend the three most likely distinct crops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fv, err := features.vector()
			if err != nil {
				return err
			}
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			preds, err := store.TopCrops(fv)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.format, preds)
		},
	}
	features.register(cmd)
	return cmd
}
