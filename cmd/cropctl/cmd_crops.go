// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newCropsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "crops",
		Short: "List the crops in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			crops, err := store.Crops()
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.format, crops)
		},
	}
}

func newInfoCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info <crop>",
		Short: "Average yield, price, revenue and growing conditions of a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			info, err := store.Info(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.format, info)
		},
	}
}

func newHistoryCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history <crop>",
		Short: "Recorded yield and price of a crop",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			history, err := store.History(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), opts.format, history)
		},
	}
}
