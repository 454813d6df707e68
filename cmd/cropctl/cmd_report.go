// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/indradhanu/internal/report"
)

func newReportCommand(opts *globalOptions) *cobra.Command {
	features := &featureFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the top-3 recommendation PDF",
		Long: `Render the same one-page PDF the API returns from /generate-report.
Without -o the file is named crop_report_<timestamp>.pdf in the current
directory.`,
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
			preds, err := store.TopCrops(fv)
			if err != nil {
				return err
			}

			now := time.Now()
			var buf bytes.Buffer
			if err := report.Render(&buf, report.Report{Conditions: fv, Recommendations: preds, GeneratedAt: now}); err != nil {
				return err
			}

			path := output
			if path == "" {
				path = report.Filename(now)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s (%d bytes)\n", path, buf.Len())
			return nil
		},
	}
	features.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	return cmd
}
