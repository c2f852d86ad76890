// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"gonih.org/civil"
	"gonih.org/civil/internal/export"
)

// readValues decodes a list of civil times written by Write. The times must
// be in the default layouts of their alignments.
func readValues(r io.Reader, format string) ([]civil.Value, error) {
	records, err := export.Read(r, format)
	if err != nil {
		return nil, err
	}
	vs := make([]civil.Value, len(records))
	for i, rec := range records {
		if vs[i], err = parseValue(rec.Time); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return vs, nil
}

func (a *app) listCommand() *cobra.Command {
	var (
		input  string
		sorted bool
	)
	cmd := &cobra.Command{
		Use:   "list [FILE]",
		Short: "Re-encode a list of civil times",
		Long: "List reads civil times in any output format of range, from FILE or " +
			"standard input, and writes them in the configured output format with " +
			"their weekday and day of the year.",
		Example: "  civil range 2024-01 2024-12 -o json | civil list --input json -o yaml",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) > 0 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			vs, err := readValues(r, input)
			if err != nil {
				return err
			}
			if sorted {
				slices.SortStableFunc(vs, civil.Compare)
			}
			a.log.Debug("read civil times", "count", len(vs), "format", input)
			records := make([]export.Record, len(vs))
			for i, v := range vs {
				records[i] = export.NewRecord(v, a.cfg.Layout)
			}
			return export.Write(cmd.OutOrStdout(), a.cfg.Output, records)
		},
	}
	cmd.Flags().StringVar(&input, "input", export.FormatText, "input format (text, json, yaml or toml)")
	cmd.Flags().BoolVar(&sorted, "sort", false, "sort the times chronologically")
	return cmd
}
