// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gonih.org/civil"
	"gonih.org/civil/internal/export"
)

// rangeOf returns the values from start to end, inclusive, every step units
// of their alignment. At most limit values are returned.
func rangeOf(start, end civil.Value, step int64, limit int) ([]civil.Value, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	if _, err := diff(end, start); err != nil {
		return nil, err
	}
	var vs []civil.Value
	for v := start; civil.Compare(v, end) <= 0; {
		if len(vs) == limit {
			return vs, errTruncated
		}
		vs = append(vs, v)
		next := add(v, step)
		if civil.Compare(next, v) <= 0 {
			// Wrapped around the end of the representable range.
			break
		}
		v = next
	}
	return vs, nil
}

var errTruncated = errors.New("range truncated")

func (a *app) rangeCommand() *cobra.Command {
	var (
		step  int64
		limit int
	)
	cmd := &cobra.Command{
		Use:   "range START END",
		Short: "List civil times from START to END",
		Long: "Range lists every civil time from START up to and including END, " +
			"stepping by --step units of their common alignment.",
		Example: "  civil range 2024-01 2024-12 --step 3 --output json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseValue(args[0])
			if err != nil {
				return err
			}
			end, err := parseValue(args[1])
			if err != nil {
				return err
			}
			vs, err := rangeOf(start, end, step, limit)
			if errors.Is(err, errTruncated) {
				a.log.Warn("range truncated", "limit", limit, "last", vs[len(vs)-1])
			} else if err != nil {
				return err
			}
			records := make([]export.Record, len(vs))
			for i, v := range vs {
				records[i] = export.NewRecord(v, a.cfg.Layout)
			}
			return export.Write(cmd.OutOrStdout(), a.cfg.Output, records)
		},
	}
	cmd.Flags().Int64Var(&step, "step", 1, "number of units between values")
	cmd.Flags().IntVar(&limit, "limit", 10000, "maximum number of values")
	return cmd
}
