// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"gonih.org/civil"
)

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return n, nil
}

func (a *app) normalizeCommand() *cobra.Command {
	var align string
	cmd := &cobra.Command{
		Use:   "normalize YEAR [MONTH [DAY [HOUR [MINUTE [SECOND]]]]]",
		Short: "Normalize out-of-range fields into a valid civil time",
		Long: "Normalize carries out-of-range fields into the next larger field, " +
			"so that for example month 13 is January of the next year and day 0 " +
			"is the last day of the previous month. Omitted fields are 1 for " +
			"month and day and 0 for the clock.",
		Example: "  civil normalize 2024 2 30\n  civil normalize 2024 1 1 0 0 -1",
		Args:    cobra.RangeArgs(1, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := []int64{0, 1, 1, 0, 0, 0}
			for i, arg := range args {
				n, err := parseInt(arg)
				if err != nil {
					return err
				}
				f[i] = n
			}
			var v civil.Value = civil.NewSecond(f[0], f[1], f[2], f[3], f[4], f[5])
			if align == "" {
				align = alignments[len(alignments)-len(args)]
			}
			v, err := realign(v, align)
			if err != nil {
				return err
			}
			a.log.Debug("normalized", "fields", args, "alignment", align)
			a.print(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&align, "align", "", "alignment of the result (default by number of fields)")
	return cmd
}

func (a *app) stepCommand(use, short string, step func(civil.Value, int64) civil.Value) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TIME N",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			n, err := parseInt(args[1])
			if err != nil {
				return err
			}
			a.log.Debug(use, "value", v, "alignment", alignmentOf(v), "n", n)
			a.print(cmd.OutOrStdout(), step(v, n))
			return nil
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	return a.stepCommand("add", "Add N units of the alignment of TIME", add)
}

func (a *app) subCommand() *cobra.Command {
	return a.stepCommand("sub", "Subtract N units of the alignment of TIME", sub)
}

func (a *app) diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff A B",
		Short: "Print A-B in units of their common alignment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseValue(args[0])
			if err != nil {
				return err
			}
			y, err := parseValue(args[1])
			if err != nil {
				return err
			}
			d, err := diff(x, y)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert TIME",
		Short: "Change the alignment of TIME",
		Long: "Convert truncates TIME to a coarser alignment, or extends it to a " +
			"finer one with the smallest value of the missing fields.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			if v, err = realign(v, to); err != nil {
				return err
			}
			a.print(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target alignment (second, minute, hour, day, month or year)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "format TIME LAYOUT",
		Short:   "Format TIME using a reference layout",
		Example: `  civil format 2024-03-01 "Monday, January 2, 2006"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Format(args[1]))
			return nil
		},
	}
}

func (a *app) parseCommand() *cobra.Command {
	var align string
	cmd := &cobra.Command{
		Use:     "parse LAYOUT VALUE",
		Short:   "Parse VALUE using a reference layout",
		Example: `  civil parse "Jan 2 2006 3:04PM" "Mar 1 2024 1:37PM"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := civil.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			v, err := realign(s, align)
			if err != nil {
				return err
			}
			a.print(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&align, "align", "second", "alignment of the result")
	return cmd
}

func (a *app) weekdayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weekday TIME",
		Short: "Print the weekday, day of the year and ISO week of TIME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			year, week := civil.DayOf(v).ISOWeek()
			fmt.Fprintf(cmd.OutOrStdout(), "%v, day %d, week %d of %d\n", v.Weekday(), v.YearDay(), week, year)
			return nil
		},
	}
}

func (a *app) seekCommand(use, short string, seek func(civil.Day, civil.Weekday) civil.Day) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TIME WEEKDAY",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			wd, err := civil.ParseWeekday(args[1])
			if err != nil {
				return err
			}
			a.print(cmd.OutOrStdout(), seek(civil.DayOf(v), wd))
			return nil
		},
	}
}

func (a *app) nextCommand() *cobra.Command {
	return a.seekCommand("next", "Print the first day after TIME that falls on WEEKDAY", civil.Day.NextWeekday)
}

func (a *app) prevCommand() *cobra.Command {
	return a.seekCommand("prev", "Print the last day before TIME that falls on WEEKDAY", civil.Day.PrevWeekday)
}

// location returns the named time zone, or the local one if name is empty.
func location(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

func (a *app) nowCommand() *cobra.Command {
	var (
		tz    string
		align string
	)
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current civil time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := location(tz)
			if err != nil {
				return err
			}
			v, err := realign(civil.Now(loc), align)
			if err != nil {
				return err
			}
			a.print(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone (default local)")
	cmd.Flags().StringVar(&align, "align", "second", "alignment of the result")
	return cmd
}
