// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gonih.org/civil"
	"gonih.org/civil/internal/calendar"
)

func (a *app) calCommand() *cobra.Command {
	var (
		interactive bool
		tz          string
	)
	cmd := &cobra.Command{
		Use:   "cal [MONTH]",
		Short: "Print a month calendar",
		Long: "Cal prints the calendar of the month containing MONTH, which may " +
			"be a civil time of any alignment. Without MONTH, the current month is shown.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := location(tz)
			if err != nil {
				return err
			}
			today := civil.Today(loc)
			selected := today
			if len(args) > 0 {
				v, err := parseValue(args[0])
				if err != nil {
					return err
				}
				selected = civil.DayOf(v)
			}
			weekStart := a.cfg.FirstWeekday()

			if interactive {
				m := calendar.NewModel(today, weekStart, a.cfg.Color)
				m.Selected = selected
				return calendar.Run(m, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			g := calendar.Grid{
				Month:          civil.MonthOf(selected),
				Today:          today,
				WeekStart:      weekStart,
				Color:          a.cfg.Color,
				HighlightToday: true,
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.Render())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse the calendar interactively")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone used for today (default local)")
	cmd.Flags().String("week-start", "monday", "first day of the week")
	_ = viper.BindPFlag("week_start", cmd.Flags().Lookup("week-start"))
	return cmd
}
