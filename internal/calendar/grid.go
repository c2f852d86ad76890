// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar renders month calendars, both as static text and as an
// interactive terminal program.
package calendar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gonih.org/civil"
)

// Width is the width of a rendered month, in cells.
const Width = 7*3 - 1

// A Grid describes a single month to render.
type Grid struct {
	Month civil.Month
	// Selected and Today are highlighted, if they fall into Month. Their
	// zero values are in January 1970.
	Selected civil.Day
	Today    civil.Day
	// WeekStart is the weekday in the first column.
	WeekStart civil.Weekday
	// Color enables styled output.
	Color bool
	// HighlightSelected and HighlightToday control whether Selected and
	// Today are highlighted.
	HighlightSelected bool
	HighlightToday    bool
}

// DaysIn returns the number of days in m.
func DaysIn(m civil.Month) int {
	// Day 31 rolls over into the next month by the number of missing days.
	d := civil.NewDay(m.Year(), int64(m.Month()), 31)
	if d.Month() != m.Month() {
		return 31 - d.Day()
	}
	return 31
}

// column returns the column of wd in a grid starting on start.
func column(wd, start civil.Weekday) int {
	return int((wd - start + 7) % 7)
}

// Render returns the month as a block of text, headed by its name and the
// names of the weekdays.
func (g Grid) Render() string {
	var b strings.Builder

	title := g.Month.Format("January 2006")
	b.WriteString(strings.TrimRight(lipgloss.PlaceHorizontal(Width, lipgloss.Center, styled(g.Color, styleTitle).Render(title)), " "))
	b.WriteByte('\n')

	names := make([]string, 7)
	for i := range names {
		names[i] = ((g.WeekStart + civil.Weekday(i)) % 7).String()[:2]
	}
	b.WriteString(styled(g.Color, styleHeader).Render(strings.Join(names, " ")))

	first := civil.DayOf(g.Month)
	col := column(first.Weekday(), g.WeekStart)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("   ", col))
	n := DaysIn(g.Month)
	for i := range n {
		d := first.Add(int64(i))
		switch {
		case col == 7:
			b.WriteByte('\n')
			col = 0
		case i > 0:
			b.WriteByte(' ')
		}
		b.WriteString(g.cell(d))
		col++
	}
	return b.String()
}

func (g Grid) cell(d civil.Day) string {
	s := strconv.Itoa(d.Day())
	if len(s) < 2 {
		s = " " + s
	}
	style := plain
	switch {
	case g.HighlightSelected && d == g.Selected:
		style = styleSelected
	case g.HighlightToday && d == g.Today:
		style = styleToday
	}
	return styled(g.Color, style).Render(s)
}
