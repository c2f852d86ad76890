// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gonih.org/civil"
)

// Model is the bubbletea model of the interactive calendar. It shows the
// month of the selected day.
type Model struct {
	Keys      KeyMap
	Selected  civil.Day
	Today     civil.Day
	WeekStart civil.Weekday
	Color     bool
	Quitting  bool
}

// NewModel returns a Model with today selected.
func NewModel(today civil.Day, weekStart civil.Weekday, color bool) Model {
	return Model{
		Keys:      DefaultKeyMap(),
		Selected:  today,
		Today:     today,
		WeekStart: weekStart,
		Color:     color,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(km, m.Keys.PrevDay):
		m.Selected = m.Selected.Sub(1)
	case key.Matches(km, m.Keys.NextDay):
		m.Selected = m.Selected.Add(1)
	case key.Matches(km, m.Keys.PrevWeek):
		m.Selected = m.Selected.Sub(7)
	case key.Matches(km, m.Keys.NextWeek):
		m.Selected = m.Selected.Add(7)
	case key.Matches(km, m.Keys.PrevMonth):
		m.Selected = AddMonths(m.Selected, -1)
	case key.Matches(km, m.Keys.NextMonth):
		m.Selected = AddMonths(m.Selected, 1)
	case key.Matches(km, m.Keys.PrevYear):
		m.Selected = AddMonths(m.Selected, -12)
	case key.Matches(km, m.Keys.NextYear):
		m.Selected = AddMonths(m.Selected, 12)
	case key.Matches(km, m.Keys.Today):
		m.Selected = m.Today
	}
	return m, nil
}

// AddMonths moves d by n months. If the day of the month does not exist in
// the target month, the last day of that month is used instead.
func AddMonths(d civil.Day, n int64) civil.Day {
	m := civil.MonthOf(d).Add(n)
	return civil.DayOf(m).Add(int64(min(d.Day(), DaysIn(m)) - 1))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	g := Grid{
		Month:             civil.MonthOf(m.Selected),
		Selected:          m.Selected,
		Today:             m.Today,
		WeekStart:         m.WeekStart,
		Color:             m.Color,
		HighlightSelected: true,
		HighlightToday:    true,
	}
	var b strings.Builder
	b.WriteString(g.Render())
	b.WriteString("\n\n")

	year, week := m.Selected.ISOWeek()
	info := fmt.Sprintf("%s, day %d, week %d of %d", m.Selected.Format("Mon Jan 2 2006"), m.Selected.YearDay(), week, year)
	b.WriteString(styled(m.Color, styleInfo).Render(info))
	b.WriteByte('\n')

	var parts []string
	for _, kb := range footerBindings(m.Keys) {
		if !kb.Enabled() {
			continue
		}
		h := kb.Help()
		parts = append(parts, styled(m.Color, styleFooterKey).Render(h.Key)+":"+styled(m.Color, styleFooterDesc).Render(h.Desc))
	}
	b.WriteString(strings.Join(parts, "  "))
	b.WriteByte('\n')
	return b.String()
}

// Run shows the interactive calendar until the user quits.
func Run(m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	return nil
}
