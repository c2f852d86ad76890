// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorAccent  = lipgloss.Color("#FFD700")
	colorMuted   = lipgloss.Color("#636363")
	colorWhite   = lipgloss.Color("#EEEEEE")
	colorSurface = lipgloss.Color("#2A2A3C")
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleToday = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleSelected = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true)

	styleInfo = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// plain renders s unstyled, for output without color.
var plain = lipgloss.NewStyle()

func styled(color bool, s lipgloss.Style) lipgloss.Style {
	if !color {
		return plain
	}
	return s
}
