// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette of the viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	Mode Mode

	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	Accent           lipgloss.Color

	// Feedback.
	ErrorText   lipgloss.Color
	WarningText lipgloss.Color

	// Keyword matches in list rows.
	HighlightForeground lipgloss.Color
	HighlightBackground lipgloss.Color

	// Party sides in the detail pane.
	PlaintiffColor  lipgloss.Color
	DefendantColor  lipgloss.Color
	OtherPartyColor lipgloss.Color

	// Picker overlays.
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// DarkTheme is designed for 256-color terminals with a dark
// background.
var DarkTheme = Theme{
	Mode: ModeDark,

	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	Accent:           lipgloss.Color("75"), // blue

	ErrorText:   lipgloss.Color("196"),
	WarningText: lipgloss.Color("220"),

	HighlightForeground: lipgloss.Color("230"),
	HighlightBackground: lipgloss.Color("58"), // dark amber

	PlaintiffColor:  lipgloss.Color("114"), // green
	DefendantColor:  lipgloss.Color("209"), // salmon
	OtherPartyColor: lipgloss.Color("141"), // light purple

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}

// LightTheme mirrors DarkTheme for terminals with a light background.
var LightTheme = Theme{
	Mode: ModeLight,

	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("254"),
	SelectedForeground: lipgloss.Color("232"),

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("249"),
	HelpText:         lipgloss.Color("244"),
	Accent:           lipgloss.Color("25"),

	ErrorText:   lipgloss.Color("160"),
	WarningText: lipgloss.Color("130"),

	HighlightForeground: lipgloss.Color("232"),
	HighlightBackground: lipgloss.Color("229"), // pale yellow

	PlaintiffColor:  lipgloss.Color("28"),
	DefendantColor:  lipgloss.Color("124"),
	OtherPartyColor: lipgloss.Color("91"),

	OverlayForeground: lipgloss.Color("235"),
	OverlayBackground: lipgloss.Color("253"),
}

// ThemeFor returns the palette for mode.
func ThemeFor(mode Mode) Theme {
	if mode == ModeLight {
		return LightTheme
	}
	return DarkTheme
}
