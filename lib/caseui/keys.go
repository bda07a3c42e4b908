// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package caseui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the lawsuit viewer.
type KeyMap struct {
	// Navigation (list movement, or detail scrolling while a case is
	// open).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Open key.Binding // Open the selected case.
	Back key.Binding // Close the case, leave an input or a picker.

	// Filters.
	FocusSearch  key.Binding // Number field, or the query in advanced mode.
	FocusKeyword key.Binding
	NextField    key.Binding // Move between the filter inputs.
	Court        key.Binding
	Degree       key.Binding
	PageSize     key.Binding
	ToggleMode   key.Binding // Simple / advanced.
	Clear        key.Binding

	LoadMore      key.Binding
	Retry         key.Binding
	ClearAndRetry key.Binding

	ToggleTheme key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	FocusSearch: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "number"),
	),
	FocusKeyword: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "keyword"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Court: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "court"),
	),
	Degree: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "degree"),
	),
	PageSize: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "page size"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "advanced"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear"),
	),
	LoadMore: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "more"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	ClearAndRetry: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "clear and retry"),
	),
	ToggleTheme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
