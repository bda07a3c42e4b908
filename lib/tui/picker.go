// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PickerOption is a single selectable item in a picker overlay.
type PickerOption struct {
	Label string // Display text.
	Value string // Value applied on selection.
}

// Picker is a floating single-choice menu. It captures keyboard input
// while open: the model routes up/down, enter and escape to it.
type Picker struct {
	Title   string
	Options []PickerOption
	Cursor  int
}

// NewPicker opens a picker with the cursor on the option whose value
// is current, or on the first option.
func NewPicker(title string, options []PickerOption, current string) *Picker {
	picker := &Picker{Title: title, Options: options}
	for index, option := range options {
		if option.Value == current {
			picker.Cursor = index
			break
		}
	}
	return picker
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (picker *Picker) MoveUp() {
	if len(picker.Options) == 0 {
		return
	}
	picker.Cursor--
	if picker.Cursor < 0 {
		picker.Cursor = len(picker.Options) - 1
	}
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (picker *Picker) MoveDown() {
	if len(picker.Options) == 0 {
		return
	}
	picker.Cursor++
	if picker.Cursor >= len(picker.Options) {
		picker.Cursor = 0
	}
}

// Selected returns the highlighted option. ok is false for an empty
// picker.
func (picker *Picker) Selected() (option PickerOption, ok bool) {
	if picker.Cursor < 0 || picker.Cursor >= len(picker.Options) {
		return PickerOption{}, false
	}
	return picker.Options[picker.Cursor], true
}

// Width returns the visible width of every rendered line.
func (picker *Picker) Width() int {
	widest := ansi.StringWidth(picker.Title)
	for _, option := range picker.Options {
		widest = max(widest, ansi.StringWidth(option.Label)+2)
	}
	// One column of padding on each side.
	return widest + 2
}

// Render produces the picker lines for Splice, at most maxRows
// options tall. The window scrolls to keep the cursor visible.
func (picker *Picker) Render(theme Theme, maxRows int) []string {
	width := picker.Width()
	inner := width - 2

	background := lipgloss.NewStyle().
		Background(theme.OverlayBackground).
		Foreground(theme.OverlayForeground)
	title := background.Bold(true).Foreground(theme.Accent)
	selected := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := []string{PadOverlayLine(title.Render(picker.Title), inner, width, background)}

	first, last := visibleWindow(len(picker.Options), picker.Cursor, maxRows)
	for index := first; index < last; index++ {
		option := picker.Options[index]
		if index == picker.Cursor {
			lines = append(lines, PadOverlayLine(selected.Render(fitWidth("> "+option.Label, inner)), inner, width, background))
			continue
		}
		lines = append(lines, PadOverlayLine(background.Render("  "+option.Label), inner, width, background))
	}
	return lines
}

// visibleWindow returns the [first, last) option range of at most
// rows entries that contains cursor.
func visibleWindow(count, cursor, rows int) (int, int) {
	if rows <= 0 || count <= rows {
		return 0, count
	}
	first := cursor - rows/2
	first = max(0, min(first, count-rows))
	return first, first + rows
}

// fitWidth pads s with spaces to width columns.
func fitWidth(s string, width int) string {
	if pad := width - ansi.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
