// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func courtOptions() []PickerOption {
	return []PickerOption{
		{Label: "Todos", Value: ""},
		{Label: "TJMG", Value: "TJMG"},
		{Label: "TJSP", Value: "TJSP"},
	}
}

func TestPickerStartsOnCurrentValue(t *testing.T) {
	picker := NewPicker("Tribunal", courtOptions(), "TJSP")
	option, ok := picker.Selected()
	if !ok || option.Value != "TJSP" {
		t.Errorf("Selected = %+v, %v; want TJSP", option, ok)
	}

	picker = NewPicker("Tribunal", courtOptions(), "TRF3")
	if option, _ := picker.Selected(); option.Value != "" {
		t.Errorf("unknown current value selected %q, want first option", option.Value)
	}
}

func TestPickerWraps(t *testing.T) {
	picker := NewPicker("Tribunal", courtOptions(), "")
	picker.MoveUp()
	if picker.Cursor != 2 {
		t.Errorf("MoveUp from top: cursor = %d, want 2", picker.Cursor)
	}
	picker.MoveDown()
	if picker.Cursor != 0 {
		t.Errorf("MoveDown from bottom: cursor = %d, want 0", picker.Cursor)
	}
}

func TestEmptyPicker(t *testing.T) {
	picker := NewPicker("Tribunal", nil, "")
	picker.MoveDown()
	picker.MoveUp()
	if _, ok := picker.Selected(); ok {
		t.Error("empty picker reported a selection")
	}
}

func TestPickerRenderWidth(t *testing.T) {
	picker := NewPicker("Tribunal", courtOptions(), "TJMG")
	lines := picker.Render(DarkTheme, 10)
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4", len(lines))
	}
	for index, line := range lines {
		if width := ansi.StringWidth(line); width != picker.Width() {
			t.Errorf("line %d width = %d, want %d", index, width, picker.Width())
		}
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		count, cursor, rows int
		first, last         int
	}{
		{3, 0, 10, 0, 3},
		{20, 0, 5, 0, 5},
		{20, 10, 5, 8, 13},
		{20, 19, 5, 15, 20},
	}
	for _, test := range tests {
		first, last := visibleWindow(test.count, test.cursor, test.rows)
		if first != test.first || last != test.last {
			t.Errorf("visibleWindow(%d, %d, %d) = %d, %d; want %d, %d",
				test.count, test.cursor, test.rows, first, last, test.first, test.last)
		}
	}
}

func TestSpliceCentered(t *testing.T) {
	view := "..........\n..........\n.........."
	got := SpliceCentered(view, []string{"ab"}, 10, 3)
	want := "..........\n....\x1b[0mab\x1b[0m....\n.........."
	if got != want {
		t.Errorf("SpliceCentered = %q, want %q", got, want)
	}
}
