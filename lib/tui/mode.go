// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
)

// Mode is a color scheme.
type Mode string

const (
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)

// ParseMode accepts "dark" or "light", case-insensitively.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeDark:
		return ModeDark, nil
	case ModeLight:
		return ModeLight, nil
	default:
		return "", fmt.Errorf("tui: unknown color mode %q", value)
	}
}

// Toggle returns the other mode.
func (mode Mode) Toggle() Mode {
	if mode == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// Resolution is the outcome of ResolveMode.
type Resolution struct {
	// Mode is the scheme to render with.
	Mode Mode

	// Explicit is true when Mode comes from a stored user choice.
	Explicit bool

	// ClearStored is true when the stored choice no longer agrees
	// with the system preference and should be forgotten.
	ClearStored bool
}

// ResolveMode decides the starting color scheme from the stored
// explicit choice (empty when none) and the current system preference.
// A stored choice only survives while it agrees with the system: if
// the system preference moved away from it between sessions, the
// system wins and the stored choice is dropped. Within a session an
// explicit choice holds until the user changes it.
func ResolveMode(stored, system Mode) Resolution {
	switch {
	case stored == "":
		return Resolution{Mode: system}
	case stored == system:
		return Resolution{Mode: stored, Explicit: true}
	default:
		return Resolution{Mode: system, ClearStored: true}
	}
}

// ModeStore persists the user's explicit choice.
type ModeStore interface {
	// Load returns the stored mode, or "" when there is none.
	Load() (Mode, error)
	Save(Mode) error
	Clear() error
}

// FileModeStore keeps the choice as a one-word file.
type FileModeStore struct {
	Path string
}

// Load returns "" when the file does not exist. A file with
// unrecognized contents is treated as absent.
func (store FileModeStore) Load() (Mode, error) {
	data, err := os.ReadFile(store.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tui: reading color mode: %w", err)
	}
	mode, err := ParseMode(string(data))
	if err != nil {
		return "", nil
	}
	return mode, nil
}

func (store FileModeStore) Save(mode Mode) error {
	if err := os.MkdirAll(filepath.Dir(store.Path), 0o755); err != nil {
		return fmt.Errorf("tui: saving color mode: %w", err)
	}
	if err := os.WriteFile(store.Path, []byte(string(mode)+"\n"), 0o644); err != nil {
		return fmt.Errorf("tui: saving color mode: %w", err)
	}
	return nil
}

func (store FileModeStore) Clear() error {
	err := os.Remove(store.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("tui: clearing color mode: %w", err)
	}
	return nil
}

// DetectSystemMode asks the terminal for its background color.
// Terminals that do not answer are assumed dark.
func DetectSystemMode() Mode {
	if termenv.HasDarkBackground() {
		return ModeDark
	}
	return ModeLight
}
