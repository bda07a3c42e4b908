// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package caseui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// postedMsg carries work deferred by a timer back onto the event loop.
type postedMsg struct {
	fn func()
}

// Poster implements debounce.Post for a running program: the deferred
// function is delivered as a message and runs inside Update. Work
// posted before SetProgram is dropped; nothing can be pending that
// early, since timers are only armed by input.
type Poster struct {
	program atomic.Pointer[tea.Program]
}

// NewPoster returns a Poster with no program attached.
func NewPoster() *Poster {
	return &Poster{}
}

// SetProgram attaches the program. Safe to call from any goroutine.
func (poster *Poster) SetProgram(program *tea.Program) {
	poster.program.Store(program)
}

// Post sends fn to the program.
func (poster *Poster) Post(fn func()) {
	if program := poster.program.Load(); program != nil {
		program.Send(postedMsg{fn: fn})
	}
}
