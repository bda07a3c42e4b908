// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package caseui implements the interactive lawsuit viewer as a
// bubbletea model.
//
// The model owns a casesearch.Engine and a casesearch.DetailTracker and
// is the only code that touches them. Every state change happens
// inside Update: keystrokes edit the filters, the engine queues the
// queries they imply, and Update turns the queued requests into
// tea.Cmds that call the Source and report back as messages. Debounce
// timers fire on their own goroutine, so they reach the model through
// a Poster that wraps the deferred work in a message.
//
// Layout, top to bottom: the filter bar, a message line (validation
// errors and result counts), the list or the open case, a separator
// and the help line. Warnings logged through TUILogHandler replace
// the help line for a few seconds.
package caseui
