// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package debounce provides a single-slot cancellable timer: at most
// one scheduled call is pending at any time, and scheduling a new call
// replaces the pending one.
//
// Timers fire on the clock's goroutine, but the owner of the slot
// usually needs its callback to run on its own event loop. New takes a
// Post function for that hop. Cancellation is generation-checked at
// the moment the callback would run on the owner's side, so a call
// cancelled after its timer fired but before Post delivered it is
// still dropped.
package debounce

import (
	"sync"
	"time"

	"github.com/bureau-foundation/lawsuits/lib/clock"
)

// Post hands fn to the goroutine that owns the slot's state. A nil
// Post runs fn directly on the timer goroutine.
type Post func(fn func())

// Slot holds at most one pending call.
type Slot struct {
	clock clock.Clock
	post  Post

	mu         sync.Mutex
	generation uint64
	timer      *clock.Timer
	pending    bool
}

// New returns an empty Slot.
func New(clk clock.Clock, post Post) *Slot {
	if post == nil {
		post = func(fn func()) { fn() }
	}
	return &Slot{clock: clk, post: post}
}

// Schedule cancels any pending call and arranges for fn to run after
// delay.
func (slot *Slot) Schedule(delay time.Duration, fn func()) {
	slot.mu.Lock()
	slot.stopLocked()
	slot.generation++
	generation := slot.generation
	slot.pending = true
	slot.mu.Unlock()

	// Registering outside the lock: a fake clock runs non-positive
	// delays synchronously.
	timer := slot.clock.AfterFunc(delay, func() {
		slot.post(func() { slot.fire(generation, fn) })
	})

	slot.mu.Lock()
	if slot.generation == generation && slot.pending {
		slot.timer = timer
	}
	slot.mu.Unlock()
}

// Cancel drops the pending call, if any, and reports whether there was
// one.
func (slot *Slot) Cancel() bool {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	wasPending := slot.pending
	slot.stopLocked()
	slot.generation++
	return wasPending
}

// Pending reports whether a call is scheduled and has not yet run.
func (slot *Slot) Pending() bool {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.pending
}

func (slot *Slot) fire(generation uint64, fn func()) {
	slot.mu.Lock()
	if generation != slot.generation || !slot.pending {
		slot.mu.Unlock()
		return
	}
	slot.pending = false
	slot.timer = nil
	slot.mu.Unlock()

	fn()
}

func (slot *Slot) stopLocked() {
	if slot.timer != nil {
		slot.timer.Stop()
		slot.timer = nil
	}
	slot.pending = false
}
