// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock is the subset of the time package the viewer uses.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc calls f once d has elapsed. Stop on the returned
	// Timer cancels the call if it has not happened yet.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a pending AfterFunc call.
type Timer struct {
	stop func() bool
}

// Stop cancels the call. It returns false when the call already ran
// or was stopped before.
func (timer *Timer) Stop() bool { return timer.stop() }

// Since returns the time elapsed since start according to clock.
func Since(clock Clock, start time.Time) time.Duration {
	return clock.Now().Sub(start)
}
