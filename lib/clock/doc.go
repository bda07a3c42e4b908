// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock is the time source of the lawsuit viewer. Code that
// schedules work (the search debounce, request latency logging) takes
// a Clock instead of calling the time package, so tests can drive
// timers deterministically:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	slot := debounce.New(fake, nil)
//	slot.Schedule(800*time.Millisecond, search)
//	fake.Advance(800 * time.Millisecond) // search runs here
package clock
