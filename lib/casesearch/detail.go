// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"strings"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// DetailRequest is a detail fetch the host must execute.
type DetailRequest struct {
	Sequence uint64
	Number   string
}

// DetailResponse reports the outcome of a DetailRequest.
type DetailResponse struct {
	Request DetailRequest
	Detail  lawsuit.Detail
	Err     error
}

// DetailTracker holds the case opened in the detail view. Like Engine
// it is driven from the host's event loop and discards responses for
// anything but the latest request, so quickly opening one case after
// another always settles on the last one.
type DetailTracker struct {
	number   string
	detail   *lawsuit.Detail
	loading  bool
	err      error
	sequence uint64
}

// Open starts loading the case with the given number and returns the
// request to execute.
func (tracker *DetailTracker) Open(number string) DetailRequest {
	tracker.number = strings.TrimSpace(number)
	tracker.detail = nil
	return tracker.request()
}

// Refetch reloads the open case, keeping the stale detail on screen
// until the response arrives. The second result is false when no case
// is open.
func (tracker *DetailTracker) Refetch() (DetailRequest, bool) {
	if tracker.number == "" {
		return DetailRequest{}, false
	}
	return tracker.request(), true
}

// Close forgets the open case. Responses still in flight are discarded.
func (tracker *DetailTracker) Close() {
	tracker.sequence++
	tracker.number = ""
	tracker.detail = nil
	tracker.loading = false
	tracker.err = nil
}

// Complete records a response and reports whether it was current.
func (tracker *DetailTracker) Complete(response DetailResponse) bool {
	if response.Request.Sequence != tracker.sequence {
		return false
	}
	tracker.loading = false
	if response.Err != nil {
		tracker.err = response.Err
		return true
	}
	detail := response.Detail
	tracker.detail = &detail
	tracker.err = nil
	return true
}

// Number returns the number of the open case, or "".
func (tracker *DetailTracker) Number() string { return tracker.number }

// Detail returns the loaded detail, or nil while none is loaded.
func (tracker *DetailTracker) Detail() *lawsuit.Detail { return tracker.detail }

// Loading reports whether a fetch is in flight.
func (tracker *DetailTracker) Loading() bool { return tracker.loading }

// Err returns the error of the latest fetch.
func (tracker *DetailTracker) Err() error { return tracker.err }

func (tracker *DetailTracker) request() DetailRequest {
	tracker.sequence++
	tracker.loading = true
	tracker.err = nil
	return DetailRequest{Sequence: tracker.sequence, Number: tracker.number}
}
