// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import "github.com/bureau-foundation/lawsuits/lib/lawsuit"

// RequestKind says how a response is merged into the result set.
type RequestKind int

const (
	// KindReplace starts a new result set.
	KindReplace RequestKind = iota

	// KindAppend adds the next page to the current result set.
	KindAppend
)

func (kind RequestKind) String() string {
	if kind == KindAppend {
		return "append"
	}
	return "replace"
}

// Request is a list query the host must execute.
type Request struct {
	Sequence uint64
	Kind     RequestKind
	Params   lawsuit.ListParams
}

// Response reports the outcome of a Request back to the engine.
type Response struct {
	Request Request
	Page    lawsuit.Page
	Err     error
}

// ResultSet is the API-driven list: every page loaded since the last
// replace, the cursor to continue from and the request status.
type ResultSet struct {
	Items      []lawsuit.ListItem
	NextCursor string
	HasMore    bool

	// Params are the parameters of the replace request that started
	// Items, without a cursor. Appended pages continue from them.
	Params lawsuit.ListParams

	// Loading is set while the latest request is in flight.
	Loading bool

	// Err is the error of the latest request, nil once a later
	// request succeeds.
	Err error
}

// merge folds a successful response into the result set.
func (results *ResultSet) merge(request Request, page lawsuit.Page) {
	switch request.Kind {
	case KindAppend:
		results.Items = append(results.Items, lawsuit.Reindex(page.Items, len(results.Items))...)
	default:
		results.Items = page.Items
		results.Params = request.Params.WithCursor("")
	}
	results.NextCursor = page.NextCursor
	results.HasMore = page.HasMore
	results.Err = nil
}
