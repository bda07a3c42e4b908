// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import "github.com/bureau-foundation/lawsuits/lib/caseno"

// PageSizeOptions are the page sizes offered to the user.
var PageSizeOptions = []int{10, 20, 30, 50, 100}

// LoadMore queues the next page of the current result set. It does
// nothing while a request is in flight, after the latest request
// failed, or when there is no next page. The page is fetched with the
// parameters that produced the loaded items, not those of a later
// query.
func (engine *Engine) LoadMore() bool {
	results := engine.results
	if results.Loading || results.Err != nil || !results.HasMore || results.NextCursor == "" {
		return false
	}
	params := results.Params.WithCursor(results.NextCursor)
	engine.issue(KindAppend, params)
	return true
}

// SetPageSize changes the page size and re-queries the active form at
// once, starting a new pagination sequence. A pending debounced query
// is superseded.
func (engine *Engine) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	engine.debounce.Cancel()
	engine.state.PageSize = size
	engine.applied = engine.state.Simple
	engine.issue(KindReplace, Params(engine.state))
}

// ShowLoadMore reports whether the load-more control should be shown.
// It is hidden while the list is narrowed locally, because the loaded
// page may itself be incomplete relative to the local filter.
func (engine *Engine) ShowLoadMore() bool {
	if !engine.results.HasMore || engine.results.Err != nil {
		return false
	}
	if engine.state.Mode == ModeAdvanced {
		return true
	}
	routing := engine.Routing()
	if routing.ShouldUseAPI {
		return true
	}
	return !routing.HasLocalFilters &&
		!caseno.IsComplete(engine.state.Simple.Search) &&
		!routing.HasKeyword
}
