// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"errors"
	"testing"
	"time"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

func TestLoadMoreAppends(t *testing.T) {
	engine, fake := newTestEngine(t)
	engine.SetCourt("TJSP")
	fake.Advance(DefaultDebounceDelay)
	first := requireOneRequest(t, engine)
	engine.Complete(Response{
		Request: first,
		Page:    lawsuit.Page{Items: sampleItems()[:2], NextCursor: "c2", HasMore: true},
	})

	if !engine.LoadMore() {
		t.Fatal("LoadMore refused")
	}
	more := requireOneRequest(t, engine)
	want := lawsuit.ListParams{Limit: 20, Court: "TJSP", Cursor: "c2"}
	if more.Params != want || more.Kind != KindAppend {
		t.Errorf("request = %+v, want append of %+v", more, want)
	}

	if engine.LoadMore() {
		t.Error("LoadMore allowed while loading")
	}
	requireNoRequest(t, engine)

	next := lawsuit.MapListResponse(lawsuit.ListResponse{Items: []lawsuit.APIListItem{{Number: "x", Court: "TJSP"}}})
	engine.Complete(Response{Request: more, Page: next})

	results := engine.Results()
	if len(results.Items) != 3 || results.Items[2].ID != "x-2" {
		t.Errorf("items = %v", ids(results.Items))
	}
	if results.HasMore || results.NextCursor != "" {
		t.Errorf("HasMore = %v, cursor = %q", results.HasMore, results.NextCursor)
	}
	if engine.LoadMore() {
		t.Error("LoadMore allowed past the last page")
	}
}

func TestLoadMoreAfterFailedQuery(t *testing.T) {
	engine, fake := newTestEngine(t)
	engine.SetCourt("TJSP")
	fake.Advance(DefaultDebounceDelay)
	failed := requireOneRequest(t, engine)
	engine.Complete(Response{Request: failed, Err: errors.New("lawsuitapi: HTTP 503")})

	// The unfiltered page and its cursor are still loaded, but they do
	// not belong to the TJSP query that failed.
	if engine.ShowLoadMore() {
		t.Error("ShowLoadMore while the latest query failed")
	}
	if engine.LoadMore() {
		t.Fatal("LoadMore continued the previous result set after a failed query")
	}
	requireNoRequest(t, engine)
	if got := len(engine.Results().Items); got != 3 {
		t.Errorf("items = %d, want the 3 unfiltered items untouched", got)
	}

	engine.Retry()
	retried := requireOneRequest(t, engine)
	engine.Complete(Response{
		Request: retried,
		Page:    lawsuit.Page{Items: sampleItems()[:1], NextCursor: "tjsp-2", HasMore: true},
	})
	if !engine.LoadMore() {
		t.Fatal("LoadMore refused after a successful retry")
	}
	more := requireOneRequest(t, engine)
	want := lawsuit.ListParams{Limit: 20, Court: "TJSP", Cursor: "tjsp-2"}
	if more.Params != want {
		t.Errorf("params = %+v, want %+v", more.Params, want)
	}
}

func TestLoadMoreContinuesLoadedQuery(t *testing.T) {
	engine, _ := newTestEngine(t)
	if !engine.LoadMore() {
		t.Fatal("LoadMore refused")
	}
	second := requireOneRequest(t, engine)
	engine.Complete(Response{
		Request: second,
		Page:    lawsuit.Page{Items: sampleItems()[:1], NextCursor: "cursor-2", HasMore: true},
	})

	if !engine.LoadMore() {
		t.Fatal("LoadMore refused on the second page")
	}
	third := requireOneRequest(t, engine)
	want := lawsuit.ListParams{Limit: lawsuit.DefaultLimit, Cursor: "cursor-2"}
	if third.Params != want {
		t.Errorf("params = %+v, want %+v", third.Params, want)
	}
	if got := engine.Results().Params; got != (lawsuit.ListParams{Limit: lawsuit.DefaultLimit}) {
		t.Errorf("result set params = %+v", got)
	}
}

func TestSetPageSizeRequeriesImmediately(t *testing.T) {
	engine, fake := newTestEngine(t)
	engine.SetKeyword("fraud")
	fake.Advance(DefaultDebounceDelay)
	engine.Complete(Response{
		Request: requireOneRequest(t, engine),
		Page:    lawsuit.Page{Items: sampleItems(), NextCursor: "c2", HasMore: true},
	})

	engine.SetCourt("TJSP")
	engine.SetPageSize(50)
	request := requireOneRequest(t, engine)
	want := lawsuit.ListParams{Limit: 50, Query: "fraud", Court: "TJSP"}
	if request.Params != want {
		t.Errorf("params = %+v, want %+v", request.Params, want)
	}
	if engine.DebouncePending() {
		t.Error("pending debounce survived the page-size change")
	}
	fake.Advance(time.Hour)
	requireNoRequest(t, engine)

	engine.SetPageSize(0)
	requireNoRequest(t, engine)
}

func TestSetPageSizeAdvancedMode(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.SetMode(ModeAdvanced)
	engine.Drain()
	engine.SetAdvancedQuery("dano")
	engine.SetPageSize(100)
	request := requireOneRequest(t, engine)
	if request.Params != (lawsuit.ListParams{Limit: 100, Query: "dano"}) {
		t.Errorf("params = %+v", request.Params)
	}
}

func TestShowLoadMore(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Engine)
		want  bool
	}{
		{"unfiltered", func(*Engine) {}, true},
		{"partial number narrows locally", func(engine *Engine) { engine.SetSearch("0001") }, false},
		{"court filter", func(engine *Engine) { engine.SetCourt("TJSP") }, true},
		{"keyword", func(engine *Engine) { engine.SetKeyword("fraud") }, true},
		{"advanced", func(engine *Engine) { engine.state.Mode = ModeAdvanced }, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			engine, _ := newTestEngine(t)
			test.setup(engine)
			if got := engine.ShowLoadMore(); got != test.want {
				t.Errorf("ShowLoadMore = %v, want %v", got, test.want)
			}
		})
	}

	engine, _ := newTestEngine(t)
	engine.results.HasMore = false
	if engine.ShowLoadMore() {
		t.Error("ShowLoadMore without more pages")
	}
}
