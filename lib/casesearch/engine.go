// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"log/slog"
	"strings"
	"time"

	"github.com/bureau-foundation/lawsuits/lib/caseno"
	"github.com/bureau-foundation/lawsuits/lib/clock"
	"github.com/bureau-foundation/lawsuits/lib/debounce"
	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// DefaultDebounceDelay is how long simple-mode input must be idle
// before a query is sent.
const DefaultDebounceDelay = 800 * time.Millisecond

// Config holds configuration for creating an Engine.
type Config struct {
	// PageSize is the initial page size. Defaults to
	// lawsuit.DefaultLimit.
	PageSize int

	// DebounceDelay defaults to DefaultDebounceDelay.
	DebounceDelay time.Duration

	// Clock drives the debounce timer. Defaults to clock.Real().
	Clock clock.Clock

	// Post moves debounced work onto the host's event loop. See
	// debounce.Post. The host must Drain after the posted function
	// runs.
	Post debounce.Post

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Engine is one search session. It is not safe for concurrent use;
// see the package documentation.
type Engine struct {
	state State

	// applied is the simple filter set whose results are (or are
	// about to be) on screen. Change detection compares against it
	// and it only advances when a query is issued or the change is
	// resolved locally.
	applied SimpleFilters

	delay    time.Duration
	debounce *debounce.Slot
	logger   *slog.Logger

	results     ResultSet
	sequence    uint64
	lastRequest Request
	outbox      []Request
}

// NewEngine returns an engine in simple mode with no filters. Call
// Start to issue the initial query.
func NewEngine(config Config) *Engine {
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = lawsuit.DefaultLimit
	}
	delay := config.DebounceDelay
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		state:    State{Mode: ModeSimple, PageSize: pageSize},
		delay:    delay,
		debounce: debounce.New(clk, config.Post),
		logger:   logger,
	}
}

// Start issues the initial, unfiltered query.
func (engine *Engine) Start() {
	engine.issue(KindReplace, Params(engine.state))
}

// Close cancels any pending debounced query.
func (engine *Engine) Close() {
	engine.debounce.Cancel()
}

// State returns the current filter state.
func (engine *Engine) State() State { return engine.state }

// Routing returns the routing derived from the current state.
func (engine *Engine) Routing() Routing { return Route(engine.state) }

// Results returns the API-driven result set.
func (engine *Engine) Results() ResultSet { return engine.results }

// DebouncePending reports whether a debounced query is waiting to
// fire.
func (engine *Engine) DebouncePending() bool { return engine.debounce.Pending() }

// Visible returns the list to display: the loaded items narrowed by
// Apply when local filters are active, the loaded items otherwise.
func (engine *Engine) Visible() []lawsuit.ListItem {
	if engine.Routing().HasLocalFilters {
		filters := engine.state.Simple
		return Apply(engine.results.Items, filters.Search, filters.Keyword)
	}
	return engine.results.Items
}

// SearchError reports whether the simple search field holds a
// full-length value that is not a valid case number. While set, no
// query is issued for simple-mode changes.
func (engine *Engine) SearchError() bool {
	search := engine.state.Simple.Search
	return engine.state.Mode == ModeSimple && caseno.IsFull(search) && !caseno.IsValid(search)
}

// Drain returns the queued requests and empties the outbox.
func (engine *Engine) Drain() []Request {
	requests := engine.outbox
	engine.outbox = nil
	return requests
}

// Complete merges the outcome of a request. Responses to any request
// other than the latest issued are discarded and Complete returns
// false.
func (engine *Engine) Complete(response Response) bool {
	if response.Request.Sequence != engine.sequence {
		engine.logger.Debug("discarding stale search response",
			"sequence", response.Request.Sequence,
			"latest", engine.sequence,
		)
		return false
	}

	engine.results.Loading = false
	if response.Err != nil {
		engine.results.Err = response.Err
		engine.logger.Warn("search request failed",
			"kind", response.Request.Kind.String(),
			"error", response.Err,
		)
		return true
	}
	engine.results.merge(response.Request, response.Page)
	return true
}

// SetSearch sets the simple-mode case number field.
func (engine *Engine) SetSearch(value string) {
	engine.state.Simple.Search = value
	engine.evaluate()
}

// SetKeyword sets the simple-mode keyword field.
func (engine *Engine) SetKeyword(value string) {
	engine.state.Simple.Keyword = value
	engine.evaluate()
}

// SetCourt sets the simple-mode court filter. The empty string clears
// it.
func (engine *Engine) SetCourt(court string) {
	engine.state.Simple.Court = court
	engine.evaluate()
}

// SetDegree sets the simple-mode degree filter.
func (engine *Engine) SetDegree(degree lawsuit.Degree) {
	engine.state.Simple.Degree = degree
	engine.evaluate()
}

// SetAdvancedQuery, SetAdvancedCourt and SetAdvancedDegree edit the
// advanced form. Nothing is queried until SubmitAdvanced.
func (engine *Engine) SetAdvancedQuery(query string) { engine.state.Advanced.Query = query }

func (engine *Engine) SetAdvancedCourt(court string) { engine.state.Advanced.Court = court }

func (engine *Engine) SetAdvancedDegree(degree lawsuit.Degree) {
	engine.state.Advanced.Degree = degree
}

// SubmitAdvanced queries the API with the advanced form immediately.
// It does nothing outside advanced mode.
func (engine *Engine) SubmitAdvanced() bool {
	if engine.state.Mode != ModeAdvanced {
		return false
	}
	engine.issue(KindReplace, Params(engine.state))
	return true
}

// SetMode switches between the simple and advanced forms. The form
// being left is cleared, any pending debounced query is cancelled and
// an unfiltered query is issued at once. Switching to the current
// mode does nothing.
func (engine *Engine) SetMode(mode Mode) {
	if mode == engine.state.Mode {
		return
	}
	engine.debounce.Cancel()
	switch mode {
	case ModeSimple:
		engine.state.Advanced = AdvancedFilters{}
	case ModeAdvanced:
		engine.state.Simple = SimpleFilters{}
	}
	engine.state.Mode = mode
	engine.applied = engine.state.Simple
	engine.logger.Debug("search mode changed", "mode", mode.String())
	engine.issue(KindReplace, lawsuit.ListParams{Limit: engine.state.PageSize})
}

// Clear resets the active form and reloads the unfiltered list.
func (engine *Engine) Clear() {
	engine.debounce.Cancel()
	switch engine.state.Mode {
	case ModeSimple:
		engine.state.Simple = SimpleFilters{}
	case ModeAdvanced:
		engine.state.Advanced = AdvancedFilters{}
	}
	engine.applied = engine.state.Simple
	engine.results.Err = nil
	engine.issue(KindReplace, lawsuit.ListParams{Limit: engine.state.PageSize})
}

// ClearAndRetry resets both forms, dismisses the current error and
// reloads the unfiltered list. It is the recovery action offered
// alongside Retry when a query fails.
func (engine *Engine) ClearAndRetry() {
	engine.debounce.Cancel()
	engine.state.Simple = SimpleFilters{}
	engine.state.Advanced = AdvancedFilters{}
	engine.applied = SimpleFilters{}
	engine.results.Err = nil
	engine.issue(KindReplace, lawsuit.ListParams{Limit: engine.state.PageSize})
}

// Retry re-issues the latest request, whether it was a new query or a
// load-more.
func (engine *Engine) Retry() {
	engine.results.Err = nil
	engine.issue(engine.lastRequest.Kind, engine.lastRequest.Params)
}

// evaluate runs after every simple-form edit and decides whether the
// edit needs a debounced query.
func (engine *Engine) evaluate() {
	engine.debounce.Cancel()

	current := engine.state.Simple
	if engine.state.Mode != ModeSimple || engine.SearchError() {
		engine.applied = current
		return
	}

	applied := engine.applied
	nowRemote := Route(engine.state).ShouldUseAPI
	wasRemote := Route(State{Mode: ModeSimple, Simple: applied}).ShouldUseAPI

	// Purely local narrowing on both sides of the edit: the loaded
	// page stays as it is.
	if !nowRemote && !wasRemote {
		engine.applied = current
		return
	}

	if !filtersChanged(applied, current) {
		return
	}

	engine.logger.Debug("scheduling search", "delay", engine.delay)
	engine.debounce.Schedule(engine.delay, engine.fire)
}

// fire issues the debounced query for the current simple form.
func (engine *Engine) fire() {
	if engine.state.Mode != ModeSimple {
		return
	}
	engine.applied = engine.state.Simple
	engine.issue(KindReplace, Params(engine.state))
}

// filtersChanged reports whether moving from previous to current
// changes what the API would be asked. Editing a case number only
// counts when it becomes complete, stops being complete, or changes
// while complete.
func filtersChanged(previous, current SimpleFilters) bool {
	if previous.Court != current.Court || previous.Degree != current.Degree {
		return true
	}
	if strings.TrimSpace(previous.Keyword) != strings.TrimSpace(current.Keyword) {
		return true
	}
	wasComplete := searchComplete(previous.Search)
	isComplete := searchComplete(current.Search)
	if wasComplete != isComplete {
		return true
	}
	return isComplete && strings.TrimSpace(previous.Search) != strings.TrimSpace(current.Search)
}

// issue queues a request and marks the result set loading.
func (engine *Engine) issue(kind RequestKind, params lawsuit.ListParams) {
	engine.sequence++
	request := Request{Sequence: engine.sequence, Kind: kind, Params: params}
	engine.lastRequest = request
	engine.results.Loading = true
	engine.outbox = append(engine.outbox, request)
	engine.logger.Debug("issuing search",
		"sequence", request.Sequence,
		"kind", kind.String(),
		"query", params.Query,
		"court", params.Court,
		"degree", string(params.Degree),
		"limit", params.Limit,
	)
}
