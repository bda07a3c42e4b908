// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"strings"

	"github.com/bureau-foundation/lawsuits/lib/caseno"
	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// Mode selects the search form.
type Mode int

const (
	// ModeSimple is the live-filtering form: case number, keyword,
	// court and degree, applied as the user types.
	ModeSimple Mode = iota

	// ModeAdvanced is the free-query form, applied on submission.
	ModeAdvanced
)

func (mode Mode) String() string {
	switch mode {
	case ModeSimple:
		return "simple"
	case ModeAdvanced:
		return "advanced"
	default:
		return "unknown"
	}
}

// SimpleFilters are the fields of the simple search form.
type SimpleFilters struct {
	// Search is a (possibly partial) case number.
	Search  string
	Keyword string
	Court   string
	Degree  lawsuit.Degree
}

// IsZero reports whether no simple filter is set.
func (filters SimpleFilters) IsZero() bool {
	return filters == SimpleFilters{}
}

// AdvancedFilters are the fields of the advanced search form.
type AdvancedFilters struct {
	Query  string
	Court  string
	Degree lawsuit.Degree
}

// State is the filter state of a search session.
type State struct {
	Mode     Mode
	Simple   SimpleFilters
	Advanced AdvancedFilters
	PageSize int
}

// Routing is derived from State on every change.
type Routing struct {
	// HasAPIFilters is set in simple mode when a court or degree is
	// selected. Those filters only exist server-side.
	HasAPIFilters bool

	// CompleteValid is set when the search field holds a complete,
	// well-formed case number.
	CompleteValid bool

	// HasKeyword is set when the keyword is non-blank.
	HasKeyword bool

	// ShouldUseAPI is set when the displayed list must come from the
	// API rather than local narrowing.
	ShouldUseAPI bool

	// HasLocalFilters is set in simple mode when the displayed list
	// is the loaded page narrowed by Apply.
	HasLocalFilters bool
}

// Route computes the routing of state.
func Route(state State) Routing {
	simple := state.Mode == ModeSimple
	filters := state.Simple

	var routing Routing
	routing.HasAPIFilters = simple && (filters.Court != "" || filters.Degree != lawsuit.DegreeUnset)
	routing.CompleteValid = searchComplete(filters.Search)
	routing.HasKeyword = strings.TrimSpace(filters.Keyword) != ""
	routing.ShouldUseAPI = routing.HasAPIFilters ||
		(simple && (routing.CompleteValid || routing.HasKeyword))
	routing.HasLocalFilters = simple && !routing.ShouldUseAPI &&
		(strings.TrimSpace(filters.Search) != "" || routing.HasKeyword)
	return routing
}

// searchComplete reports whether search holds a complete, valid case
// number.
func searchComplete(search string) bool {
	return caseno.IsComplete(search) && caseno.IsValid(search)
}
