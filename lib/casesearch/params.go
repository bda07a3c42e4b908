// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"strings"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// Params builds the list query for the active form of state. In simple
// mode the query is the complete case number when there is one and the
// trimmed keyword otherwise, never both. A degree outside the enum is
// dropped. The cursor is always empty: a new filter set starts a new
// pagination sequence.
func Params(state State) lawsuit.ListParams {
	params := lawsuit.ListParams{Limit: state.PageSize}

	switch state.Mode {
	case ModeAdvanced:
		params.Query = strings.TrimSpace(state.Advanced.Query)
		params.Court = state.Advanced.Court
		params.Degree = encodableDegree(state.Advanced.Degree)
	default:
		filters := state.Simple
		params.Court = filters.Court
		params.Degree = encodableDegree(filters.Degree)
		if searchComplete(filters.Search) {
			params.Query = strings.TrimSpace(filters.Search)
		} else if keyword := strings.TrimSpace(filters.Keyword); keyword != "" {
			params.Query = keyword
		}
	}
	return params
}

func encodableDegree(degree lawsuit.Degree) lawsuit.Degree {
	if _, ok := lawsuit.DegreeCode(degree); ok {
		return degree
	}
	return lawsuit.DegreeUnset
}
