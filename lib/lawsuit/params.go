// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuit

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultLimit is the page size used when ListParams.Limit is unset.
const DefaultLimit = 20

// MaxLimit is the largest page size the API accepts.
const MaxLimit = 100

// ListParams are the query parameters of GET /lawsuits. Zero values
// are omitted from the request.
type ListParams struct {
	// Query is a case number or free-text keyword.
	Query  string
	Court  string
	Degree Degree
	Cursor string
	Limit  int
}

// Values encodes the parameters as a query string. Limit defaults to
// DefaultLimit, and Degree is only sent when it is one of the three
// enum values.
func (params ListParams) Values() url.Values {
	values := url.Values{}
	if query := strings.TrimSpace(params.Query); query != "" {
		values.Set("q", query)
	}
	if params.Court != "" {
		values.Set("tribunal", params.Court)
	}
	if code, ok := DegreeCode(params.Degree); ok {
		values.Set("grau", code)
	}
	if params.Cursor != "" {
		values.Set("cursor", params.Cursor)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	values.Set("limit", strconv.Itoa(limit))
	return values
}

// WithCursor returns a copy of params positioned at cursor.
func (params ListParams) WithCursor(cursor string) ListParams {
	params.Cursor = cursor
	return params
}
