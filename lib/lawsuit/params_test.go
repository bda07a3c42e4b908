// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuit

import "testing"

func TestListParamsValues(t *testing.T) {
	tests := []struct {
		name   string
		params ListParams
		want   string
	}{
		{"defaults", ListParams{}, "limit=20"},
		{"keyword trimmed", ListParams{Query: "  fraud ", Limit: 50}, "limit=50&q=fraud"},
		{"court and degree", ListParams{Court: "TJSP", Degree: DegreeSecond}, "grau=G2&limit=20&tribunal=TJSP"},
		{"superior", ListParams{Degree: DegreeSuperior}, "grau=SUP&limit=20"},
		{"unknown degree omitted", ListParams{Degree: Degree("X")}, "limit=20"},
		{"cursor", ListParams{Cursor: "abc", Limit: 10}, "cursor=abc&limit=10"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.params.Values().Encode(); got != test.want {
				t.Errorf("Values() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestWithCursorCopies(t *testing.T) {
	params := ListParams{Query: "x"}
	next := params.WithCursor("c")
	if params.Cursor != "" || next.Cursor != "c" || next.Query != "x" {
		t.Errorf("params = %+v, next = %+v", params, next)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2024-03-01"); got != "01/03/2024" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatDateTime("2024-03-01T10:30:00"); got != "01/03/2024 10:30" {
		t.Errorf("FormatDateTime = %q", got)
	}
	if got := FormatDateTime(""); got != "" {
		t.Errorf("FormatDateTime(\"\") = %q", got)
	}
	if got := FormatDate("ontem"); got != "ontem" {
		t.Errorf("FormatDate(unparseable) = %q", got)
	}
}
