// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"testing"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

func sampleItems() []lawsuit.ListItem {
	return []lawsuit.ListItem{
		{
			ID: "a", Number: completeNumber, Court: "TJSP", Degree: lawsuit.DegreeFirst,
			PrimaryClass: "Procedimento Comum Cível", PrimarySubject: "Dano Moral",
			LastMovement: &lawsuit.MovementSummary{Description: "Conclusos para sentença"},
		},
		{
			ID: "b", Number: "1000001-73.2023.4.03.6100", Court: "TRF3", Degree: lawsuit.DegreeSecond,
			PrimaryClass: "Apelação", PrimarySubject: "Fraude",
		},
		{
			ID: "c", Number: "0009999-10.2022.8.26.0001", Court: "TJSP", Degree: lawsuit.DegreeSuperior,
			PrimaryClass: "Recurso Especial", PrimarySubject: "Contratos",
		},
	}
}

func ids(items []lawsuit.ListItem) []string {
	result := make([]string, len(items))
	for index, item := range items {
		result[index] = item.ID
	}
	return result
}

func equalIDs(got []lawsuit.ListItem, want ...string) bool {
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		return false
	}
	for index := range want {
		if gotIDs[index] != want[index] {
			return false
		}
	}
	return true
}

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		keyword string
		want    []string
	}{
		{"no filters", "", "", []string{"a", "b", "c"}},
		{"partial number ignored", "0001234", "", []string{"a", "b", "c"}},
		{"complete number", completeNumber, "", []string{"a"}},
		{"keyword on court", "", "tjsp", []string{"a", "c"}},
		{"keyword on subject", "", "FRAUDE", []string{"b"}},
		{"keyword on movement", "", "sentença", []string{"a"}},
		{"keyword on degree", "", "superior", []string{"c"}},
		{"keyword trimmed", "", "  apelação ", []string{"b"}},
		{"number and keyword compose", completeNumber, "trf3", nil},
		{"number and matching keyword", completeNumber, "dano", []string{"a"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Apply(sampleItems(), test.search, test.keyword)
			if !equalIDs(got, test.want...) {
				t.Errorf("Apply = %v, want %v", ids(got), test.want)
			}
		})
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	items := sampleItems()
	Apply(items, "", "tjsp")
	if !equalIDs(items, "a", "b", "c") {
		t.Errorf("input modified: %v", ids(items))
	}
}
