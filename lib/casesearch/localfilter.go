// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package casesearch

import (
	"strings"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// Apply narrows items by a case number and a keyword. The number only
// filters once it is complete and valid; it keeps items whose number
// contains it. The keyword keeps items whose number, court, primary
// class, primary subject, last movement description or degree contain
// it. Both comparisons are case-insensitive, and when both filters are
// active an item must pass both.
//
// Apply never modifies items. With no active filter it returns items
// itself.
func Apply(items []lawsuit.ListItem, search, keyword string) []lawsuit.ListItem {
	normalizedSearch := ""
	if searchComplete(search) {
		normalizedSearch = normalize(search)
	}
	normalizedKeyword := normalize(keyword)

	if normalizedSearch == "" && normalizedKeyword == "" {
		return items
	}

	filtered := make([]lawsuit.ListItem, 0, len(items))
	for _, item := range items {
		if normalizedSearch != "" && !strings.Contains(strings.ToLower(item.Number), normalizedSearch) {
			continue
		}
		if normalizedKeyword != "" && !strings.Contains(searchableText(item), normalizedKeyword) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// KeywordFields returns the fields of item a keyword is matched
// against, in display order.
func KeywordFields(item lawsuit.ListItem) []string {
	description := ""
	if item.LastMovement != nil {
		description = item.LastMovement.Description
	}
	return []string{
		item.Number,
		item.Court,
		item.PrimaryClass,
		item.PrimarySubject,
		description,
		string(item.Degree),
	}
}

func searchableText(item lawsuit.ListItem) string {
	return strings.ToLower(strings.Join(KeywordFields(item), " "))
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
