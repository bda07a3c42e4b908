// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Span is a half-open range of rune offsets.
type Span struct {
	Start int
	End   int
}

// MatchSpans returns every non-overlapping case-insensitive occurrence
// of keyword in text, left to right. Offsets count runes. A blank
// keyword matches nothing.
func MatchSpans(text, keyword string, slab *util.Slab) []Span {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" || text == "" {
		return nil
	}
	return matchSpans([]rune(text), 0, []rune(strings.ToLower(keyword)), slab)
}

// matchSpans collects the occurrences in runes, whose first rune sits
// at offset in the full text. The matcher prefers the occurrence on a
// word boundary over the leftmost one, so both sides of each match are
// searched again.
func matchSpans(runes []rune, offset int, pattern []rune, slab *util.Slab) []Span {
	if len(runes) < len(pattern) {
		return nil
	}
	chars := util.RunesToChars(runes)
	result, _ := algo.ExactMatchNaive(false, false, true, &chars, pattern, false, slab)
	if result.Start < 0 || result.End <= result.Start {
		return nil
	}

	spans := matchSpans(runes[:result.Start], offset, pattern, slab)
	spans = append(spans, Span{Start: offset + result.Start, End: offset + result.End})
	return append(spans, matchSpans(runes[result.End:], offset+result.End, pattern, slab)...)
}

// Highlight renders text with base style and every keyword occurrence
// in match style.
func Highlight(text, keyword string, base, match lipgloss.Style, slab *util.Slab) string {
	spans := MatchSpans(text, keyword, slab)
	if len(spans) == 0 {
		return base.Render(text)
	}

	runes := []rune(text)
	var builder strings.Builder
	previous := 0
	for _, span := range spans {
		if span.Start > previous {
			builder.WriteString(base.Render(string(runes[previous:span.Start])))
		}
		builder.WriteString(match.Render(string(runes[span.Start:span.End])))
		previous = span.End
	}
	if previous < len(runes) {
		builder.WriteString(base.Render(string(runes[previous:])))
	}
	return builder.String()
}
