// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package caseno

import (
	"regexp"
	"strings"
)

// DigitCount is the number of digits in a complete case number.
const DigitCount = 20

// Length is the length of a complete, masked case number.
const Length = DigitCount + 5

// pattern matches a complete case number. The judicial segment is a
// single digit.
var pattern = regexp.MustCompile(`^\d{7}-\d{2}\.\d{4}\.\d\.\d{2}\.\d{4}$`)

// separators maps a digit offset to the separator written before the
// digit at that offset.
var separators = map[int]byte{
	7:  '-',
	9:  '.',
	13: '.',
	14: '.',
	16: '.',
}

// Mask strips every non-digit from raw, truncates to DigitCount digits
// and inserts separators progressively, so a partially typed number is
// formatted as far as it goes:
//
//	Mask("0001234")         == "0001234"
//	Mask("00012345620")     == "0001234-56.20"
//	Mask("00012345620248260100") == "0001234-56.2024.8.26.0100"
//
// Mask is idempotent on already-masked input.
func Mask(raw string) string {
	digits := Digits(raw)
	if len(digits) > DigitCount {
		digits = digits[:DigitCount]
	}

	var builder strings.Builder
	builder.Grow(Length)
	for offset := 0; offset < len(digits); offset++ {
		if separator, ok := separators[offset]; ok {
			builder.WriteByte(separator)
		}
		builder.WriteByte(digits[offset])
	}
	return builder.String()
}

// Digits returns only the ASCII digits of value, in order.
func Digits(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))
	for index := 0; index < len(value); index++ {
		if value[index] >= '0' && value[index] <= '9' {
			builder.WriteByte(value[index])
		}
	}
	return builder.String()
}

// IsComplete reports whether the trimmed value matches the full case
// number pattern. Empty or whitespace-only values are not complete.
func IsComplete(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	return pattern.MatchString(trimmed)
}

// IsFull reports whether the trimmed value has reached the length of
// a complete case number, whether or not it matches the pattern. A
// full value that is not valid is "finished and wrong", as opposed to
// a shorter value the user is still typing.
func IsFull(value string) bool {
	return len(strings.TrimSpace(value)) >= Length
}

// IsValid reports whether value is acceptable as a search term. Empty
// values and partial input shorter than a complete number are valid;
// once the value is full length it must match the pattern exactly.
func IsValid(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || !IsFull(trimmed) {
		return true
	}
	return pattern.MatchString(trimmed)
}
