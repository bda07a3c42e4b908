// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package caseno

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete is returned by Parse for values that do not match the
// complete case number pattern.
var ErrIncomplete = errors.New("caseno: not a complete case number")

// Number is a complete case number split into its segments. All
// fields hold digits only.
type Number struct {
	Sequence    string // NNNNNNN
	CheckDigits string // DD
	Year        string // AAAA
	Segment     string // J
	Court       string // TR
	Origin      string // OOOO
}

// Parse splits a complete case number into its segments. Surrounding
// whitespace is ignored.
func Parse(value string) (Number, error) {
	trimmed := strings.TrimSpace(value)
	if !pattern.MatchString(trimmed) {
		return Number{}, fmt.Errorf("%w: %q", ErrIncomplete, value)
	}
	digits := Digits(trimmed)
	return Number{
		Sequence:    digits[0:7],
		CheckDigits: digits[7:9],
		Year:        digits[9:13],
		Segment:     digits[13:14],
		Court:       digits[14:16],
		Origin:      digits[16:20],
	}, nil
}

// String returns the masked form of the number.
func (number Number) String() string {
	return Mask(number.Sequence + number.CheckDigits + number.Year +
		number.Segment + number.Court + number.Origin)
}

// ChecksumValid verifies the check digits with the ISO 7064 mod 97-10
// scheme used by the unified numbering: the digits NNNNNNNAAAAJTROOOODD
// read as one integer leave remainder 1 when divided by 97.
func (number Number) ChecksumValid() bool {
	reordered := number.Sequence + number.Year + number.Segment +
		number.Court + number.Origin + number.CheckDigits
	return mod97(reordered) == 1
}

// ExpectedCheckDigits returns the check digits the other segments
// require.
func (number Number) ExpectedCheckDigits() string {
	base := number.Sequence + number.Year + number.Segment +
		number.Court + number.Origin + "00"
	return fmt.Sprintf("%02d", 98-mod97(base))
}

// SegmentName returns the name of the judicial segment (the J digit),
// or the empty string for an unassigned digit.
func (number Number) SegmentName() string {
	return segmentNames[number.Segment]
}

var segmentNames = map[string]string{
	"1": "Supremo Tribunal Federal",
	"2": "Conselho Nacional de Justiça",
	"3": "Superior Tribunal de Justiça",
	"4": "Justiça Federal",
	"5": "Justiça do Trabalho",
	"6": "Justiça Eleitoral",
	"7": "Justiça Militar da União",
	"8": "Justiça dos Estados e do Distrito Federal",
	"9": "Justiça Militar Estadual",
}

// mod97 computes the remainder of a decimal digit string divided by 97
// without overflowing.
func mod97(digits string) int {
	remainder := 0
	for index := 0; index < len(digits); index++ {
		remainder = (remainder*10 + int(digits[index]-'0')) % 97
	}
	return remainder
}
