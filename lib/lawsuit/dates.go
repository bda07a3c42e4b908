// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuit

import "time"

// dateLayouts are the timestamp shapes the API has been seen to use.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDateTime renders an API timestamp as DD/MM/YYYY HH:mm in the
// local time zone. Empty input yields empty output and input that does
// not parse is returned unchanged.
func FormatDateTime(value string) string {
	parsed, ok := parseDate(value)
	if !ok {
		return value
	}
	return parsed.Local().Format("02/01/2006 15:04")
}

// FormatDate renders an API timestamp as DD/MM/YYYY.
func FormatDate(value string) string {
	parsed, ok := parseDate(value)
	if !ok {
		return value
	}
	return parsed.Local().Format("02/01/2006")
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
