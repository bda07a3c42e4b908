// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil holds the HTTP body helpers shared by the lawsuit API
// client. Every read of a response body is bounded by MaxResponseSize so
// a misbehaving server cannot exhaust memory.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// MaxResponseSize bounds response body reads: 32 MB. The largest
// legitimate response is a 100-item list page, orders of magnitude
// smaller.
const MaxResponseSize int64 = 32 << 20

// maxErrorMessage bounds the length of an error message taken from a
// non-JSON error body.
const maxErrorMessage = 512

// ReadResponse reads a response body up to MaxResponseSize bytes.
func ReadResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxResponseSize))
}

// DecodeResponse reads a JSON response body (up to MaxResponseSize
// bytes) and decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := ReadResponse(body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// ErrorMessage extracts a human-readable message from an error
// response body. JSON bodies of the form {"message": "..."} or
// {"error": "..."} yield that field; anything else yields the trimmed
// body text, truncated. Read errors are ignored: a partial body is
// still useful in an error message.
func ErrorMessage(body io.Reader) string {
	data, _ := ReadResponse(body)

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &envelope) == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	text := strings.TrimSpace(string(data))
	if len(text) > maxErrorMessage {
		text = text[:maxErrorMessage] + "…"
	}
	return text
}
