// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/bureau-foundation/lawsuits/lib/lawsuitapi"
)

// ErrorCategory classifies command errors so scripts can tell bad
// input from a missing case or a flaky API by exit code alone.
type ErrorCategory string

const (
	// CategoryValidation: bad flags, arguments or configuration.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound: the requested case does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient: network failure, 429 or 5xx. Retrying may
	// help.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal: anything else.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by commands.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

func (e *ToolError) Error() string { return e.Err.Error() }

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode maps the category to the process exit status.
func (e *ToolError) ExitCode() int {
	switch e.Category {
	case CategoryValidation:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryTransient:
		return 4
	default:
		return 1
	}
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// apiFailure categorizes an error returned by the API client.
func apiFailure(action string, err error) *ToolError {
	switch {
	case lawsuitapi.IsNotFound(err):
		return NotFound("%s: %w", action, err)
	case lawsuitapi.IsTransient(err):
		return Transient("%s: %w", action, err)
	default:
		return Internal("%s: %w", action, err)
	}
}

// exitCode returns the exit status for an error returned by run.
func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}
