// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuitapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// APIError is the uniform error returned by every Client method.
type APIError struct {
	// StatusCode is the HTTP status of the response, or zero when no
	// response was received.
	StatusCode int

	// Message is a human-readable description suitable for display.
	Message string

	// RequestID is the X-Request-Id sent with the failed request.
	RequestID string

	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (err *APIError) Error() string {
	if err.StatusCode == 0 {
		return "lawsuitapi: " + err.Message
	}
	return fmt.Sprintf("lawsuitapi: HTTP %d: %s", err.StatusCode, err.Message)
}

func (err *APIError) Unwrap() error { return err.Err }

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == http.StatusNotFound
}

// IsTransient reports whether err is likely to go away if the request
// is repeated: a transport failure, a 429, or a 5xx response. A
// cancelled context is not transient.
func IsTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	switch {
	case apiError.StatusCode == 0:
		return true
	case apiError.StatusCode == http.StatusTooManyRequests:
		return true
	case apiError.StatusCode >= 500:
		return true
	default:
		return false
	}
}

// statusMessage is the fallback message for an error response without
// a usable body.
func statusMessage(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "processo não encontrado"
	case http.StatusBadRequest:
		return "parâmetros de busca inválidos"
	case http.StatusTooManyRequests:
		return "muitas requisições, tente novamente em instantes"
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return "resposta inesperada do servidor"
}
