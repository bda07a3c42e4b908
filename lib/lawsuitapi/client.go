// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuitapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/bureau-foundation/lawsuits/lib/clock"
	"github.com/bureau-foundation/lawsuits/lib/netutil"
)

// requestIDHeader carries a per-request UUID so client and server
// logs can be correlated.
const requestIDHeader = "X-Request-Id"

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL of the API, for example
	// "https://api.example.com/v1". Required. Must be http or https.
	BaseURL string

	// HTTPClient is used for all requests. Defaults to a client using
	// NewTransport(nil, false).
	HTTPClient *http.Client

	// UserAgent is sent with every request when set.
	UserAgent string

	// Clock measures request latency. Defaults to clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client talks to the lawsuit API. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient validates config and returns a Client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, errors.New("lawsuitapi: BaseURL is required")
	}
	baseURL, err := url.Parse(strings.TrimRight(config.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("lawsuitapi: parsing BaseURL: %w", err)
	}
	if baseURL.Scheme != "http" && baseURL.Scheme != "https" {
		return nil, fmt.Errorf("lawsuitapi: BaseURL must be http or https (got %q)", config.BaseURL)
	}
	if baseURL.Host == "" {
		return nil, fmt.Errorf("lawsuitapi: BaseURL has no host (got %q)", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: NewTransport(nil, false)}
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  config.UserAgent,
		clock:      clk,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root the client was configured with.
func (client *Client) BaseURL() string {
	return client.baseURL.String()
}

// get issues a GET for path (already escaped, relative to the base URL)
// with the given query and decodes a 2xx JSON body into result. Every
// failure is returned as an *APIError.
func (client *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	encodedQuery := query.Encode()
	target := client.baseURL.String() + path
	if encodedQuery != "" {
		target += "?" + encodedQuery
	}

	requestID := uuid.NewString()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &APIError{Message: "requisição inválida", RequestID: requestID, Err: err}
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set(requestIDHeader, requestID)
	if client.userAgent != "" {
		request.Header.Set("User-Agent", client.userAgent)
	}

	start := client.clock.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Debug("lawsuit API request failed",
			"path", path, "request_id", requestID, "error", err)
		return &APIError{Message: transportMessage(err), RequestID: requestID, Err: err}
	}
	defer response.Body.Close()

	client.logger.Debug("lawsuit API request",
		"path", path,
		"query", encodedQuery,
		"status", response.StatusCode,
		"request_id", requestID,
		"duration", clock.Since(client.clock, start),
	)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message := netutil.ErrorMessage(response.Body)
		if message == "" {
			message = statusMessage(response.StatusCode)
		}
		return &APIError{StatusCode: response.StatusCode, Message: message, RequestID: requestID}
	}

	if err := netutil.DecodeResponse(response.Body, result); err != nil {
		return &APIError{
			StatusCode: response.StatusCode,
			Message:    "resposta inválida do servidor",
			RequestID:  requestID,
			Err:        err,
		}
	}
	return nil
}

// transportMessage describes a failure that produced no response.
func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "requisição cancelada"
	case errors.Is(err, context.DeadlineExceeded):
		return "tempo limite da requisição excedido"
	default:
		return "falha de conexão com o servidor"
	}
}
