// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuitapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewTransport wraps base (http.DefaultTransport when nil) so responses
// are requested and decoded compressed. With traced set, every request
// also becomes a client span on the global tracer provider.
func NewTransport(base http.RoundTripper, traced bool) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	transport := gzhttp.Transport(base)
	if traced {
		transport = otelhttp.NewTransport(transport)
	}
	return transport
}
