// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package lawsuitapi is a typed client for the lawsuit search API.
//
// The API has two endpoints: GET /lawsuits, a cursor-paginated search
// filtered by free text (q), court (tribunal) and degree (grau), and
// GET /lawsuits/{number}, the full record of one case. Responses are
// mapped into the lawsuit package's view types before they are
// returned, so callers never see the wire format.
//
// Every failure, whether the transport failed, the server answered
// with a non-2xx status or the body could not be decoded, is returned
// as an *APIError carrying a human-readable Message. The client never
// retries; retrying is the user's decision.
package lawsuitapi
