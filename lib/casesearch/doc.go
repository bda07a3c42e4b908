// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package casesearch orchestrates lawsuit search: for every filter
// change it decides whether the result list comes from the API or from
// narrowing the page already loaded, debounces API queries, tracks
// cursor pagination and keeps simple and advanced search modes apart.
//
// # Engine
//
// Engine owns one search session. It is single-threaded: every method
// must be called from the host's event loop. The engine never performs
// I/O itself. Operations that need the API append a Request to an
// outbox; the host drains it with Drain, executes each request (usually
// with a lawsuitapi.Client) and reports back with Complete. Each
// request carries a monotonically increasing sequence number and
// Complete discards any response that is not for the latest request,
// so a slow early response can never overwrite a newer one.
//
// Debounced queries fire through a debounce.Slot. The host supplies a
// debounce.Post that re-enters its event loop, after which it should
// Drain again.
//
// # Routing
//
// In simple mode a court or degree filter, a complete case number or a
// keyword sends the query to the API. A partial case number or nothing
// at all leaves the list as loaded, narrowed locally by Apply. Advanced
// mode always queries the API, on explicit submission only.
//
// One transition queries although the new state routes locally: when
// the results on screen came from an API query (say a keyword search)
// and an edit removes the last API filter, the engine schedules a
// debounced unfiltered query. Without it the remote page of the
// removed filter would stay on screen, narrowed as if it were the
// unfiltered list. A strict reading of the routing rule would send
// nothing on that edit.
//
// # Catalog
//
// Catalog walks every page of the unfiltered search once to collect
// the distinct court codes for the court selector.
package casesearch
