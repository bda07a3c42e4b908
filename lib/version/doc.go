// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version identifies the running lawsuits build: in --version
// output, in the User-Agent sent to the API and as the telemetry
// service version.
//
// Release builds stamp [GitCommit], [GitDirty], [BuildTime] and
// [Version] with -ldflags -X. Unstamped builds fall back to the VCS
// information the Go toolchain records, and to "unknown" when there
// is none.
package version
