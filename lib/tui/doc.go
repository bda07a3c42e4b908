// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides the terminal building blocks the lawsuit viewer
// renders with: dark and light palettes, the rule that decides which
// palette applies, keyword match highlighting, picker overlays and a
// scrollbar.
//
// Nothing here knows about lawsuits. The viewer in lib/caseui owns
// its model, layout and data source, and uses this package for a
// consistent look.
package tui
