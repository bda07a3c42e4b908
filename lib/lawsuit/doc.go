// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package lawsuit defines the lawsuit domain model and the mapping from
// the lawsuit API's wire format into it.
//
// The API speaks Portuguese field names (numeroProcesso, grauAtual,
// ultimoMovimento, ...) and leaves many fields nullable. The wire types
// in wire.go mirror that contract exactly; the view types in types.go
// are what the rest of the program sees. The mapper functions are the
// only place nullable upstream fields are resolved, so callers never
// branch on missing data except where the model says so explicitly:
//
//   - A list item's LastMovement is nil when the case has no recorded
//     movement. The list row renders its own placeholder.
//   - A detail's LastMovement is never missing. When the API returns
//     none, MapDetail synthesizes a sentinel movement whose description
//     is NoMovementsDescription, and Movements is empty.
package lawsuit
