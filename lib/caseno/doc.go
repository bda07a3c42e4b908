// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package caseno handles unified Brazilian lawsuit numbers
// (numeração única, CNJ Resolution 65/2008).
//
// A complete number has the shape NNNNNNN-DD.AAAA.J.TR.OOOO: a
// seven-digit sequence, two check digits, the filing year, the judicial
// segment, the court and the originating unit. Twenty digits and five
// separators, 25 characters in total.
//
// Mask, IsComplete and IsValid are the contract the search engine
// routes on: a number is "complete" when it matches the full pattern.
// Validity distinguishes "still typing" from "finished and wrong": a
// value is valid while it is empty or shorter than a complete number,
// and a full-length value is valid only if it matches. Callers show a
// validation message only for full-length values that fail.
//
// Parse and Number.ChecksumValid go further and verify the mod-97
// check digits. They are informational only and never affect routing.
package caseno
