// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds channel helpers for the few tests that run on
// the real clock, such as the debounce delivery test. They bound each
// wait so a broken test fails instead of hanging. Tests on the fake
// clock do not need them.
package testutil
