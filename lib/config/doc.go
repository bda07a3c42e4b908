// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the lawsuit viewer's configuration.
//
// Configuration comes from a single file named by the --config flag
// (via [LoadFile]) or the LAWSUITS_CONFIG environment variable (via
// [Load]). Files ending in .json or .jsonc are parsed as JSON with
// comments and trailing commas; anything else is parsed as YAML. When
// neither is given, [Default] is used as is, so the viewer runs with
// only a --base-url flag.
//
// The file may carry environment-specific sections (development,
// staging, production) whose non-empty values override the base values
// when [Config].Environment matches.
//
// Variable expansion is performed on string fields after loading:
// ${VAR} and ${VAR:-default} patterns are expanded from the process
// environment, so API URLs and state paths can be parameterized.
package config
