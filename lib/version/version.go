// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Stamped by the release build:
//
//	go build -ldflags "-X github.com/bureau-foundation/lawsuits/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/lawsuits
var (
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
	Version   = "0.1.0-dev"
)

// Info is the one-line form printed by --version, for example
// "0.3.0 (4f2a9c1-dirty, 2026-05-02T10:00:00Z)".
func Info() string {
	commit, dirty := revision()
	if dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, BuildTime)
}

// Full is Info plus the toolchain and platform, for bug reports.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short is the bare version, used as the telemetry service version.
func Short() string {
	return Version
}

// UserAgent is the User-Agent header sent to the lawsuit API.
func UserAgent() string {
	return fmt.Sprintf("lawsuits/%s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}

// revision prefers the stamped commit. A plain "go install" leaves it
// unset, in which case the VCS settings the toolchain embeds are used.
func revision() (commit string, dirty bool) {
	if GitCommit != "unknown" {
		return GitCommit, GitDirty == "true"
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return GitCommit, GitDirty == "true"
	}
	commit = GitCommit
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return commit, dirty
}
