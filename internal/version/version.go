/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the exporter CLI.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/exporter/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
	Dirty     bool   `json:"dirty"`
}

// Get returns the version string for the application.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	if GitTag != "unknown" && GitCommit != "unknown" {
		return fromGit(GitTag, GitCommit, GitDirty == "dirty")
	}
	return "dev"
}

// fromGit joins a tag and abbreviated commit unless the tag already ends
// with that commit, as git describe output does.
func fromGit(tag, commit string, dirty bool) string {
	v := tag
	short := commit
	if len(short) > 7 {
		short = short[:7]
	}
	if short != "" && !strings.HasSuffix(tag, short) {
		v = fmt.Sprintf("%s-%s", tag, short)
	}
	if dirty {
		v += "-dirty"
	}
	return v
}

// Full returns the version with its commit, when known.
func Full() string {
	info := Info()
	if info.GitCommit == "unknown" {
		return info.Version
	}
	return fmt.Sprintf("%s (commit: %s)", info.Version, info.GitCommit)
}

// Info returns build information. Commit and dirty state fall back to the
// VCS stamp embedded by go build when ldflags did not set them.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		GitTag:    GitTag,
		BuildTime: BuildTime,
		Dirty:     GitDirty == "dirty",
	}
	if info.GitCommit != "unknown" {
		return info
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = s.Value
			case "vcs.time":
				if info.BuildTime == "unknown" {
					info.BuildTime = s.Value
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			}
		}
	}
	return info
}
