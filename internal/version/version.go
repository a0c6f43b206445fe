// Package version reports the krds build identity. Release builds set the
// variables below with -ldflags; other builds fall back to the module and
// VCS data embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time, e.g.
//
//	-ldflags "-X github.com/conneroisu/krds/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown" // RFC3339
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	BuildTime time.Time `json:"build_time"`
	GoVersion string    `json:"go_version"`
	Platform  string    `json:"platform"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// settings reads embedded build settings; it is a variable for tests.
var settings = func() (mainVersion string, values map[string]string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", nil
	}
	values = make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		values[s.Key] = s.Value
	}

	return info.Main.Version, values
}

// Get collects the build information of the running binary.
func Get() BuildInfo {
	mainVersion, values := settings()

	info := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Dirty:     values["vcs.modified"] == "true",
	}

	if info.GitCommit == "" || info.GitCommit == "unknown" {
		if rev := values["vcs.revision"]; rev != "" {
			info.GitCommit = rev
		} else {
			info.GitCommit = "unknown"
		}
	}

	if info.Version == "" || info.Version == "dev" {
		switch {
		case mainVersion != "" && mainVersion != "(devel)":
			info.Version = mainVersion
		case len(info.GitCommit) >= 7 && info.GitCommit != "unknown":
			info.Version = "dev-" + info.GitCommit[:7]
		default:
			info.Version = "dev"
		}
	}

	buildTime := BuildTime
	if buildTime == "" || buildTime == "unknown" {
		buildTime = values["vcs.time"]
	}
	if t, err := time.Parse(time.RFC3339, buildTime); err == nil {
		info.BuildTime = t
	}

	return info
}

// IsRelease reports whether the version is a tagged release.
func (b BuildInfo) IsRelease() bool {
	return b.Version != "dev" && !strings.HasPrefix(b.Version, "dev-")
}

// Short returns e.g. "v1.2.0 (abc1234)".
func (b BuildInfo) Short() string {
	if !b.IsRelease() || b.GitCommit == "unknown" || len(b.GitCommit) < 7 {
		return b.Version
	}

	return fmt.Sprintf("%s (%s)", b.Version, b.GitCommit[:7])
}

// Detailed returns one "Key: value" line per known field.
func (b BuildInfo) Detailed() string {
	lines := []string{"Version: " + b.Version}
	if b.GitCommit != "unknown" {
		commit := b.GitCommit
		if b.Dirty {
			commit += " (dirty)"
		}
		lines = append(lines, "Commit: "+commit)
	}
	if !b.BuildTime.IsZero() {
		lines = append(lines, "Built: "+b.BuildTime.UTC().Format(time.RFC3339))
	}
	lines = append(lines, "Go: "+b.GoVersion, "Platform: "+b.Platform)

	return strings.Join(lines, "\n")
}
