package version

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stubBuild(t *testing.T, version, commit, built, mainVersion string, values map[string]string) {
	t.Helper()
	oldVersion, oldCommit, oldTime, oldSettings := Version, GitCommit, BuildTime, settings
	t.Cleanup(func() {
		Version, GitCommit, BuildTime, settings = oldVersion, oldCommit, oldTime, oldSettings
	})

	Version, GitCommit, BuildTime = version, commit, built
	settings = func() (string, map[string]string) { return mainVersion, values }
}

func TestGet_Ldflags(t *testing.T) {
	stubBuild(t, "v1.2.0", "abcdef0123456789", "2026-03-01T10:00:00Z", "(devel)", nil)

	info := Get()
	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, "abcdef0123456789", info.GitCommit)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), info.BuildTime)
	assert.True(t, info.IsRelease())
	assert.Equal(t, "v1.2.0 (abcdef0)", info.Short())
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestGet_FallsBackToVCS(t *testing.T) {
	stubBuild(t, "dev", "unknown", "unknown", "(devel)", map[string]string{
		"vcs.revision": "1234567890abcdef",
		"vcs.time":     "2026-01-02T03:04:05Z",
		"vcs.modified": "true",
	})

	info := Get()
	assert.Equal(t, "dev-1234567", info.Version)
	assert.Equal(t, "1234567890abcdef", info.GitCommit)
	assert.True(t, info.Dirty)
	assert.False(t, info.IsRelease())
	assert.Equal(t, "dev-1234567", info.Short())
	assert.Contains(t, info.Detailed(), "Commit: 1234567890abcdef (dirty)")
	assert.Contains(t, info.Detailed(), "Built: 2026-01-02T03:04:05Z")
}

func TestGet_ModuleVersion(t *testing.T) {
	stubBuild(t, "", "", "", "v0.3.1", nil)

	info := Get()
	assert.Equal(t, "v0.3.1", info.Version)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.True(t, info.BuildTime.IsZero())
	assert.Equal(t, "v0.3.1", info.Short())
}

func TestDetailed_Minimal(t *testing.T) {
	info := BuildInfo{Version: "dev", GitCommit: "unknown", GoVersion: "go1.24", Platform: "linux/amd64"}

	assert.Equal(t, "Version: dev\nGo: go1.24\nPlatform: linux/amd64", info.Detailed())
}
