package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v, commit, built string) {
	t.Helper()
	oldV, oldC, oldB := Version, Commit, BuildTime
	Version, Commit, BuildTime = v, commit, built
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name                string
		version, commit, bt string
		want                string
	}{
		{"development", "", "", "", "0.0.0-dev (development)"},
		{"commit only", "1.2.3", "abc1234", "", "1.2.3 (commit: abc1234)"},
		{"full", "1.2.3", "abc1234", "2025-10-23T10:20:30Z", "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"},
		{"build time only", "1.2.3", "", "2025-10-23T10:20:30Z", "1.2.3 (commit: development, built at: 2025-10-23T10:20:30Z)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.version, tt.commit, tt.bt)
			assert.Equal(t, tt.want, FormatVersion())
		})
	}
}

func TestApplyBuildSettings(t *testing.T) {
	withVersion(t, devVersion, "", "")

	applyBuildSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2025-10-23T07:20:30-03:00"},
		{Key: "vcs.tag", Value: "v2.0.1"},
		{Key: "vcs.modified", Value: "true"},
	})

	assert.Equal(t, "2.0.1-dirty", Version)
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2025-10-23T10:20:30Z", BuildTime)
}

func TestApplyBuildSettingsKeepsLdflags(t *testing.T) {
	withVersion(t, "3.1.0", "", "")

	applyBuildSettings([]debug.BuildSetting{{Key: "vcs.tag", Value: "v9.9.9"}})

	assert.Equal(t, "3.1.0", Version)
	assert.Empty(t, Commit)
}
