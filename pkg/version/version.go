package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const devVersion = "0.0.0-dev"

// Valores injetados via -ldflags "-X .../pkg/version.Version=1.2.3"; sem ldflags, vêm do build info.
var (
	Version   = devVersion
	Commit    = ""
	BuildTime = ""
)

func init() {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		applyBuildSettings(bi.Settings)
	}
}

// applyBuildSettings completa versão, commit e data a partir das chaves vcs.* do binário.
// Valores vindos de ldflags nunca são sobrescritos.
func applyBuildSettings(settings []debug.BuildSetting) {
	if Version != "" && Version != devVersion {
		return
	}

	vcs := make(map[string]string, len(settings))
	for _, s := range settings {
		vcs[s.Key] = s.Value
	}

	if rev := vcs["vcs.revision"]; Commit == "" && len(rev) >= 7 {
		Commit = rev[:7]
	}
	if BuildTime == "" && vcs["vcs.time"] != "" {
		if ts, err := time.Parse(time.RFC3339, vcs["vcs.time"]); err == nil {
			BuildTime = ts.UTC().Format("2006-01-02T15:04:05Z")
		}
	}
	if tag := vcs["vcs.tag"]; tag != "" {
		Version = strings.TrimPrefix(tag, "v")
		if strings.EqualFold(vcs["vcs.modified"], "true") {
			Version += "-dirty"
		}
	}
}

// FormatVersion retorna a versão com commit e data de build.
// Ex.: "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"
func FormatVersion() string {
	ver := Version
	if ver == "" {
		ver = devVersion
	}

	switch {
	case Commit == "" && BuildTime == "":
		return fmt.Sprintf("%s (development)", ver)
	case Commit == "":
		return fmt.Sprintf("%s (commit: development, built at: %s)", ver, BuildTime)
	case BuildTime == "":
		return fmt.Sprintf("%s (commit: %s)", ver, Commit)
	default:
		return fmt.Sprintf("%s (commit: %s, built at: %s)", ver, Commit, BuildTime)
	}
}
