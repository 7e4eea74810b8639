// Package version reports build information for the skillmatrix binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags, e.g.
// go build -ldflags="-X github.com/andywolf/skillmatrix/internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info is the build information printed by the version command.
type Info struct {
	Version   string `yaml:"version"`
	Commit    string `yaml:"commit"`
	BuildDate string `yaml:"build_date"`
	GoVersion string `yaml:"go_version"`
	Platform  string `yaml:"platform"`
}

// Get collects build information. Binaries installed with `go install` carry
// no ldflags, so the module version from the embedded build info is used.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Version != "dev" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "unknown" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		}
	}
	return info
}

// Short returns just the version, e.g. "v0.3.0" or "dev".
func Short() string {
	return Get().Version
}

// ShortCommit truncates the commit SHA to seven characters.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

// String is the single-line form:
// "skillmatrix v0.3.0 (abc1234, 2025-01-15T10:30:00Z, go1.24.1)"
func (i Info) String() string {
	return fmt.Sprintf("skillmatrix %s (%s, %s, %s)", i.Version, i.ShortCommit(), i.BuildDate, i.GoVersion)
}

// Long is the multi-line form used with --verbose.
func (i Info) Long() string {
	return fmt.Sprintf("skillmatrix %s\n  commit:   %s\n  built:    %s\n  go:       %s\n  platform: %s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}
