// Package version carries build information injected through ldflags.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	// GitVersion is semantic version.
	GitVersion = "v1.0.0"
	// GitCommit sha1 from git, output of $(git rev-parse HEAD).
	GitCommit = ""
	// BuildDate in ISO8601 format, output of $(date -u +'%Y-%m-%dT%H:%M:%SZ').
	BuildDate = ""
)

// Info contains versioning information.
type Info struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit,omitempty"`
	BuildDate  string `json:"buildDate,omitempty"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
}

// Get returns the overall codebase version.
func Get() Info {
	return Info{
		GitVersion: GitVersion,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns info as a human-friendly version string.
func (info Info) String() string {
	return info.GitVersion
}

// Semver returns GitVersion without the leading "v".
func (info Info) Semver() string {
	return strings.TrimPrefix(info.GitVersion, "v")
}
