// Package version reports build information for gocat.
package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time, e.g.
// go build -ldflags "-X 'gocat/pkg/version.Version=1.2.3' -X 'gocat/pkg/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	Runtime   string // Go version and platform, e.g. "go1.23.1 linux/amd64".
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		Runtime:   fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the line printed by --version:
// gocat version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 linux/amd64
func (i Info) String() string {
	return fmt.Sprintf("gocat version %s (commit: %s) built at %s with %s",
		i.Version, i.GitCommit, i.BuildTime, i.Runtime)
}
