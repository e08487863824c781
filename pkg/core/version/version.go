// File: version.go
// Title: Build Version Information
// Description: Holds the version of the devconsole binary. GitCommit and
//              BuildDate are set at link time with -ldflags "-X ...".
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-16
//
// Change History:
// - 2025-12-06 v0.1.0: Central version constants
// - 2026-10-16 v0.2.0: Build information for the devconsole binary

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version is the semantic version of the console engine and CLI
const Version = "0.2.0"

// Set via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the information as an indented block
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "devconsole v%s\n", i.Version)
	fmt.Fprintf(&b, "  Git Commit: %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  OS/Arch:    %s\n", i.Platform)
	return b.String()
}
