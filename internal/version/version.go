// Package version carries build metadata for the ucc CLI.
// The variables can be overridden at build time via -ldflags.
package version

import (
	"strings"

	"github.com/fatih/color"
)

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var accent = color.New(color.FgCyan, color.Bold)

// Pretty returns the version string with the numeric part accented for
// terminal display. The plain Version variable stays uncolored so cobra's
// --version output carries no escape sequences.
func Pretty() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		return accent.Sprint(v[:i]) + v[i:]
	}
	return accent.Sprint(v)
}
