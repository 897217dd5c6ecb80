package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ucc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "ucc",
	Short:        "uC language frontend",
	Long:         `ucc checks uC source files for syntax and semantic errors`,
	SilenceUsage: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to keep per file (0=default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor decides whether output should be colorized. The fatih/color
// package already honors NO_COLOR and non-TTY detection through NoColor.
func resolveColor(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(out) && !color.NoColor
	}
}
