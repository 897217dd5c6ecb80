package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ucc/internal/diagfmt"
	"ucc/internal/driver"
	"ucc/internal/project"
	"ucc/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.uc|directory]",
	Short: "Check uC source files for errors",
	Long: `Check runs the full frontend (lexing, parsing, semantic analysis) over a
single *.uc file or every *.uc file under a directory. Without an argument it
checks the source directory of the nearest ucc.toml, or the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("cache", false, "skip files whose content already checked clean")
	checkCmd.Flags().Bool("no-source", false, "omit source lines and caret markers from pretty output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	noSource, err := cmd.Flags().GetBool("no-source")
	if err != nil {
		return fmt.Errorf("failed to get no-source flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	}

	// The manifest supplies defaults; explicit flags win.
	manifest, err := project.Discover(".")
	if err != nil {
		return err
	}
	cfg := manifest.Config.Check
	if target == "" {
		target = manifest.SourceDir()
	}
	if !cmd.Flags().Changed("jobs") && cfg.Jobs > 0 {
		jobs = cfg.Jobs
	}
	if !cmd.Flags().Changed("cache") && cfg.Cache {
		useCache = true
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && cfg.MaxDiagnostics > 0 {
		maxDiagnostics = cfg.MaxDiagnostics
	}
	if colorMode == "" {
		colorMode = cfg.Color
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if useCache {
		cache, err := driver.OpenDiskCache("ucc")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %q: %w", target, err)
	}

	fset := source.NewFileSet()
	var results []*driver.CheckResult
	if info.IsDir() {
		results, err = driver.CheckDir(cmd.Context(), fset, target, opts)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no *.uc files found under %q", target)
		}
	} else {
		if !strings.HasSuffix(target, ".uc") {
			return fmt.Errorf("%q is not a *.uc file", target)
		}
		res, err := driver.CheckFile(fset, target, opts)
		if err != nil {
			return err
		}
		results = []*driver.CheckResult{res}
	}

	// fatih/color gates everything behind its global NoColor, so an
	// explicit mode has to override its auto-detection.
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	out := cmd.OutOrStdout()
	prettyOpts := diagfmt.PrettyOpts{
		Color:      resolveColor(colorMode, os.Stdout),
		ShowSource: !noSource,
	}

	errors := 0
	for _, res := range results {
		res.Bag.Sort()
		errors += res.Errors()
		switch format {
		case "json":
			if err := diagfmt.JSON(out, res.Bag, fset, diagfmt.JSONOpts{}); err != nil {
				return err
			}
		default:
			diagfmt.Pretty(out, res.Bag, fset, prettyOpts)
		}
	}

	if format == "pretty" {
		fmt.Fprintf(out, "%d file(s) checked, %d error(s)\n", len(results), errors)
	}
	if errors > 0 {
		return fmt.Errorf("found %d error(s)", errors)
	}
	return nil
}
