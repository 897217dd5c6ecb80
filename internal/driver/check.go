// Package driver glues the frontend stages together: it loads files,
// tokenizes, parses, and runs semantic analysis, collecting diagnostics
// per file.
package driver

import (
	"fmt"

	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/lexer"
	"ucc/internal/parser"
	"ucc/internal/sema"
	"ucc/internal/source"
)

// CheckResult holds everything produced while checking one file.
type CheckResult struct {
	Path    string
	File    *source.File
	Bag     *diag.Bag
	Program *ast.Program
	Sema    sema.Result
	Cached  bool // true when the analysis was skipped via the disk cache
}

// Errors returns the number of errors recorded for the file.
func (r *CheckResult) Errors() int {
	if r == nil || r.Bag == nil {
		return 0
	}
	return r.Bag.ErrorCount()
}

// CheckOptions configures CheckFile and CheckDir.
type CheckOptions struct {
	MaxDiagnostics int
	Jobs           int        // parallelism for CheckDir; <=0 means GOMAXPROCS
	Cache          *DiskCache // nil disables caching
}

// CheckFile loads path into fs and runs the full frontend over it.
func CheckFile(fs *source.FileSet, path string, opts CheckOptions) (*CheckResult, error) {
	f, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", path, err)
	}
	if opts.Cache != nil {
		if hit, err := opts.Cache.LookupClean(f); err == nil && hit {
			return &CheckResult{
				Path:   path,
				File:   f,
				Bag:    diag.NewBag(f.ID, opts.MaxDiagnostics),
				Cached: true,
			}, nil
		}
	}
	res := CheckSource(f, opts.MaxDiagnostics)
	if opts.Cache != nil && !res.Bag.HasErrors() {
		// Best effort; a failed write only costs a re-check next run.
		_ = opts.Cache.MarkClean(f)
	}
	return res, nil
}

// CheckSource runs lexing, parsing, and semantic analysis over an already
// registered file. Semantic analysis only runs when the syntax is clean, so
// later passes never see partial trees.
func CheckSource(f *source.File, maxDiagnostics int) *CheckResult {
	bag := diag.NewBag(f.ID, maxDiagnostics)
	res := &CheckResult{Path: f.Path, File: f, Bag: bag}

	toks := lexer.New(f, bag).Tokens()
	res.Program = parser.Parse(f, toks, bag)
	if bag.HasErrors() {
		return res
	}
	res.Sema = sema.Analyze(res.Program, bag)
	return res
}
