package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ucc/internal/diag"
	"ucc/internal/source"
)

// ListFiles returns the sorted relative-order list of all *.uc files under
// dir, walking subdirectories.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".uc") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.uc file under dir. Files are loaded up front so
// the FileSet stays single-writer, then checked in parallel. Results come
// back in sorted path order regardless of scheduling.
func CheckDir(ctx context.Context, fset *source.FileSet, dir string, opts CheckOptions) ([]*CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	loaded := make([]*source.File, len(files))
	for i, path := range files {
		f, err := fset.Load(path)
		if err != nil {
			return nil, err
		}
		loaded[i] = f
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Each goroutine owns a distinct index, so no mutex is needed.
	results := make([]*CheckResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, f := range loaded {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if opts.Cache != nil {
				if hit, err := opts.Cache.LookupClean(f); err == nil && hit {
					results[i] = &CheckResult{
						Path:   f.Path,
						File:   f,
						Bag:    diag.NewBag(f.ID, opts.MaxDiagnostics),
						Cached: true,
					}
					return nil
				}
			}
			res := CheckSource(f, opts.MaxDiagnostics)
			if opts.Cache != nil && !res.Bag.HasErrors() {
				_ = opts.Cache.MarkClean(f)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
