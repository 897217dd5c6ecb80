package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nalgeon/be"

	"ucc/internal/diag"
	"ucc/internal/source"
)

const cleanSource = `int main() {
  int x = 1;
  return x + 2;
}
`

const brokenSource = `int main() {
  return y;
}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	be.Err(t, os.WriteFile(path, []byte(content), 0o644), nil)
	return path
}

func TestCheckSourceClean(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.uc", []byte(cleanSource))
	res := CheckSource(f, 0)
	be.Equal(t, res.Errors(), 0)
	be.True(t, res.Program != nil)
	be.True(t, res.Sema.Global != nil)
}

func TestCheckSourceSemanticError(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.uc", []byte(brokenSource))
	res := CheckSource(f, 0)
	be.Equal(t, res.Errors(), 1)
	be.Equal(t, res.Bag.Items()[0].Phase, diag.PhaseCheckNames)
}

func TestCheckSourceSyntaxErrorSkipsSema(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("main.uc", []byte("int main( {}\n"))
	res := CheckSource(f, 0)
	be.True(t, res.Bag.HasErrors())
	for _, d := range res.Bag.Items() {
		be.Equal(t, d.Phase, diag.PhaseSyntax)
	}
	be.True(t, res.Sema.Global == nil)
}

func TestCheckFileWithCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.uc", cleanSource)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	be.Err(t, err, nil)
	opts := CheckOptions{Cache: cache}

	res, err := CheckFile(source.NewFileSet(), path, opts)
	be.Err(t, err, nil)
	be.True(t, !res.Cached)
	be.Equal(t, res.Errors(), 0)

	res, err = CheckFile(source.NewFileSet(), path, opts)
	be.Err(t, err, nil)
	be.True(t, res.Cached)
	be.Equal(t, res.Errors(), 0)
}

func TestCacheMissesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.uc", cleanSource)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	be.Err(t, err, nil)
	opts := CheckOptions{Cache: cache}

	_, err = CheckFile(source.NewFileSet(), path, opts)
	be.Err(t, err, nil)

	writeFile(t, dir, "main.uc", brokenSource)
	res, err := CheckFile(source.NewFileSet(), path, opts)
	be.Err(t, err, nil)
	be.True(t, !res.Cached)
	be.Equal(t, res.Errors(), 1)
}

func TestCacheNeverStoresBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.uc", brokenSource)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	be.Err(t, err, nil)
	opts := CheckOptions{Cache: cache}

	for range 2 {
		res, err := CheckFile(source.NewFileSet(), path, opts)
		be.Err(t, err, nil)
		be.True(t, !res.Cached)
		be.Equal(t, res.Errors(), 1)
	}
}

func TestCheckDirSortedResults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.uc", brokenSource)
	writeFile(t, dir, "a.uc", cleanSource)
	writeFile(t, dir, "notes.txt", "ignored")

	results, err := CheckDir(context.Background(), source.NewFileSet(), dir, CheckOptions{Jobs: 4})
	be.Err(t, err, nil)
	be.Equal(t, len(results), 2)
	be.Equal(t, filepath.Base(results[0].Path), "a.uc")
	be.Equal(t, filepath.Base(results[1].Path), "b.uc")
	be.Equal(t, results[0].Errors(), 0)
	be.Equal(t, results[1].Errors(), 1)
}

func TestCheckDirEmpty(t *testing.T) {
	results, err := CheckDir(context.Background(), source.NewFileSet(), t.TempDir(), CheckOptions{})
	be.Err(t, err, nil)
	be.Equal(t, len(results), 0)
}

func TestListFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	be.Err(t, os.MkdirAll(sub, 0o755), nil)
	writeFile(t, dir, "top.uc", cleanSource)
	writeFile(t, sub, "deep.uc", cleanSource)

	files, err := ListFiles(dir)
	be.Err(t, err, nil)
	be.Equal(t, len(files), 2)
}
