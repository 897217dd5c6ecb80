// Package project locates and parses the ucc.toml project manifest.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the project root is identified by.
const ManifestName = "ucc.toml"

// Manifest is a parsed ucc.toml plus the directory it was found in.
type Manifest struct {
	Path   string // absolute path of the manifest file, "" for defaults
	Root   string // directory containing the manifest
	Config Config
}

// Config mirrors the TOML structure of ucc.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
}

// PackageConfig is the [package] section.
type PackageConfig struct {
	Name   string `toml:"name"`
	Source string `toml:"source"` // directory with *.uc files, relative to Root
}

// CheckConfig is the [check] section.
type CheckConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
	Cache          bool   `toml:"cache"`
	Color          string `toml:"color"` // auto, always, never
}

// ErrPackageNameMissing indicates that [package].name is missing.
var ErrPackageNameMissing = errors.New("missing [package].name")

// Default returns the configuration used when no manifest exists.
func Default() Manifest {
	return Manifest{
		Config: Config{
			Package: PackageConfig{Source: "."},
			Check:   CheckConfig{Color: "auto"},
		},
	}
}

// Find walks from startDir toward the filesystem root looking for ucc.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses the manifest at path.
func Load(path string) (Manifest, error) {
	m := Default()
	meta, err := toml.DecodeFile(path, &m.Config)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("package") && strings.TrimSpace(m.Config.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Manifest{}, err
	}
	m.Path = abs
	m.Root = filepath.Dir(abs)
	if m.Config.Package.Source == "" {
		m.Config.Package.Source = "."
	}
	return m, nil
}

// Discover finds and loads the manifest governing startDir, falling back to
// defaults when none exists.
func Discover(startDir string) (Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Manifest{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// SourceDir resolves the configured source directory against the root.
func (m Manifest) SourceDir() string {
	src := m.Config.Package.Source
	if src == "" {
		src = "."
	}
	if m.Root == "" || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(m.Root, src)
}
