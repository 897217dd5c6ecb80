package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
)

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

// NoFileID marks the absence of a file.
const NoFileID FileID = 0

const (
	// FileVirtual indicates the file was added from memory (test, stdin).
	FileVirtual FileFlags = 1 << iota
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte
	Flags   FileFlags

	lines []string
}

// Line returns the text of the given 1-based line, without the trailing
// newline. Out-of-range lines yield the empty string.
func (f *File) Line(n uint32) string {
	if n == 0 || int(n) > len(f.lines) {
		return ""
	}
	return f.lines[n-1]
}

// NumLines returns the number of lines in the file.
func (f *File) NumLines() int {
	return len(f.lines)
}

// FileSet manages a collection of source files.
type FileSet struct {
	files []*File
	index map[string]FileID
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{index: make(map[string]FileID)}
}

// Load reads a file from disk and registers it.
func (fs *FileSet) Load(path string) (*File, error) {
	if id, ok := fs.index[path]; ok {
		return fs.Get(id), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fs.add(path, content, 0), nil
}

// AddVirtual registers an in-memory file under the given path.
func (fs *FileSet) AddVirtual(path string, content []byte) *File {
	if id, ok := fs.index[path]; ok {
		return fs.Get(id)
	}
	return fs.add(path, content, FileVirtual)
}

func (fs *FileSet) add(path string, content []byte, flags FileFlags) *File {
	next, err := safecast.Conv[uint32](len(fs.files) + 1)
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	f := &File{
		ID:      FileID(next),
		Path:    path,
		Content: content,
		Hash:    sha256.Sum256(content),
		Flags:   flags,
		lines:   splitLines(content),
	}
	fs.files = append(fs.files, f)
	fs.index[path] = f.ID
	return f
}

// Get returns the file with the given ID, or nil.
func (fs *FileSet) Get(id FileID) *File {
	if id == NoFileID || int(id) > len(fs.files) {
		return nil
	}
	return fs.files[id-1]
}

// Files returns all registered files in registration order.
func (fs *FileSet) Files() []*File {
	return fs.files
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
