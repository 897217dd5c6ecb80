package diag

import (
	"sort"

	"ucc/internal/source"
)

// Bag accumulates diagnostics for one file up to a fixed limit. The error
// counter keeps incrementing past the limit; only storage is capped.
type Bag struct {
	file     source.FileID
	items    []Diagnostic
	max      int
	errors   int
	disabled bool
}

// NewBag creates a bag for the given file holding at most max diagnostics.
func NewBag(file source.FileID, max int) *Bag {
	if max <= 0 {
		max = 100
	}
	return &Bag{file: file, max: max}
}

// Report records an error diagnostic. Implements Reporter.
func (b *Bag) Report(phase Phase, pos source.Position, msg string) {
	b.add(Diagnostic{
		Phase:    phase,
		Severity: SevError,
		File:     b.file,
		Pos:      pos,
		Message:  msg,
	})
}

// Warn records a warning diagnostic.
func (b *Bag) Warn(phase Phase, pos source.Position, msg string) {
	b.add(Diagnostic{
		Phase:    phase,
		Severity: SevWarning,
		File:     b.file,
		Pos:      pos,
		Message:  msg,
	})
}

func (b *Bag) add(d Diagnostic) {
	if b.disabled {
		return
	}
	if d.Severity == SevError {
		b.errors++
	}
	if len(b.items) < b.max {
		b.items = append(b.items, d)
	}
}

// Disable suppresses recording entirely; suppressed calls do not touch the
// counter.
func (b *Bag) Disable() {
	b.disabled = true
}

// ErrorCount returns the number of errors reported, including any dropped
// past the storage limit.
func (b *Bag) ErrorCount() int {
	return b.errors
}

// HasErrors reports whether at least one error was recorded.
func (b *Bag) HasErrors() bool {
	return b.errors > 0
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns the recorded diagnostics. The slice aliases internal storage
// and must not be modified.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// File returns the file this bag collects for.
func (b *Bag) File() source.FileID {
	return b.file
}

// Sort orders diagnostics by position, then phase, for deterministic output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Pos != dj.Pos {
			return di.Pos.Before(dj.Pos)
		}
		return di.Phase < dj.Phase
	})
}
