package diag

import (
	"fmt"

	"ucc/internal/source"
)

// Reporter is the single contract the analysis passes need: record an error
// for a phase at a position. Implementations must never interrupt control
// flow; callers substitute their own fallback values after reporting.
type Reporter interface {
	Report(phase Phase, pos source.Position, msg string)
}

// Reportf formats and reports in one step.
func Reportf(r Reporter, phase Phase, pos source.Position, format string, args ...any) {
	r.Report(phase, pos, fmt.Sprintf(format, args...))
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Phase, source.Position, string) {}
