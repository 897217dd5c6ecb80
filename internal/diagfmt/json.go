package diagfmt

import (
	"encoding/json"
	"io"

	"ucc/internal/diag"
	"ucc/internal/source"
)

// DiagnosticJSON is one diagnostic in machine-readable form.
type DiagnosticJSON struct {
	File     string `json:"file"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
	EndLine  uint32 `json:"end_line,omitempty"`
	EndCol   uint32 `json:"end_col,omitempty"`
	Severity string `json:"severity"`
	Phase    uint8  `json:"phase"`
	Message  string `json:"message"`
}

// DiagnosticsOutput is the root of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Errors      int              `json:"errors"`
}

// BuildDiagnosticsOutput assembles the JSON model without serializing it.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	path := ""
	if f := fs.Get(bag.File()); f != nil {
		path = f.Path
	}
	out := DiagnosticsOutput{
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
		Errors:      bag.ErrorCount(),
	}
	for _, d := range items {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			File:     path,
			Line:     d.Pos.Line,
			Col:      d.Pos.Column,
			EndLine:  d.Pos.EndLine,
			EndCol:   d.Pos.EndColumn,
			Severity: d.Severity.String(),
			Phase:    uint8(d.Phase),
			Message:  d.Message,
		})
	}
	return out
}

// JSON writes diagnostics as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := BuildDiagnosticsOutput(bag, fs, opts)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
