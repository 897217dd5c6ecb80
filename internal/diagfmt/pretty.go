package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ucc/internal/diag"
	"ucc/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one per block:
//
//	<path>:<line>:<col>: <severity> (<phase>): <message>
//
// followed, when opts.ShowSource is set, by the offending source line and a
// caret underline covering the reported span. Callers should bag.Sort()
// beforehand if they want positional order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(bag.File())
	sevColor := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	for _, d := range bag.Items() {
		head := fmt.Sprintf("%s (%d): %s", d.Severity, d.Phase, d.Message)
		if opts.Color {
			if c, ok := sevColor[d.Severity]; ok {
				head = c.Sprint(head)
			}
		}
		path := "<unknown>"
		if file != nil {
			path = file.Path
		}
		fmt.Fprintf(w, "%s:%d:%d: %s\n", path, d.Pos.Line, d.Pos.Column, head)
		if opts.ShowSource && file != nil {
			writeSourceLine(w, file, d.Pos, opts.Color)
		}
	}
	dropped := bag.ErrorCount() - countErrors(bag)
	if dropped > 0 {
		fmt.Fprintf(w, "... and %d more error(s) not shown\n", dropped)
	}
}

func countErrors(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}

func writeSourceLine(w io.Writer, f *source.File, pos source.Position, colored bool) {
	line := f.Line(pos.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	start := int(pos.Column) - 1
	if start < 0 || start > len(line) {
		return
	}
	end := min(start+1, len(line))
	if pos.EndLine == pos.Line && int(pos.EndColumn) > int(pos.Column) {
		end = min(int(pos.EndColumn)-1, len(line))
	}

	// Pad with display widths so the caret lines up under wide runes and
	// tabs survive as themselves.
	var b strings.Builder
	for _, r := range line[:start] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	pad := b.String()
	width := runewidth.StringWidth(line[start:end])
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if colored {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", pad, marker)
}
