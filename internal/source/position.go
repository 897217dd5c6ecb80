package source

import "fmt"

// Position is a half-open span in a source file. Lines and columns are
// 1-based; a span whose start equals its end denotes a zero-width point.
type Position struct {
	Line      uint32
	Column    uint32
	EndLine   uint32
	EndColumn uint32
}

// At builds a zero-width position.
func At(line, col uint32) Position {
	return Position{Line: line, Column: col, EndLine: line, EndColumn: col}
}

// Span builds a position covering [line:col, endLine:endCol).
func Span(line, col, endLine, endCol uint32) Position {
	return Position{Line: line, Column: col, EndLine: endLine, EndColumn: endCol}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Point reports whether the span is zero-width.
func (p Position) Point() bool {
	return p.Line == p.EndLine && p.Column == p.EndColumn
}

// Cover extends the span to include other.
func (p Position) Cover(other Position) Position {
	if other.Line < p.Line || (other.Line == p.Line && other.Column < p.Column) {
		p.Line, p.Column = other.Line, other.Column
	}
	if other.EndLine > p.EndLine || (other.EndLine == p.EndLine && other.EndColumn > p.EndColumn) {
		p.EndLine, p.EndColumn = other.EndLine, other.EndColumn
	}
	return p
}

// Before reports whether p starts before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}
