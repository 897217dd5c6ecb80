package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"ucc/internal/diag"
	"ucc/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.AddVirtual("test.uc", []byte("int main() {\n  return x;\n}\n"))
	bag := diag.NewBag(f.ID, 0)
	bag.Report(diag.PhaseCheckNames, source.Span(2, 10, 2, 11), "x not defined")
	bag.Report(diag.PhaseTypeCheck, source.At(2, 3), "return statement expects a value of type int")
	return bag, fs
}

func TestPrettyFormat(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	be.Equal(t, len(lines), 2)
	be.Equal(t, lines[0], "test.uc:2:10: error (4): x not defined")
	be.Equal(t, lines[1], "test.uc:2:3: error (6): return statement expects a value of type int")
}

func TestPrettyShowSource(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true})

	out := buf.String()
	be.True(t, strings.Contains(out, "  return x;\n"))
	// Caret sits under column 10 of "  return x;".
	be.True(t, strings.Contains(out, "           ^\n"))
}

func TestPrettyDroppedCount(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.AddVirtual("test.uc", []byte("int x = 1;\n"))
	bag := diag.NewBag(f.ID, 2)
	for range 5 {
		bag.Report(diag.PhaseTypeCheck, source.At(1, 1), "boom")
	}
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	be.True(t, strings.Contains(buf.String(), "... and 3 more error(s) not shown"))
}

func TestJSONOutput(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{})
	be.Err(t, err, nil)

	var out DiagnosticsOutput
	be.Err(t, json.Unmarshal(buf.Bytes(), &out), nil)
	be.Equal(t, out.Errors, 2)
	be.Equal(t, len(out.Diagnostics), 2)
	be.Equal(t, out.Diagnostics[0].File, "test.uc")
	be.Equal(t, out.Diagnostics[0].Line, uint32(2))
	be.Equal(t, out.Diagnostics[0].Col, uint32(10))
	be.Equal(t, out.Diagnostics[0].Phase, uint8(4))
	be.Equal(t, out.Diagnostics[0].Message, "x not defined")
}

func TestJSONMaxTruncates(t *testing.T) {
	bag, fs := testBag(t)
	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 1})
	be.Equal(t, len(out.Diagnostics), 1)
	be.Equal(t, out.Errors, 2)
}
