package source

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestPositionString(t *testing.T) {
	p := Span(3, 5, 3, 9)
	be.Equal(t, p.String(), "3:5")
}

func TestPositionPoint(t *testing.T) {
	be.True(t, At(1, 1).Point())
	be.True(t, !Span(1, 1, 1, 2).Point())
}

func TestPositionCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Position
		expected Position
	}{
		{
			name:     "disjoint on one line",
			a:        Span(2, 4, 2, 6),
			b:        Span(2, 10, 2, 12),
			expected: Span(2, 4, 2, 12),
		},
		{
			name:     "other starts earlier",
			a:        Span(3, 1, 3, 5),
			b:        Span(1, 7, 2, 2),
			expected: Span(1, 7, 3, 5),
		},
		{
			name:     "contained",
			a:        Span(1, 1, 5, 1),
			b:        Span(2, 3, 2, 8),
			expected: Span(1, 1, 5, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.Equal(t, tt.a.Cover(tt.b), tt.expected)
		})
	}
}

func TestFileSetVirtual(t *testing.T) {
	fs := NewFileSet()
	f := fs.AddVirtual("test.uc", []byte("int main() {\n}\n"))
	be.Equal(t, f.ID, FileID(1))
	be.Equal(t, f.Line(1), "int main() {")
	be.Equal(t, f.Line(2), "}")
	be.Equal(t, f.Line(3), "")
	be.Equal(t, f.NumLines(), 2)

	// re-adding the same path returns the original
	again := fs.AddVirtual("test.uc", []byte("other"))
	be.Equal(t, again.ID, f.ID)
	be.Equal(t, fs.Get(f.ID).Path, "test.uc")
	be.True(t, fs.Get(NoFileID) == nil)
}
