package diag

import (
	"testing"

	"github.com/nalgeon/be"

	"ucc/internal/source"
)

func TestBagCountsPastLimit(t *testing.T) {
	b := NewBag(1, 2)
	for i := 0; i < 5; i++ {
		b.Report(PhaseTypeCheck, source.At(uint32(i+1), 1), "boom")
	}
	be.Equal(t, b.Len(), 2)
	be.Equal(t, b.ErrorCount(), 5)
	be.True(t, b.HasErrors())
}

func TestBagWarningsDoNotCount(t *testing.T) {
	b := NewBag(1, 10)
	b.Warn(PhaseSyntax, source.At(1, 1), "dusty")
	be.Equal(t, b.ErrorCount(), 0)
	be.Equal(t, b.Len(), 1)
	be.True(t, !b.HasErrors())
}

func TestBagDisable(t *testing.T) {
	b := NewBag(1, 10)
	b.Report(PhaseDeclare, source.At(1, 1), "one")
	b.Disable()
	b.Report(PhaseDeclare, source.At(2, 1), "two")
	be.Equal(t, b.ErrorCount(), 1)
	be.Equal(t, b.Len(), 1)
}

func TestBagSort(t *testing.T) {
	b := NewBag(1, 10)
	b.Report(PhaseTypeCheck, source.At(4, 2), "later")
	b.Report(PhaseSyntax, source.At(1, 9), "earlier")
	b.Report(PhaseDeclare, source.At(1, 9), "same spot, earlier phase")
	b.Sort()

	items := b.Items()
	be.Equal(t, items[0].Phase, PhaseSyntax)
	be.Equal(t, items[1].Phase, PhaseDeclare)
	be.Equal(t, items[2].Message, "later")
}
