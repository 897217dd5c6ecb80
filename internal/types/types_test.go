package types

import (
	"testing"

	"github.com/nalgeon/be"

	"ucc/internal/source"
)

func TestConvertibleReflexive(t *testing.T) {
	r := NewRegistry()
	b := r.Builtins()
	u := r.DeclareUser("Point", source.At(1, 1))
	all := []Type{b.Int, b.Long, b.Double, b.Boolean, b.String, b.Void, b.Null,
		r.ArrayOf(b.Int), u}
	for _, typ := range all {
		be.True(t, typ.ConvertibleTo(typ))
	}
}

func TestWideningChain(t *testing.T) {
	b := NewRegistry().Builtins()
	// int -> long -> double, transitive, never the reverse
	be.True(t, b.Int.ConvertibleTo(b.Long))
	be.True(t, b.Int.ConvertibleTo(b.Double))
	be.True(t, b.Long.ConvertibleTo(b.Double))
	be.True(t, !b.Long.ConvertibleTo(b.Int))
	be.True(t, !b.Double.ConvertibleTo(b.Int))
	be.True(t, !b.Double.ConvertibleTo(b.Long))
	be.True(t, !b.Int.ConvertibleTo(b.Boolean))
	be.True(t, !b.String.ConvertibleTo(b.Int))
}

func TestNullConvertsToReferenceTypes(t *testing.T) {
	r := NewRegistry()
	b := r.Builtins()
	u := r.DeclareUser("List", source.At(2, 1))
	be.True(t, b.Null.ConvertibleTo(u))
	be.True(t, b.Null.ConvertibleTo(r.ArrayOf(b.Int)))
	be.True(t, !b.Null.ConvertibleTo(b.Int))
	be.True(t, !b.Null.ConvertibleTo(b.String))
}

func TestArrayInterning(t *testing.T) {
	r := NewRegistry()
	b := r.Builtins()
	a1 := r.ArrayOf(b.Int)
	a2 := r.ArrayOf(b.Int)
	be.True(t, a1 == a2)
	be.Equal(t, a1.Name(), "int[]")

	nested := r.ArrayOf(a1)
	be.True(t, nested == r.ArrayOf(a1))
	be.Equal(t, nested.Name(), "int[][]")
	be.True(t, nested != a1)

	// the sentinel has no distinct array type
	be.True(t, r.ArrayOf(Uncomputed) == Uncomputed)
}

func TestJoin(t *testing.T) {
	r := NewRegistry()
	b := r.Builtins()
	tests := []struct {
		name     string
		a, b     Type
		expected Type
	}{
		{"string wins left", b.String, b.Int, b.String},
		{"string wins right", b.Int, b.String, b.String},
		{"wider numeric wins", b.Int, b.Double, b.Double},
		{"int long", b.Int, b.Long, b.Long},
		{"no widening keeps receiver", b.Double, b.Int, b.Double},
		{"boolean keeps receiver", b.Boolean, b.Int, b.Boolean},
		{"array with string", r.ArrayOf(b.Int), b.String, b.String},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be.True(t, tt.a.Join(tt.b) == tt.expected)
		})
	}
}

func TestPredicates(t *testing.T) {
	r := NewRegistry()
	b := r.Builtins()
	be.True(t, b.Int.IsNumeric() && b.Int.IsIntegral())
	be.True(t, b.Long.IsNumeric() && b.Long.IsIntegral())
	be.True(t, b.Double.IsNumeric() && !b.Double.IsIntegral())
	be.True(t, !b.String.IsNumeric())
	be.True(t, !b.Boolean.IsNumeric())
	be.True(t, !r.ArrayOf(b.Int).IsNumeric())
	be.True(t, !r.DeclareUser("P", source.At(1, 1)).IsNumeric())
	be.True(t, !Uncomputed.IsNumeric())
}

func TestUserFields(t *testing.T) {
	r := NewRegistry()
	b := r.Builtins()
	u := r.DeclareUser("Point", source.At(3, 1))
	u.SetFields([]Field{{"x", b.Int}, {"y", b.Int}})

	ft, ok := u.Field("x")
	be.True(t, ok)
	be.True(t, ft == b.Int)
	_, ok = u.Field("z")
	be.True(t, !ok)
	be.Equal(t, len(u.Fields()), 2)
	be.Equal(t, u.DeclaredAt(), "3:1")
}

func TestUserFuncAccumulation(t *testing.T) {
	r := NewRegistry()
	b := r.Builtins()
	f := r.DeclareUserFunc("dist", source.At(5, 1))
	be.True(t, f.Return() == Uncomputed)
	f.SetReturn(b.Double)
	f.AppendParam(b.Int)
	f.AppendParam(b.Int)
	be.True(t, f.Return() == b.Double)
	be.Equal(t, len(f.Params()), 2)
	be.True(t, f.Params()[0] == b.Int)
}
