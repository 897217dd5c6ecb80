// Package types models the uC type and function lattices. Types and
// functions are interned: each declared name and each array element type maps
// to exactly one object, so identity comparison decides "is the same type".
// Creation goes through a Registry so that no other package can mint types.
package types

// Type is implemented by all uC types: primitives, arrays, user-defined
// record types, and the uncomputed sentinel.
type Type interface {
	// Name returns the source-level name of the type ("int", "Point[]", ...).
	Name() string
	// DeclaredAt returns "line:col" of the declaration, or "<builtin>".
	DeclaredAt() string
	// IsNumeric reports whether the type is a numeric primitive.
	IsNumeric() bool
	// IsIntegral reports whether the type is an integral primitive.
	IsIntegral() bool
	// ConvertibleTo reports whether a value of this type may be used where
	// other is expected. Identity always converts; the widenings int->long,
	// int->double and long->double convert; null converts to any array or
	// user type. Nothing else does.
	ConvertibleTo(other Type) bool
	// Join computes the result type of a binary operation on this type and
	// other: string wins over any non-string operand, otherwise the wider of
	// two numeric types wins, otherwise the receiver.
	Join(other Type) Type

	String() string
	sealed()
}

var (
	integralNames = map[string]bool{"int": true, "long": true}
	numericNames  = map[string]bool{"int": true, "long": true, "double": true}
	widenings     = map[[2]string]bool{
		{"int", "long"}:    true,
		{"int", "double"}:  true,
		{"long", "double"}: true,
	}
)

const builtinPos = "<builtin>"

// Primitive is a builtin primitive type.
type Primitive struct {
	name string
}

func (p *Primitive) Name() string       { return p.name }
func (p *Primitive) DeclaredAt() string { return builtinPos }
func (p *Primitive) String() string     { return p.name }
func (p *Primitive) IsNumeric() bool    { return numericNames[p.name] }
func (p *Primitive) IsIntegral() bool   { return integralNames[p.name] }
func (*Primitive) sealed()              {}

func (p *Primitive) ConvertibleTo(other Type) bool {
	if Type(p) == other {
		return true
	}
	if widenings[[2]string{p.name, other.Name()}] {
		return true
	}
	if p.name == "null" {
		switch other.(type) {
		case *Array, *User:
			return true
		}
	}
	return false
}

func (p *Primitive) Join(other Type) Type {
	if other.Name() == "string" || widenings[[2]string{p.name, other.Name()}] {
		return other
	}
	return p
}

// Uncomputed is the sentinel standing for "not yet computed". Exactly one
// instance exists; the post-pass validator asserts it never survives
// analysis.
var Uncomputed Type = &uncomputed{}

type uncomputed struct{}

func (*uncomputed) Name() string              { return "<uncomputed type>" }
func (*uncomputed) DeclaredAt() string        { return builtinPos }
func (*uncomputed) String() string            { return "<uncomputed type>" }
func (*uncomputed) IsNumeric() bool           { return false }
func (*uncomputed) IsIntegral() bool          { return false }
func (*uncomputed) ConvertibleTo(o Type) bool { return Type(Uncomputed) == o }
func (u *uncomputed) Join(other Type) Type {
	if other.Name() == "string" {
		return other
	}
	return u
}
func (*uncomputed) sealed() {}
