package types

// Array is an array type. Arrays are interned per element type through the
// Registry, so two arrays over the same element are the same object.
type Array struct {
	elem Type
}

func (a *Array) Name() string       { return a.elem.Name() + "[]" }
func (a *Array) DeclaredAt() string { return a.elem.DeclaredAt() }
func (a *Array) String() string     { return a.Name() }
func (a *Array) IsNumeric() bool    { return false }
func (a *Array) IsIntegral() bool   { return false }
func (*Array) sealed()              {}

// Elem returns the element type.
func (a *Array) Elem() Type { return a.elem }

func (a *Array) ConvertibleTo(other Type) bool {
	return Type(a) == other
}

func (a *Array) Join(other Type) Type {
	if other.Name() == "string" {
		return other
	}
	return a
}
