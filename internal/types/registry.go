package types

import "ucc/internal/source"

// Builtins holds the interned primitive types.
type Builtins struct {
	Int     Type
	Long    Type
	Double  Type
	Boolean Type
	String  Type
	Void    Type
	Null    Type
}

// Registry is the single creation authority for types and functions. The
// global environment owns the only registry of a compilation; everything
// else sees types through the Type and Function interfaces.
type Registry struct {
	builtins Builtins
	arrays   map[Type]*Array
}

// NewRegistry constructs a registry seeded with the builtin primitives.
func NewRegistry() *Registry {
	r := &Registry{arrays: make(map[Type]*Array)}
	r.builtins = Builtins{
		Int:     &Primitive{name: "int"},
		Long:    &Primitive{name: "long"},
		Double:  &Primitive{name: "double"},
		Boolean: &Primitive{name: "boolean"},
		String:  &Primitive{name: "string"},
		Void:    &Primitive{name: "void"},
		Null:    &Primitive{name: "null"},
	}
	return r
}

// Builtins returns the interned primitive types.
func (r *Registry) Builtins() Builtins {
	return r.builtins
}

// ArrayOf returns the unique array type over elem, creating and caching it
// on first use. Array-of-array nests, one cache entry per level. The
// uncomputed sentinel is its own array type.
func (r *Registry) ArrayOf(elem Type) Type {
	if elem == Uncomputed || elem == nil {
		return Uncomputed
	}
	if a, ok := r.arrays[elem]; ok {
		return a
	}
	a := &Array{elem: elem}
	r.arrays[elem] = a
	return a
}

// DeclareUser creates a fresh user type for a struct declaration. The
// caller decides whether it enters the environment tables.
func (r *Registry) DeclareUser(name string, pos source.Position) *User {
	return &User{name: name, pos: pos.String()}
}

// DeclareUserFunc creates a fresh user function for a function declaration.
func (r *Registry) DeclareUserFunc(name string, pos source.Position) *UserFunc {
	return &UserFunc{name: name, pos: pos.String()}
}

// NewPrimitiveFunc creates a builtin function signature.
func (r *Registry) NewPrimitiveFunc(name string, ret Type, params ...Type) *PrimitiveFunc {
	return &PrimitiveFunc{name: name, ret: ret, params: params}
}
