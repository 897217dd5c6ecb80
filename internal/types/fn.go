package types

// Function is implemented by all uC callables: builtins, user-defined
// functions, and the uncomputed sentinel. Identity comparison decides "is
// the same function".
type Function interface {
	Name() string
	// DeclaredAt returns "line:col" of the declaration, or "<builtin>".
	DeclaredAt() string
	// Return is the declared return type.
	Return() Type
	// Params lists parameter types in declaration order.
	Params() []Type

	String() string
	fnSealed()
}

// PrimitiveFunc is a builtin function registered at environment
// construction.
type PrimitiveFunc struct {
	name   string
	ret    Type
	params []Type
}

func (f *PrimitiveFunc) Name() string       { return f.name }
func (f *PrimitiveFunc) DeclaredAt() string { return builtinPos }
func (f *PrimitiveFunc) String() string     { return f.name }
func (f *PrimitiveFunc) Return() Type       { return f.ret }
func (f *PrimitiveFunc) Params() []Type     { return f.params }
func (*PrimitiveFunc) fnSealed()            {}

// UserFunc is a user-defined function. Its return type and parameter list
// are filled in by the type-name resolution pass.
type UserFunc struct {
	name   string
	pos    string
	ret    Type
	params []Type
}

func (f *UserFunc) Name() string       { return f.name }
func (f *UserFunc) DeclaredAt() string { return f.pos }
func (f *UserFunc) String() string     { return f.name }
func (f *UserFunc) Params() []Type     { return f.params }
func (*UserFunc) fnSealed()            {}

func (f *UserFunc) Return() Type {
	if f.ret == nil {
		return Uncomputed
	}
	return f.ret
}

// SetReturn stamps the resolved return type.
func (f *UserFunc) SetReturn(t Type) {
	f.ret = t
}

// AppendParam appends one resolved parameter type.
func (f *UserFunc) AppendParam(t Type) {
	f.params = append(f.params, t)
}

// UncomputedFn is the sentinel standing for "function not yet resolved".
var UncomputedFn Function = &uncomputedFn{}

type uncomputedFn struct{}

func (*uncomputedFn) Name() string       { return "<uncomputed function>" }
func (*uncomputedFn) DeclaredAt() string { return builtinPos }
func (*uncomputedFn) String() string     { return "<uncomputed function>" }
func (*uncomputedFn) Return() Type       { return Uncomputed }
func (*uncomputedFn) Params() []Type     { return nil }
func (*uncomputedFn) fnSealed()          {}
