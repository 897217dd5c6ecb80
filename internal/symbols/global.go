// Package symbols holds the name environments of a uC compilation: the
// program-wide global environment and the chained lexical scopes. All
// undefined-name and redefinition reporting funnels through here, and every
// lookup returns a usable fallback so analysis never stops.
package symbols

import (
	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/types"
)

// Global is the program-wide environment mapping names to types and to
// functions. It is created once per compilation, seeded with the builtins,
// mutated only during declaration collection, and read-only afterwards.
type Global struct {
	reporter diag.Reporter
	reg      *types.Registry
	types    map[string]types.Type
	funcs    map[string]types.Function
}

// NewGlobal creates a global environment with builtin types and functions
// registered. All errors the environment detects go to the reporter.
func NewGlobal(r diag.Reporter) *Global {
	g := &Global{
		reporter: r,
		reg:      types.NewRegistry(),
		types:    make(map[string]types.Type, 16),
		funcs:    make(map[string]types.Function, 32),
	}
	b := g.reg.Builtins()
	g.types["int"] = b.Int
	g.types["long"] = b.Long
	g.types["double"] = b.Double
	g.types["boolean"] = b.Boolean
	g.types["string"] = b.String
	g.types["void"] = b.Void
	g.types["null"] = b.Null
	g.addBuiltinFunctions()
	return g
}

// Builtins returns the interned primitive types.
func (g *Global) Builtins() types.Builtins {
	return g.reg.Builtins()
}

// ArrayOf returns the unique array type over elem.
func (g *Global) ArrayOf(elem types.Type) types.Type {
	return g.reg.ArrayOf(elem)
}

// AddType registers a user type under name. On a name collision it reports
// a redefinition error citing the previous declaration and leaves the table
// untouched, but still returns a fresh type object bound to the new
// declaration so later passes have something to attach.
func (g *Global) AddType(phase diag.Phase, pos source.Position, name string, namePos source.Position) *types.User {
	u := g.reg.DeclareUser(name, namePos)
	if prev, ok := g.types[name]; ok {
		diag.Reportf(g.reporter, phase, pos,
			"redefinition of type %s, previously defined at line %s",
			name, prev.DeclaredAt())
		return u
	}
	g.types[name] = u
	return u
}

// AddFunction registers a user function under name, with the same collision
// behavior as AddType.
func (g *Global) AddFunction(phase diag.Phase, pos source.Position, name string, namePos source.Position) *types.UserFunc {
	f := g.reg.DeclareUserFunc(name, namePos)
	if prev, ok := g.funcs[name]; ok {
		diag.Reportf(g.reporter, phase, pos,
			"redefinition of function %s, previously defined at line %s",
			name, prev.DeclaredAt())
		return f
	}
	g.funcs[name] = f
	return f
}

// LookupType resolves a type name. A missing name reports "undefined type"
// and falls back to int.
func (g *Global) LookupType(phase diag.Phase, pos source.Position, name string) types.Type {
	if t, ok := g.types[name]; ok {
		return t
	}
	diag.Reportf(g.reporter, phase, pos, "undefined type %s", name)
	return g.reg.Builtins().Int
}

// TryType resolves a type name without reporting.
func (g *Global) TryType(name string) (types.Type, bool) {
	t, ok := g.types[name]
	return t, ok
}

// LookupFunction resolves a function name. A missing name reports
// "undefined function" and falls back to the string_to_int builtin.
func (g *Global) LookupFunction(phase diag.Phase, pos source.Position, name string) types.Function {
	if f, ok := g.funcs[name]; ok {
		return f
	}
	diag.Reportf(g.reporter, phase, pos, "undefined function %s", name)
	return g.funcs["string_to_int"]
}

// TryFunction resolves a function name without reporting.
func (g *Global) TryFunction(name string) (types.Function, bool) {
	f, ok := g.funcs[name]
	return f, ok
}
