package symbols

import (
	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/types"
)

// Scope is one lexical environment: the names introduced by a function body,
// a block, a struct body, or a for-loop header. Lookup walks the parent
// chain; bindings go into the introducing scope only.
type Scope struct {
	parent    *Scope
	global    *Global
	vars      map[string]types.Type
	positions map[string]source.Position
}

// NewScope creates a scope chained to parent (nil for a root scope). The
// global environment supplies the fallback type for failed lookups.
func NewScope(parent *Scope, global *Global) *Scope {
	return &Scope{
		parent:    parent,
		global:    global,
		vars:      make(map[string]types.Type, 4),
		positions: make(map[string]source.Position, 4),
	}
}

// Add binds name to typ in this scope. Redeclaring a name already bound in
// this same scope reports an error citing the original line and leaves the
// binding alone; a binding in an ancestor scope is shadowed, not an error.
func (s *Scope) Add(phase diag.Phase, pos source.Position, name string, typ types.Type) {
	if prev, ok := s.positions[name]; ok {
		diag.Reportf(s.global.reporter, phase, pos,
			"redeclaration of %s, previously declared at line %s", name, prev)
		return
	}
	s.vars[name] = typ
	s.positions[name] = pos
}

// DeclPos returns the position where name was declared, searching the whole
// chain.
func (s *Scope) DeclPos(name string) (source.Position, bool) {
	for env := s; env != nil; env = env.parent {
		if pos, ok := env.positions[name]; ok {
			return pos, true
		}
	}
	return source.Position{}, false
}

// Contains reports whether name is bound anywhere in the chain.
func (s *Scope) Contains(name string) bool {
	_, ok := s.DeclPos(name)
	return ok
}

// TypeOf resolves name by walking the chain. At the root with no match it
// reports "undefined variable or field" and falls back to int.
func (s *Scope) TypeOf(phase diag.Phase, pos source.Position, name string) types.Type {
	for env := s; env != nil; env = env.parent {
		if t, ok := env.vars[name]; ok {
			return t
		}
	}
	diag.Reportf(s.global.reporter, phase, pos,
		"undefined variable or field %s", name)
	return s.global.Builtins().Int
}
