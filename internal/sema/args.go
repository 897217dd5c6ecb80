package sema

import (
	"ucc/internal/ast"
	"ucc/internal/source"
	"ucc/internal/types"
)

// checkCallArgs validates argument count and per-position compatibility of
// a resolved call. An arity mismatch or the first incompatible argument
// stops checking for this call.
func (c *checker) checkCallArgs(call *ast.Call) {
	fn := call.Fn()
	params := fn.Params()
	if len(params) != len(call.Args) {
		c.report(call.Pos(), "function %s expected %d arguments, got %d",
			fn.Name(), len(params), len(call.Args))
		return
	}
	for i, arg := range call.Args {
		at := arg.Type()
		if at == params[i] || at.ConvertibleTo(params[i]) {
			continue
		}
		c.report(call.Pos(), "type %s at %d not compatible with %s parameter",
			params[i], i+1, at)
		return
	}
}

// checkNewArgs validates an allocation's arguments. Array initializers
// demand the exact element type and every mismatch is reported; user types
// permit a bare default construction with no arguments, otherwise arity and
// positional convertibility are checked, stopping at the first mismatch.
func (c *checker) checkNewArgs(e *ast.New) {
	switch t := e.AllocType.Type().(type) {
	case *types.Array:
		for _, arg := range e.Args {
			if arg.Type() != t.Elem() {
				c.report(e.Pos(), "array of %s cannot be initialized with %s",
					t.Elem(), arg.Type())
			}
		}
	case *types.User:
		if len(e.Args) == 0 {
			return
		}
		fields := t.Fields()
		if len(fields) != len(e.Args) {
			c.report(e.Pos(), "%s expected %d arguments, got %d",
				t.Name(), len(fields), len(e.Args))
			return
		}
		for i, arg := range e.Args {
			at := arg.Type()
			if at == fields[i].Type || at.ConvertibleTo(fields[i].Type) {
				continue
			}
			c.report(e.Pos(), "%s expected %s at %d, got %s",
				t.Name(), fields[i].Type, i+1, at)
			return
		}
	default:
		c.report(e.Pos(), "type %s cannot be allocated with new", t)
	}
}

// lookupField resolves a field access against the receiver's type: arrays
// expose the synthetic length field, user types their declared fields.
// Unknown fields report and fall back to int.
func (c *checker) lookupField(pos source.Position, recv types.Type, name string) types.Type {
	b := c.global.Builtins()
	switch t := recv.(type) {
	case *types.Array:
		if name == "length" {
			return b.Int
		}
		c.report(pos, "unknown field %s of %s", name, t)
		return b.Int
	case *types.User:
		if ft, ok := t.Field(name); ok {
			return ft
		}
		c.report(pos, "%s not in %s", name, t.Name())
		return b.Int
	default:
		c.report(pos, "type %s has no field %s", recv.Name(), name)
		return b.Int
	}
}
