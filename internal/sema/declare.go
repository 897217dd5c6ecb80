package sema

import "ucc/internal/ast"

// declare is the first pass: struct and function declarations register
// themselves into the global environment. No type names are resolved yet;
// each declaration only receives its identity.
func (c *checker) declare(n ast.Node) {
	switch n := n.(type) {
	case *ast.StructDecl:
		n.SetType(c.global.AddType(c.phase, n.Pos(), n.Name.Raw, n.Name.Pos()))
	case *ast.FuncDecl:
		n.SetFn(c.global.AddFunction(c.phase, n.Pos(), n.Name.Raw, n.Name.Pos()))
	default:
		ast.EachChild(n, c.declare)
	}
}
