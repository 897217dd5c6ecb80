package sema

import "ucc/internal/ast"

// checkNames is the fourth pass: lexical scopes are created at function
// bodies, struct bodies, blocks, and for-loop headers; parameters, fields,
// and local definitions are inserted; name expressions resolve their type
// by walking the scope chain. Literal operands are skipped, they need no
// lookup.
func (c *checker) checkNames(n ast.Node) {
	switch n := n.(type) {
	case *ast.StructDecl:
		restore := c.pushScope()
		defer restore()
		for _, fd := range n.Fields {
			c.scope.Add(c.phase, fd.Pos(), fd.Name.Raw, fd.DeclType.Type())
		}
	case *ast.FuncDecl:
		restore := c.pushScope()
		defer restore()
		for _, param := range n.Params {
			c.scope.Add(c.phase, param.Pos(), param.Name.Raw, param.DeclType.Type())
		}
		c.checkNames(n.Body)
	case *ast.Block:
		restore := c.pushScope()
		defer restore()
		for _, s := range n.Stmts {
			c.checkNames(s)
		}
	case *ast.For:
		// the header scope also covers the body, so loop variables are
		// visible inside it
		restore := c.pushScope()
		defer restore()
		if n.Init != nil {
			c.checkNames(n.Init)
		}
		if n.Cond != nil {
			c.checkNames(n.Cond)
		}
		if n.Update != nil {
			c.checkNames(n.Update)
		}
		c.checkNames(n.Body)
	case *ast.VarDef:
		if !ast.IsLiteral(n.Init) {
			c.checkNames(n.Init)
		}
		c.scope.Add(c.phase, n.Pos(), n.Name.Raw, n.DeclType.Type())
	case *ast.NameExpr:
		n.SetType(c.scope.TypeOf(c.phase, n.Pos(), n.Name.Raw))
	case *ast.FieldAccess:
		// the field name resolves through the receiver's type, not the
		// scope chain
		if !ast.IsLiteral(n.Recv) {
			c.checkNames(n.Recv)
		}
	case *ast.Call:
		for _, arg := range n.Args {
			if !ast.IsLiteral(arg) {
				c.checkNames(arg)
			}
		}
	case *ast.Binary:
		if !ast.IsLiteral(n.LHS) {
			c.checkNames(n.LHS)
		}
		if !ast.IsLiteral(n.RHS) {
			c.checkNames(n.RHS)
		}
	default:
		ast.EachChild(n, c.checkNames)
	}
}
