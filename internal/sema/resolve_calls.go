package sema

import "ucc/internal/ast"

// resolveCalls is the third pass: call expressions bind to the function
// they name, arguments first so nested calls resolve post-order. A missing
// name reports an undefined-function error and binds the default fallback,
// so later passes never see an unresolved call.
func (c *checker) resolveCalls(n ast.Node) {
	switch n := n.(type) {
	case *ast.Call:
		for _, arg := range n.Args {
			c.resolveCalls(arg)
		}
		n.SetFn(c.global.LookupFunction(c.phase, n.Pos(), n.Name.Raw))
	default:
		ast.EachChild(n, c.resolveCalls)
	}
}
