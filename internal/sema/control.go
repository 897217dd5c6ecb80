package sema

import "ucc/internal/ast"

// control is the fifth pass: break and continue are only allowed inside a
// while or for body. The loop flag is saved and restored around each loop
// so nesting and code following a loop are handled correctly.
func (c *checker) control(n ast.Node) {
	switch n := n.(type) {
	case *ast.While:
		c.loopBody(n.Body)
	case *ast.For:
		c.loopBody(n.Body)
	case *ast.Break:
		if !c.inLoop {
			c.report(n.Pos(), "break only allowed within a loop")
		}
	case *ast.Continue:
		if !c.inLoop {
			c.report(n.Pos(), "continue only allowed within a loop")
		}
	default:
		ast.EachChild(n, c.control)
	}
}

func (c *checker) loopBody(body *ast.Block) {
	saved := c.inLoop
	c.inLoop = true
	c.control(body)
	c.inLoop = saved
}
