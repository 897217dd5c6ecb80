package sema

import (
	"ucc/internal/ast"
	"ucc/internal/source"
	"ucc/internal/token"
	"ucc/internal/types"
)

// typeCheck is the sixth pass: it computes the type of every expression
// and enforces the context-sensitive rules around operators, conditions,
// initializers, and returns. Every violation substitutes a usable type so
// checking continues.
func (c *checker) typeCheck(n ast.Node) {
	switch n := n.(type) {
	case *ast.FuncDecl:
		saved := c.fn
		c.fn = n.Fn()
		c.typeCheck(n.Body)
		c.fn = saved
	case *ast.VarDef:
		c.checkExpr(n.Init)
		want := n.DeclType.Type()
		if got := n.Init.Type(); got != want && !got.ConvertibleTo(want) {
			c.report(n.Pos(), "variable %s of type %s cannot be initialized with %s",
				n.Name.Raw, want, got)
		}
	case *ast.If:
		c.checkCond(n.Cond, "if")
		c.typeCheck(n.Then)
		if n.Else != nil {
			c.typeCheck(n.Else)
		}
	case *ast.While:
		c.checkCond(n.Cond, "while")
		c.typeCheck(n.Body)
	case *ast.For:
		switch init := n.Init.(type) {
		case *ast.VarDef:
			c.typeCheck(init)
		case ast.Expr:
			c.checkExpr(init)
		}
		if n.Cond != nil {
			c.checkCond(n.Cond, "for")
		}
		if n.Update != nil {
			c.checkExpr(n.Update)
		}
		c.typeCheck(n.Body)
	case *ast.Return:
		c.checkReturn(n)
	case *ast.Assert:
		c.checkCond(n.Cond, "assert")
		if n.Msg != nil {
			c.checkExpr(n.Msg)
			if mt := n.Msg.Type(); mt != c.global.Builtins().String {
				c.report(n.Msg.Pos(), "assert message must be a string, got %s", mt)
			}
		}
	case *ast.ExprStmt:
		c.checkExpr(n.X)
	default:
		ast.EachChild(n, c.typeCheck)
	}
}

func (c *checker) checkCond(e ast.Expr, what string) {
	c.checkExpr(e)
	if t := e.Type(); t != c.global.Builtins().Boolean {
		c.report(e.Pos(), "%s condition must be boolean, got %s", what, t)
	}
}

func (c *checker) checkReturn(n *ast.Return) {
	ret := c.fn.Return()
	void := c.global.Builtins().Void
	if n.Value == nil {
		if ret != void {
			c.report(n.Pos(), "return statement expects a value of type %s", ret)
		}
		return
	}
	c.checkExpr(n.Value)
	if ret == void {
		c.report(n.Pos(), "void function cannot return a value")
		return
	}
	if got := n.Value.Type(); got != ret && !got.ConvertibleTo(ret) {
		c.report(n.Pos(), "return statement expects %s, got %s", ret, got)
	}
}

func (c *checker) checkExpr(e ast.Expr) {
	b := c.global.Builtins()
	switch e := e.(type) {
	case *ast.IntLit:
		if e.IsLong {
			e.SetType(b.Long)
		} else {
			e.SetType(b.Int)
		}
	case *ast.DoubleLit:
		e.SetType(b.Double)
	case *ast.StringLit:
		e.SetType(b.String)
	case *ast.BoolLit:
		e.SetType(b.Boolean)
	case *ast.NullLit:
		e.SetType(b.Null)
	case *ast.NameExpr:
		// typed by the name-checking pass
	case *ast.Call:
		for _, arg := range e.Args {
			c.checkExpr(arg)
		}
		e.SetType(e.Fn().Return())
		c.checkCallArgs(e)
	case *ast.New:
		for _, arg := range e.Args {
			c.checkExpr(arg)
		}
		e.SetType(e.AllocType.Type())
		c.checkNewArgs(e)
	case *ast.FieldAccess:
		c.checkExpr(e.Recv)
		e.SetType(c.lookupField(e.Pos(), e.Recv.Type(), e.Name.Raw))
	case *ast.Index:
		c.checkExpr(e.Recv)
		c.checkExpr(e.Sub)
		arr, ok := e.Recv.Type().(*types.Array)
		if !ok {
			c.report(e.Pos(), "Cannot index into non-array.")
			e.SetType(e.Recv.Type())
			return
		}
		e.SetType(arr.Elem())
		if !e.Sub.Type().IsIntegral() {
			c.report(e.Pos(), "Cannot index non-integer %s into array.", e.Sub.Type())
		}
	case *ast.Unary:
		c.checkUnary(e)
	case *ast.Binary:
		c.checkBinary(e)
	case *ast.Bad:
		e.SetType(b.Int)
	}
}

func (c *checker) checkUnary(e *ast.Unary) {
	c.checkExpr(e.X)
	b := c.global.Builtins()
	xt := e.X.Type()
	switch e.Op {
	case token.Plus, token.Minus, token.Incr, token.Decr:
		if !xt.IsNumeric() {
			c.report(e.X.Pos(), "unary %s operator expects int, long, or double, got %s",
				e.Op, xt)
			e.SetType(b.Int)
			return
		}
		e.SetType(xt)
	case token.Not:
		if xt != b.Boolean {
			c.report(e.X.Pos(), "unary ! operator expects boolean, got %s", xt)
		}
		e.SetType(b.Boolean)
	case token.Hash:
		e.SetType(b.Long)
	}
}

func (c *checker) checkBinary(e *ast.Binary) {
	c.checkExpr(e.RHS)
	c.checkExpr(e.LHS)
	b := c.global.Builtins()
	lt, rt := e.LHS.Type(), e.RHS.Type()
	switch {
	case e.Op == token.Plus:
		if lt.IsNumeric() {
			if !rt.IsNumeric() {
				c.reportBinType(e.RHS.Pos(), e.Op, "int, long, or double", rt)
			}
			e.SetType(lt)
			return
		}
		// a string on the left concatenates regardless of the right side
		if lt == b.String {
			e.SetType(lt)
			return
		}
		if lt != rt {
			c.reportBinType(e.Pos(), e.Op, lt.Name(), rt)
		}
		e.SetType(lt)
	case e.Op.IsArith():
		if !lt.IsNumeric() {
			c.reportBinType(e.LHS.Pos(), e.Op, "int, long, or double", lt)
		}
		if !rt.IsNumeric() {
			c.reportBinType(e.RHS.Pos(), e.Op, "int, long, or double", rt)
		}
		e.SetType(lt)
	case e.Op.IsLogic(), e.Op.IsComparison(), e.Op.IsEquality():
		e.SetType(b.Boolean)
	case e.Op == token.Assign:
		if !ast.IsLValue(e.LHS) {
			c.report(e.Pos(),
				"assignment operator expects l-value on left-hand side, got %s", lt)
		} else if rt != lt && !rt.ConvertibleTo(lt) {
			c.reportBinType(e.Pos(), e.Op, lt.Name(), rt)
		}
		e.SetType(lt)
	case e.Op == token.Push:
		arr, ok := lt.(*types.Array)
		if !ok {
			c.reportBinType(e.LHS.Pos(), e.Op, "an array", lt)
		} else if elem := arr.Elem(); rt != elem && !rt.ConvertibleTo(elem) {
			c.reportBinType(e.RHS.Pos(), e.Op, elem.Name(), rt)
		}
		e.SetType(lt)
	case e.Op == token.Pop:
		arr, ok := lt.(*types.Array)
		if !ok {
			c.reportBinType(e.LHS.Pos(), e.Op, "an array", lt)
			e.SetType(lt)
			return
		}
		if !ast.IsLValue(e.RHS) {
			c.report(e.RHS.Pos(),
				"binary >> operator expects l-value on right-hand side, got %s", rt)
		} else if elem := arr.Elem(); rt != elem {
			c.reportBinType(e.RHS.Pos(), e.Op, elem.Name(), rt)
		}
		e.SetType(lt)
	}
}

// reportBinType reports one operand-type error for a binary operator. The
// operator spelling goes in as an argument, never as part of the format
// string, since % is itself an operator.
func (c *checker) reportBinType(pos source.Position, op token.Kind, expect string, got types.Type) {
	c.report(pos, "binary %s operator expects %s, got %s", op, expect, got.Name())
}
