package ast

// EachChild calls f for every direct child of n in source order. It visits
// children one level deep only; callers drive the recursion.
func EachChild(n Node, f func(Node)) {
	switch n := n.(type) {
	case *Program:
		for _, d := range n.Decls {
			f(d)
		}
	case *StructDecl:
		f(n.Name)
		for _, fd := range n.Fields {
			f(fd)
		}
	case *FieldDecl:
		f(n.DeclType)
		f(n.Name)
	case *FuncDecl:
		f(n.Return)
		f(n.Name)
		for _, p := range n.Params {
			f(p)
		}
		f(n.Body)
	case *Param:
		f(n.DeclType)
		f(n.Name)
	case *SimpleTypeName:
		f(n.Name)
	case *ArrayTypeName:
		f(n.Elem)
	case *Block:
		for _, s := range n.Stmts {
			f(s)
		}
	case *VarDef:
		f(n.DeclType)
		f(n.Name)
		f(n.Init)
	case *VarDefStmt:
		f(n.Def)
	case *If:
		f(n.Cond)
		f(n.Then)
		if n.Else != nil {
			f(n.Else)
		}
	case *While:
		f(n.Cond)
		f(n.Body)
	case *For:
		if n.Init != nil {
			f(n.Init)
		}
		if n.Cond != nil {
			f(n.Cond)
		}
		if n.Update != nil {
			f(n.Update)
		}
		f(n.Body)
	case *Return:
		if n.Value != nil {
			f(n.Value)
		}
	case *Assert:
		f(n.Cond)
		if n.Msg != nil {
			f(n.Msg)
		}
	case *ExprStmt:
		f(n.X)
	case *NameExpr:
		f(n.Name)
	case *Call:
		f(n.Name)
		for _, a := range n.Args {
			f(a)
		}
	case *New:
		f(n.AllocType)
		for _, a := range n.Args {
			f(a)
		}
	case *FieldAccess:
		f(n.Recv)
		f(n.Name)
	case *Index:
		f(n.Recv)
		f(n.Sub)
	case *Unary:
		f(n.X)
	case *Binary:
		f(n.LHS)
		f(n.RHS)
	case *Name, *Break, *Continue, *IntLit, *DoubleLit, *StringLit, *BoolLit, *NullLit, *Bad:
		// leaves
	}
}

// Walk visits n and every node beneath it in depth-first source order.
func Walk(n Node, f func(Node)) {
	f(n)
	EachChild(n, func(c Node) { Walk(c, f) })
}
