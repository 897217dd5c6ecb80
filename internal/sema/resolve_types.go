package sema

import (
	"ucc/internal/ast"
	"ucc/internal/types"
)

// resolveTypes is the second pass: every type-name node resolves its
// textual name to a Type object. Array type names resolve their element
// first and then derive the interned array type. Struct types receive their
// field tables and user functions their return and parameter types, in
// declaration order.
func (c *checker) resolveTypes(n ast.Node) {
	switch n := n.(type) {
	case *ast.SimpleTypeName:
		n.SetType(c.global.LookupType(c.phase, n.Pos(), n.Name.Raw))
	case *ast.ArrayTypeName:
		c.resolveTypes(n.Elem)
		n.SetType(c.global.ArrayOf(n.Elem.Type()))
	case *ast.StructDecl:
		fields := make([]types.Field, 0, len(n.Fields))
		for _, fd := range n.Fields {
			c.resolveTypes(fd.DeclType)
			fields = append(fields, types.Field{
				Name: fd.Name.Raw,
				Type: fd.DeclType.Type(),
			})
		}
		if u, ok := n.Type().(*types.User); ok {
			u.SetFields(fields)
		}
	case *ast.FuncDecl:
		c.resolveTypes(n.Return)
		fn, _ := n.Fn().(*types.UserFunc)
		if fn != nil {
			fn.SetReturn(n.Return.Type())
		}
		for _, param := range n.Params {
			c.resolveTypes(param.DeclType)
			if fn != nil {
				fn.AppendParam(param.DeclType.Type())
			}
		}
		c.resolveTypes(n.Body)
	default:
		ast.EachChild(n, c.resolveTypes)
	}
}
