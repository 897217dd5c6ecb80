// Package ast defines the uC abstract syntax tree. Nodes own their children
// tree-shaped: no sharing, no cycles. Nodes that carry computed attributes
// (the type of an expression or type name, the function bound to a call or
// declaration) start life holding the uncomputed sentinels and are stamped
// exactly once by the analysis pass responsible for them.
package ast

import (
	"ucc/internal/source"
	"ucc/internal/types"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() source.Position
}

// Decl is a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression carrying a computed type attribute.
type Expr interface {
	Node
	Type() types.Type
	SetType(types.Type)
	exprNode()
}

// TypeName is a source-level type name carrying the resolved type.
type TypeName interface {
	Node
	Type() types.Type
	SetType(types.Type)
	typeNameNode()
}

// HasType is satisfied by any node with a computed type attribute.
type HasType interface {
	Type() types.Type
	SetType(types.Type)
}

// HasFunc is satisfied by any node with a computed function attribute.
type HasFunc interface {
	Fn() types.Function
	SetFn(types.Function)
}

type node struct {
	pos source.Position
}

func (n node) Pos() source.Position { return n.pos }

type expr struct {
	node
	typ types.Type
}

func newExpr(pos source.Position) expr {
	return expr{node: node{pos: pos}, typ: types.Uncomputed}
}

func (e *expr) Type() types.Type     { return e.typ }
func (e *expr) SetType(t types.Type) { e.typ = t }
func (*expr) exprNode()              {}

type typeName struct {
	node
	typ types.Type
}

func newTypeName(pos source.Position) typeName {
	return typeName{node: node{pos: pos}, typ: types.Uncomputed}
}

func (t *typeName) Type() types.Type      { return t.typ }
func (t *typeName) SetType(tt types.Type) { t.typ = tt }
func (*typeName) typeNameNode()           {}

// Name is a bare identifier.
type Name struct {
	node
	Raw string
}

// NewName creates a name node.
func NewName(pos source.Position, raw string) *Name {
	return &Name{node: node{pos: pos}, Raw: raw}
}

// Program is the root of a compilation unit.
type Program struct {
	node
	Decls []Decl
}

// NewProgram creates the root node.
func NewProgram(pos source.Position, decls []Decl) *Program {
	return &Program{node: node{pos: pos}, Decls: decls}
}
