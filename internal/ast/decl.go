package ast

import (
	"ucc/internal/source"
	"ucc/internal/types"
)

// FieldDecl is one field inside a struct declaration.
type FieldDecl struct {
	node
	DeclType TypeName
	Name     *Name
}

// NewFieldDecl creates a struct field declaration.
func NewFieldDecl(pos source.Position, typ TypeName, name *Name) *FieldDecl {
	return &FieldDecl{node: node{pos: pos}, DeclType: typ, Name: name}
}

// StructDecl declares a user type. The Type attribute is stamped during
// declaration and points at the registered user type.
type StructDecl struct {
	node
	Name   *Name
	Fields []*FieldDecl
	typ    types.Type
}

// NewStructDecl creates a struct declaration with an uncomputed type.
func NewStructDecl(pos source.Position, name *Name, fields []*FieldDecl) *StructDecl {
	return &StructDecl{node: node{pos: pos}, Name: name, Fields: fields, typ: types.Uncomputed}
}

func (d *StructDecl) Type() types.Type     { return d.typ }
func (d *StructDecl) SetType(t types.Type) { d.typ = t }
func (*StructDecl) declNode()              {}

// Param is a single function parameter.
type Param struct {
	node
	DeclType TypeName
	Name     *Name
}

// NewParam creates a function parameter.
func NewParam(pos source.Position, typ TypeName, name *Name) *Param {
	return &Param{node: node{pos: pos}, DeclType: typ, Name: name}
}

// FuncDecl declares a function. The Fn attribute is stamped during
// declaration and points at the registered user function.
type FuncDecl struct {
	node
	Return TypeName
	Name   *Name
	Params []*Param
	Body   *Block
	fn     types.Function
}

// NewFuncDecl creates a function declaration with an uncomputed function.
func NewFuncDecl(pos source.Position, ret TypeName, name *Name, params []*Param, body *Block) *FuncDecl {
	return &FuncDecl{node: node{pos: pos}, Return: ret, Name: name, Params: params, Body: body, fn: types.UncomputedFn}
}

func (d *FuncDecl) Fn() types.Function      { return d.fn }
func (d *FuncDecl) SetFn(fn types.Function) { d.fn = fn }
func (*FuncDecl) declNode()                 {}

// SimpleTypeName names a primitive or user type by identifier.
type SimpleTypeName struct {
	typeName
	Name *Name
}

// NewSimpleTypeName creates an unresolved simple type name.
func NewSimpleTypeName(pos source.Position, name *Name) *SimpleTypeName {
	return &SimpleTypeName{typeName: newTypeName(pos), Name: name}
}

// ArrayTypeName is an element type name followed by [].
type ArrayTypeName struct {
	typeName
	Elem TypeName
}

// NewArrayTypeName creates an unresolved array type name.
func NewArrayTypeName(pos source.Position, elem TypeName) *ArrayTypeName {
	return &ArrayTypeName{typeName: newTypeName(pos), Elem: elem}
}
