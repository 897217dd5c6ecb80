package ast

import "ucc/internal/source"

type stmt struct {
	node
}

func (*stmt) stmtNode() {}

// Block is a braces-delimited statement sequence introducing a scope.
type Block struct {
	stmt
	Stmts []Stmt
}

// NewBlock creates a block.
func NewBlock(pos source.Position, stmts []Stmt) *Block {
	return &Block{stmt: stmt{node{pos: pos}}, Stmts: stmts}
}

// VarDef declares a variable with a mandatory initializer. It appears both
// as a statement (wrapped in VarDefStmt) and as the init clause of a for.
type VarDef struct {
	node
	DeclType TypeName
	Name     *Name
	Init     Expr
}

// NewVarDef creates a variable definition.
func NewVarDef(pos source.Position, typ TypeName, name *Name, init Expr) *VarDef {
	return &VarDef{node: node{pos: pos}, DeclType: typ, Name: name, Init: init}
}

// VarDefStmt is a variable definition used as a statement.
type VarDefStmt struct {
	stmt
	Def *VarDef
}

// NewVarDefStmt wraps a variable definition as a statement.
func NewVarDefStmt(def *VarDef) *VarDefStmt {
	return &VarDefStmt{stmt: stmt{node{pos: def.Pos()}}, Def: def}
}

// If is a conditional with an optional else branch.
type If struct {
	stmt
	Cond Expr
	Then *Block
	Else *Block
}

// NewIf creates an if statement. Else may be nil.
func NewIf(pos source.Position, cond Expr, then, els *Block) *If {
	return &If{stmt: stmt{node{pos: pos}}, Cond: cond, Then: then, Else: els}
}

// While is a pre-tested loop.
type While struct {
	stmt
	Cond Expr
	Body *Block
}

// NewWhile creates a while loop.
func NewWhile(pos source.Position, cond Expr, body *Block) *While {
	return &While{stmt: stmt{node{pos: pos}}, Cond: cond, Body: body}
}

// For is a three-clause loop. Init is either a *VarDef or an Expr; any of
// the three clauses may be nil.
type For struct {
	stmt
	Init   Node
	Cond   Expr
	Update Expr
	Body   *Block
}

// NewFor creates a for loop.
func NewFor(pos source.Position, init Node, cond, update Expr, body *Block) *For {
	return &For{stmt: stmt{node{pos: pos}}, Init: init, Cond: cond, Update: update, Body: body}
}

// Break exits the nearest enclosing loop.
type Break struct {
	stmt
}

// NewBreak creates a break statement.
func NewBreak(pos source.Position) *Break {
	return &Break{stmt: stmt{node{pos: pos}}}
}

// Continue restarts the nearest enclosing loop.
type Continue struct {
	stmt
}

// NewContinue creates a continue statement.
func NewContinue(pos source.Position) *Continue {
	return &Continue{stmt: stmt{node{pos: pos}}}
}

// Return exits the enclosing function. Value is nil for a bare return.
type Return struct {
	stmt
	Value Expr
}

// NewReturn creates a return statement.
func NewReturn(pos source.Position, value Expr) *Return {
	return &Return{stmt: stmt{node{pos: pos}}, Value: value}
}

// Assert checks a boolean condition at runtime. CondText preserves the
// source spelling of the condition for the runtime failure message; Msg is
// an optional string expression appended to it.
type Assert struct {
	stmt
	Cond     Expr
	CondText string
	Msg      Expr
}

// NewAssert creates an assert statement. Msg may be nil.
func NewAssert(pos source.Position, cond Expr, condText string, msg Expr) *Assert {
	return &Assert{stmt: stmt{node{pos: pos}}, Cond: cond, CondText: condText, Msg: msg}
}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	stmt
	X Expr
}

// NewExprStmt wraps an expression as a statement.
func NewExprStmt(x Expr) *ExprStmt {
	return &ExprStmt{stmt: stmt{node{pos: x.Pos()}}, X: x}
}
