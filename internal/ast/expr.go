package ast

import (
	"ucc/internal/source"
	"ucc/internal/token"
	"ucc/internal/types"
)

// IntLit is an integer literal. IsLong marks the l/L suffix.
type IntLit struct {
	expr
	Text   string
	Value  int64
	IsLong bool
}

// NewIntLit creates an integer literal.
func NewIntLit(pos source.Position, text string, value int64, isLong bool) *IntLit {
	return &IntLit{expr: newExpr(pos), Text: text, Value: value, IsLong: isLong}
}

// DoubleLit is a floating point literal.
type DoubleLit struct {
	expr
	Text  string
	Value float64
}

// NewDoubleLit creates a double literal.
func NewDoubleLit(pos source.Position, text string, value float64) *DoubleLit {
	return &DoubleLit{expr: newExpr(pos), Text: text, Value: value}
}

// StringLit is a string literal. Value holds the unquoted, unescaped text.
type StringLit struct {
	expr
	Value string
}

// NewStringLit creates a string literal.
func NewStringLit(pos source.Position, value string) *StringLit {
	return &StringLit{expr: newExpr(pos), Value: value}
}

// BoolLit is true or false.
type BoolLit struct {
	expr
	Value bool
}

// NewBoolLit creates a boolean literal.
func NewBoolLit(pos source.Position, value bool) *BoolLit {
	return &BoolLit{expr: newExpr(pos), Value: value}
}

// NullLit is the null literal.
type NullLit struct {
	expr
}

// NewNullLit creates a null literal.
func NewNullLit(pos source.Position) *NullLit {
	return &NullLit{expr: newExpr(pos)}
}

// NameExpr is a variable reference.
type NameExpr struct {
	expr
	Name *Name
}

// NewNameExpr creates a variable reference.
func NewNameExpr(pos source.Position, name *Name) *NameExpr {
	return &NameExpr{expr: newExpr(pos), Name: name}
}

// Call invokes a named function. The Fn attribute is bound during call
// resolution.
type Call struct {
	expr
	Name *Name
	Args []Expr
	fn   types.Function
}

// NewCall creates a call with an uncomputed function binding.
func NewCall(pos source.Position, name *Name, args []Expr) *Call {
	return &Call{expr: newExpr(pos), Name: name, Args: args, fn: types.UncomputedFn}
}

func (c *Call) Fn() types.Function      { return c.fn }
func (c *Call) SetFn(fn types.Function) { c.fn = fn }

// New allocates a struct or array value.
type New struct {
	expr
	AllocType TypeName
	Args      []Expr
}

// NewNew creates an allocation expression.
func NewNew(pos source.Position, typ TypeName, args []Expr) *New {
	return &New{expr: newExpr(pos), AllocType: typ, Args: args}
}

// FieldAccess selects a field or the array length pseudo-field.
type FieldAccess struct {
	expr
	Recv Expr
	Name *Name
}

// NewFieldAccess creates a field access.
func NewFieldAccess(pos source.Position, recv Expr, name *Name) *FieldAccess {
	return &FieldAccess{expr: newExpr(pos), Recv: recv, Name: name}
}

// Index subscripts an array.
type Index struct {
	expr
	Recv Expr
	Sub  Expr
}

// NewIndex creates an index expression.
func NewIndex(pos source.Position, recv, sub Expr) *Index {
	return &Index{expr: newExpr(pos), Recv: recv, Sub: sub}
}

// Unary is a prefix operator application.
type Unary struct {
	expr
	Op token.Kind
	X  Expr
}

// NewUnary creates a unary expression.
func NewUnary(pos source.Position, op token.Kind, x Expr) *Unary {
	return &Unary{expr: newExpr(pos), Op: op, X: x}
}

// Binary is an infix operator application, including assignment and the
// push/pop array operators.
type Binary struct {
	expr
	Op  token.Kind
	LHS Expr
	RHS Expr
}

// NewBinary creates a binary expression.
func NewBinary(pos source.Position, op token.Kind, lhs, rhs Expr) *Binary {
	return &Binary{expr: newExpr(pos), Op: op, LHS: lhs, RHS: rhs}
}

// Bad is a placeholder for an expression that failed to parse. It only
// appears in trees that already carry syntax errors.
type Bad struct {
	expr
}

// NewBad creates a placeholder expression.
func NewBad(pos source.Position) *Bad {
	return &Bad{expr: newExpr(pos)}
}

// IsLiteral reports whether e is a literal expression.
func IsLiteral(e Expr) bool {
	switch e.(type) {
	case *IntLit, *DoubleLit, *StringLit, *BoolLit, *NullLit:
		return true
	}
	return false
}

// IsLValue reports whether e may appear on the left of an assignment or as
// the target of a pop. Only field accesses and array indexes qualify.
func IsLValue(e Expr) bool {
	switch e.(type) {
	case *FieldAccess, *Index:
		return true
	}
	return false
}
