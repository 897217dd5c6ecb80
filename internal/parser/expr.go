package parser

import (
	"math"
	"strconv"
	"strings"

	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/token"
)

// binLevel describes one tier of the binary operator precedence ladder,
// from loosest to tightest binding.
type binLevel struct {
	kinds      []token.Kind
	rightAssoc bool
	nonAssoc   bool
}

var binLevels = []binLevel{
	{kinds: []token.Kind{token.Push, token.Pop}},
	{kinds: []token.Kind{token.Assign}, rightAssoc: true},
	{kinds: []token.Kind{token.LOr}},
	{kinds: []token.Kind{token.LAnd}},
	{kinds: []token.Kind{token.Eq, token.Ne}, nonAssoc: true},
	{kinds: []token.Kind{token.Lt, token.Le, token.Gt, token.Ge}, nonAssoc: true},
	{kinds: []token.Kind{token.Plus, token.Minus}},
	{kinds: []token.Kind{token.Star, token.Slash, token.Percent}},
}

func (p *parser) parseExpr() ast.Expr {
	return p.parseBinary(0)
}

func (p *parser) atLevel(l binLevel) bool {
	k := p.cur().Kind
	for _, want := range l.kinds {
		if k == want {
			return true
		}
	}
	return false
}

func (p *parser) parseBinary(level int) ast.Expr {
	if level == len(binLevels) {
		return p.parseUnary()
	}
	l := binLevels[level]
	lhs := p.parseBinary(level + 1)
	if l.rightAssoc {
		if p.atLevel(l) {
			op := p.next().Kind
			rhs := p.parseBinary(level)
			return ast.NewBinary(lhs.Pos().Cover(rhs.Pos()), op, lhs, rhs)
		}
		return lhs
	}
	for p.atLevel(l) {
		op := p.next().Kind
		rhs := p.parseBinary(level + 1)
		lhs = ast.NewBinary(lhs.Pos().Cover(rhs.Pos()), op, lhs, rhs)
		if l.nonAssoc {
			// chained comparisons are not valid uC; the leftover
			// operator surfaces as an unexpected token
			break
		}
	}
	return lhs
}

func (p *parser) parseUnary() ast.Expr {
	switch p.cur().Kind {
	case token.Plus, token.Minus, token.Not, token.Incr, token.Decr, token.Hash:
		op := p.next()
		x := p.parseUnary()
		return ast.NewUnary(op.Pos.Cover(x.Pos()), op.Kind, x)
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.Period:
			p.next()
			name, ok := p.parseName()
			if !ok {
				return x
			}
			x = ast.NewFieldAccess(x.Pos().Cover(name.Pos()), x, name)
		case token.LBracket:
			p.next()
			sub := p.parseExpr()
			rb, ok := p.expect(token.RBracket)
			if !ok {
				return ast.NewIndex(x.Pos().Cover(sub.Pos()), x, sub)
			}
			x = ast.NewIndex(x.Pos().Cover(rb.Pos), x, sub)
		default:
			return x
		}
	}
}

func (p *parser) parsePrimary() ast.Expr {
	t := p.cur()
	switch t.Kind {
	case token.IntLit:
		p.next()
		return p.intLit(t)
	case token.DoubleLit:
		p.next()
		v, _ := strconv.ParseFloat(t.Text, 64)
		return ast.NewDoubleLit(t.Pos, t.Text, v)
	case token.StringLit:
		p.next()
		return ast.NewStringLit(t.Pos, unquote(t.Text))
	case token.KwTrue:
		p.next()
		return ast.NewBoolLit(t.Pos, true)
	case token.KwFalse:
		p.next()
		return ast.NewBoolLit(t.Pos, false)
	case token.KwNull:
		p.next()
		return ast.NewNullLit(t.Pos)
	case token.KwNew:
		return p.parseNew()
	case token.LParen:
		p.next()
		x := p.parseExpr()
		p.expect(token.RParen)
		return x
	case token.Ident:
		name, _ := p.parseName()
		if p.at(token.LParen) {
			p.next()
			args := p.parseArgs(token.RParen)
			rp, ok := p.expect(token.RParen)
			end := rp.Pos
			if !ok {
				end = name.Pos()
			}
			return ast.NewCall(name.Pos().Cover(end), name, args)
		}
		return ast.NewNameExpr(name.Pos(), name)
	}
	p.errUnexpected()
	bad := ast.NewBad(t.Pos)
	p.next()
	return bad
}

// parseNew parses "new Type(args)" or "new Type{args}".
func (p *parser) parseNew() ast.Expr {
	start := p.next().Pos // new
	typ, ok := p.parseTypeName()
	if !ok {
		p.syncTo(token.Semi, token.RBrace)
		return ast.NewBad(start)
	}
	var closer token.Kind
	switch p.cur().Kind {
	case token.LParen:
		closer = token.RParen
	case token.LBrace:
		closer = token.RBrace
	default:
		p.errUnexpected()
		return ast.NewBad(start.Cover(typ.Pos()))
	}
	p.next()
	args := p.parseArgs(closer)
	end, ok := p.expect(closer)
	if !ok {
		return ast.NewNew(start.Cover(typ.Pos()), typ, args)
	}
	return ast.NewNew(start.Cover(end.Pos), typ, args)
}

func (p *parser) parseArgs(closer token.Kind) []ast.Expr {
	var args []ast.Expr
	for !p.at(closer) && !p.at(token.EOF) {
		if len(args) > 0 {
			if _, ok := p.expect(token.Comma); !ok {
				return args
			}
		}
		args = append(args, p.parseExpr())
	}
	return args
}

// intLit builds an integer literal node, checking the value against the
// inclusive range [0, 2^31-1], or [0, 2^63-1] with an l/L suffix.
func (p *parser) intLit(t token.Token) ast.Expr {
	text := t.Text
	digits := text
	isLong := false
	if strings.HasSuffix(digits, "l") || strings.HasSuffix(digits, "L") {
		digits = digits[:len(digits)-1]
		isLong = true
	}
	limit := uint64(math.MaxInt32)
	if isLong {
		limit = math.MaxInt64
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || v > limit {
		diag.Reportf(p.rep, diag.PhaseSyntax, t.Pos,
			"syntax error: integer literal %s outside of valid range [0, %d]",
			text, limit)
		v = 0
	}
	return ast.NewIntLit(t.Pos, text, int64(v), isLong)
}

// unquote strips the surrounding quotes of a string literal and expands
// its escape sequences. Malformed literals were already reported while
// lexing; the raw interior is kept in that case.
func unquote(text string) string {
	if s, err := strconv.Unquote(text); err == nil {
		return s
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	if len(text) >= 1 && text[0] == '"' {
		return text[1:]
	}
	return text
}
