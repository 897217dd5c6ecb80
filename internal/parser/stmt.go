package parser

import (
	"strconv"
	"strings"

	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/token"
)

func (p *parser) parseBlock() *ast.Block {
	lbrace := p.next() // {
	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		}
		if p.pos == before {
			p.errUnexpected()
			p.next()
		}
	}
	rbrace, _ := p.expect(token.RBrace)
	return ast.NewBlock(lbrace.Pos.Cover(rbrace.Pos), stmts)
}

func (p *parser) parseStmt() ast.Stmt {
	switch p.cur().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semi:
		p.rep.Report(diag.PhaseSyntax, p.next().Pos,
			"empty statements not allowed in uC")
		return nil
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwBreak:
		t := p.next()
		semi, ok := p.expect(token.Semi)
		if !ok {
			p.syncTo(token.Semi, token.RBrace)
			return nil
		}
		return ast.NewBreak(t.Pos.Cover(semi.Pos))
	case token.KwContinue:
		t := p.next()
		semi, ok := p.expect(token.Semi)
		if !ok {
			p.syncTo(token.Semi, token.RBrace)
			return nil
		}
		return ast.NewContinue(t.Pos.Cover(semi.Pos))
	case token.KwReturn:
		return p.parseReturn()
	case token.KwAssert:
		return p.parseAssert()
	}
	if p.atTypedDecl() {
		return p.parseVarDefStmt()
	}
	x := p.parseExpr()
	if _, ok := p.expect(token.Semi); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	return ast.NewExprStmt(x)
}

func (p *parser) parseVarDefStmt() ast.Stmt {
	def := p.parseVarDef()
	if def == nil {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	if _, ok := p.expect(token.Semi); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	return ast.NewVarDefStmt(def)
}

// parseVarDef parses "Type Name = Expr" without the trailing semicolon.
// A typed name with no initializer is a syntax error and yields nil.
func (p *parser) parseVarDef() *ast.VarDef {
	typ, ok := p.parseTypeName()
	if !ok {
		return nil
	}
	name, ok := p.parseName()
	if !ok {
		return nil
	}
	if !p.at(token.Assign) {
		if p.at(token.Semi) {
			p.rep.Report(diag.PhaseSyntax, typ.Pos().Cover(p.cur().Pos),
				"uC requires an initialization expression in a local-variable definition")
		} else {
			p.errUnexpected()
		}
		return nil
	}
	p.next() // =
	init := p.parseExpr()
	return ast.NewVarDef(typ.Pos().Cover(init.Pos()), typ, name, init)
}

// parseBody parses a statement that must syntactically be a block. A
// non-block body is reported and wrapped so analysis can proceed.
func (p *parser) parseBody(what string) *ast.Block {
	if p.at(token.LBrace) {
		return p.parseBlock()
	}
	pos := p.cur().Pos
	diag.Reportf(p.rep, diag.PhaseSyntax, pos,
		"uC requires a block as the body of %s", what)
	s := p.parseStmt()
	if s == nil {
		return ast.NewBlock(pos, nil)
	}
	return ast.NewBlock(s.Pos(), []ast.Stmt{s})
}

func (p *parser) parseIf() ast.Stmt {
	start := p.next().Pos // if
	if _, ok := p.expect(token.LParen); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	cond := p.parseExpr()
	if _, ok := p.expect(token.RParen); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	then := p.parseBody("a then clause")
	end := then.Pos()
	var els *ast.Block
	if p.at(token.KwElse) {
		p.next()
		if p.at(token.KwIf) {
			inner := p.parseIf()
			if inner != nil {
				els = ast.NewBlock(inner.Pos(), []ast.Stmt{inner})
			}
		} else {
			els = p.parseBody("an else clause")
		}
		if els != nil {
			end = els.Pos()
		}
	}
	return ast.NewIf(start.Cover(end), cond, then, els)
}

func (p *parser) parseWhile() ast.Stmt {
	start := p.next().Pos // while
	if _, ok := p.expect(token.LParen); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	cond := p.parseExpr()
	if _, ok := p.expect(token.RParen); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	body := p.parseBody("a while statement")
	return ast.NewWhile(start.Cover(body.Pos()), cond, body)
}

func (p *parser) parseFor() ast.Stmt {
	start := p.next().Pos // for
	if _, ok := p.expect(token.LParen); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	var init ast.Node
	if !p.at(token.Semi) {
		if p.atTypedDecl() {
			if def := p.parseVarDef(); def != nil {
				init = def
			}
		} else {
			init = p.parseExpr()
		}
	}
	if _, ok := p.expect(token.Semi); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	var cond ast.Expr
	if !p.at(token.Semi) {
		cond = p.parseExpr()
	}
	if _, ok := p.expect(token.Semi); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	var update ast.Expr
	if !p.at(token.RParen) {
		update = p.parseExpr()
	}
	if _, ok := p.expect(token.RParen); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	body := p.parseBody("a for statement")
	return ast.NewFor(start.Cover(body.Pos()), init, cond, update, body)
}

func (p *parser) parseReturn() ast.Stmt {
	start := p.next().Pos // return
	if p.at(token.Semi) {
		semi := p.next()
		return ast.NewReturn(start.Cover(semi.Pos), nil)
	}
	value := p.parseExpr()
	semi, ok := p.expect(token.Semi)
	if !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	return ast.NewReturn(start.Cover(semi.Pos), value)
}

func (p *parser) parseAssert() ast.Stmt {
	start := p.next().Pos // assert
	cond := p.parseExpr()
	condText := strconv.Quote(strings.TrimSpace(p.snippet(cond.Pos())))
	var msg ast.Expr
	if p.at(token.Colon) {
		p.next()
		msg = p.parseExpr()
	}
	semi, ok := p.expect(token.Semi)
	if !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	return ast.NewAssert(start.Cover(semi.Pos), cond, condText, msg)
}

// snippet returns the source text covered by pos.
func (p *parser) snippet(pos source.Position) string {
	if pos.Line == 0 {
		return ""
	}
	if pos.Line == pos.EndLine {
		line := p.file.Line(pos.Line)
		lo, hi := int(pos.Column)-1, int(pos.EndColumn)-1
		if lo < 0 || hi > len(line) || lo > hi {
			return ""
		}
		return line[lo:hi]
	}
	var b strings.Builder
	for n := pos.Line; n <= pos.EndLine; n++ {
		line := p.file.Line(n)
		switch n {
		case pos.Line:
			if int(pos.Column)-1 <= len(line) {
				b.WriteString(line[pos.Column-1:])
			}
		case pos.EndLine:
			b.WriteString("\n")
			if int(pos.EndColumn)-1 <= len(line) {
				b.WriteString(line[:pos.EndColumn-1])
			}
		default:
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}
