// Package parser builds uC syntax trees from token streams. All syntax
// problems are reported through the diagnostics reporter at the syntax
// phase; the parser recovers at statement and declaration boundaries and
// always returns a tree, possibly with placeholder expressions where
// recovery kicked in.
package parser

import (
	"ucc/internal/ast"
	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/token"
)

type parser struct {
	file *source.File
	toks []token.Token
	pos  int
	rep  diag.Reporter
}

// Parse consumes the token stream of f and returns the program tree.
func Parse(f *source.File, toks []token.Token, rep diag.Reporter) *ast.Program {
	p := &parser{file: f, toks: toks, rep: rep}
	return p.parseProgram()
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) peek(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *parser) next() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// expect consumes a token of the given kind or reports the current token
// as unexpected without consuming it.
func (p *parser) expect(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.next(), true
	}
	p.errUnexpected()
	return p.cur(), false
}

func (p *parser) errUnexpected() {
	t := p.cur()
	if t.Kind == token.EOF {
		p.rep.Report(diag.PhaseSyntax, t.Pos, "unexpected end of file while parsing")
		return
	}
	diag.Reportf(p.rep, diag.PhaseSyntax, t.Pos,
		"syntax error: unexpected %s token '%s'", t.Kind.Category(), t.Text)
}

// syncTo skips tokens until one of the given kinds or EOF. A matching
// semicolon is consumed; a closing brace is left for the caller.
func (p *parser) syncTo(kinds ...token.Kind) {
	for !p.at(token.EOF) {
		k := p.cur().Kind
		for _, want := range kinds {
			if k == want {
				if k == token.Semi {
					p.next()
				}
				return
			}
		}
		p.next()
	}
}

func (p *parser) parseProgram() *ast.Program {
	start := p.cur().Pos
	var decls []ast.Decl
	for !p.at(token.EOF) {
		before := p.pos
		var d ast.Decl
		if p.at(token.KwStruct) {
			d = p.parseStructDecl()
		} else {
			d = p.parseFuncDecl()
		}
		if d != nil {
			decls = append(decls, d)
		}
		if p.pos == before {
			p.errUnexpected()
			p.next()
		}
	}
	return ast.NewProgram(start, decls)
}

func (p *parser) parseStructDecl() ast.Decl {
	start := p.next().Pos // struct
	name, ok := p.parseName()
	if !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	if _, ok := p.expect(token.LBrace); !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	var fields []*ast.FieldDecl
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		if fd := p.parseFieldDecl(); fd != nil {
			fields = append(fields, fd)
		}
		if p.pos == before {
			p.next()
		}
	}
	rbrace, _ := p.expect(token.RBrace)
	end := rbrace.Pos
	if p.at(token.Semi) {
		end = p.next().Pos
	} else {
		p.rep.Report(diag.PhaseSyntax, rbrace.Pos,
			"uC requires a semicolon after a struct declaration")
	}
	return ast.NewStructDecl(start.Cover(end), name, fields)
}

func (p *parser) parseFieldDecl() *ast.FieldDecl {
	typ, ok := p.parseTypeName()
	if !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	name, ok := p.parseName()
	if !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	semi, ok := p.expect(token.Semi)
	if !ok {
		p.syncTo(token.Semi, token.RBrace)
		return nil
	}
	return ast.NewFieldDecl(typ.Pos().Cover(semi.Pos), typ, name)
}

func (p *parser) parseFuncDecl() ast.Decl {
	ret, ok := p.parseTypeName()
	if !ok {
		p.next()
		p.syncTo(token.RBrace)
		p.next()
		return nil
	}
	name, ok := p.parseName()
	if !ok {
		p.syncTo(token.RBrace)
		p.next()
		return nil
	}
	if _, ok := p.expect(token.LParen); !ok {
		p.syncTo(token.RBrace)
		p.next()
		return nil
	}
	var params []*ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if len(params) > 0 {
			if _, ok := p.expect(token.Comma); !ok {
				break
			}
		}
		pt, ok := p.parseTypeName()
		if !ok {
			break
		}
		pn, ok := p.parseName()
		if !ok {
			break
		}
		params = append(params, ast.NewParam(pt.Pos().Cover(pn.Pos()), pt, pn))
	}
	if _, ok := p.expect(token.RParen); !ok {
		p.syncTo(token.RBrace)
		p.next()
		return nil
	}
	if !p.at(token.LBrace) {
		p.errUnexpected()
		p.syncTo(token.RBrace)
		p.next()
		return nil
	}
	body := p.parseBlock()
	return ast.NewFuncDecl(ret.Pos().Cover(body.Pos()), ret, name, params, body)
}

func (p *parser) parseName() (*ast.Name, bool) {
	t, ok := p.expect(token.Ident)
	if !ok {
		return nil, false
	}
	return ast.NewName(t.Pos, t.Text), true
}

// parseTypeName parses a type: a name followed by zero or more [] pairs.
func (p *parser) parseTypeName() (ast.TypeName, bool) {
	name, ok := p.parseName()
	if !ok {
		return nil, false
	}
	var tn ast.TypeName = ast.NewSimpleTypeName(name.Pos(), name)
	for p.at(token.LBracket) && p.peek(1).Kind == token.RBracket {
		p.next()
		rb := p.next()
		tn = ast.NewArrayTypeName(tn.Pos().Cover(rb.Pos), tn)
	}
	return tn, true
}

// atTypedDecl reports whether the tokens at the current position look like
// the start of a typed declaration: an identifier, optional [] pairs, then
// another identifier.
func (p *parser) atTypedDecl() bool {
	if !p.at(token.Ident) {
		return false
	}
	n := 1
	for p.peek(n).Kind == token.LBracket && p.peek(n+1).Kind == token.RBracket {
		n += 2
	}
	return p.peek(n).Kind == token.Ident
}
