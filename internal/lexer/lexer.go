package lexer

import (
	"ucc/internal/diag"
	"ucc/internal/source"
	"ucc/internal/token"
)

// Lexer scans uC source text into tokens. Lexical problems are reported
// through the diagnostics reporter at the syntax phase; the lexer itself
// never fails, it skips what it cannot recognize.
type Lexer struct {
	src      []byte
	reporter diag.Reporter

	off  int
	line uint32
	col  uint32
}

// New creates a lexer over the given file content.
func New(f *source.File, r diag.Reporter) *Lexer {
	return &Lexer{src: f.Content, reporter: r, line: 1, col: 1}
}

// Tokens scans the whole input and returns all tokens, ending with EOF.
func (l *Lexer) Tokens() []token.Token {
	var toks []token.Token
	for {
		t := l.next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) peek() byte {
	if l.off >= len(l.src) {
		return 0
	}
	return l.src[l.off]
}

func (l *Lexer) peekAt(n int) byte {
	if l.off+n >= len(l.src) {
		return 0
	}
	return l.src[l.off+n]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.off]
	l.off++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) next() token.Token {
	l.skipTrivia()
	startLine, startCol, startOff := l.line, l.col, l.off
	if l.off >= len(l.src) {
		return token.Token{Kind: token.EOF, Pos: source.At(l.line, l.col)}
	}

	ch := l.peek()
	switch {
	case isLetter(ch):
		for l.off < len(l.src) && isIdentChar(l.peek()) {
			l.advance()
		}
		text := string(l.src[startOff:l.off])
		return l.make(token.Lookup(text), text, startLine, startCol)
	case isDigit(ch):
		return l.scanNumber(startLine, startCol, startOff)
	case ch == '.' && isDigit(l.peekAt(1)):
		return l.scanNumber(startLine, startCol, startOff)
	case ch == '"':
		return l.scanString(startLine, startCol, startOff)
	}

	kind := l.scanOperator()
	if kind == token.Illegal {
		l.advance()
		diag.Reportf(l.reporter, diag.PhaseSyntax,
			source.Span(startLine, startCol, l.line, l.col),
			"unrecognized character %q while lexing", string(ch))
		return l.next()
	}
	return l.make(kind, string(l.src[startOff:l.off]), startLine, startCol)
}

func (l *Lexer) make(kind token.Kind, text string, line, col uint32) token.Token {
	return token.Token{
		Kind: kind,
		Text: text,
		Pos:  source.Span(line, col, l.line, l.col),
	}
}

func (l *Lexer) skipTrivia() {
	for l.off < len(l.src) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			for l.off < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		case ch == '/' && l.peekAt(1) == '*':
			line, col := l.line, l.col
			l.advance()
			l.advance()
			closed := false
			for l.off < len(l.src) {
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				l.reporter.Report(diag.PhaseSyntax, source.At(line, col),
					"unterminated block comment")
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanNumber(startLine, startCol uint32, startOff int) token.Token {
	isDouble := false
	for l.off < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		isDouble = true
		l.advance()
		for l.off < len(l.src) && isDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		// exponent only with a following digit (or sign and digit)
		n := 1
		if l.peekAt(1) == '+' || l.peekAt(1) == '-' {
			n = 2
		}
		if isDigit(l.peekAt(n)) {
			isDouble = true
			for n > 0 {
				l.advance()
				n--
			}
			for l.off < len(l.src) && isDigit(l.peek()) {
				l.advance()
			}
		}
	}
	kind := token.DoubleLit
	if !isDouble {
		kind = token.IntLit
		if l.peek() == 'l' || l.peek() == 'L' {
			l.advance()
		}
	}
	return l.make(kind, string(l.src[startOff:l.off]), startLine, startCol)
}

func (l *Lexer) scanString(startLine, startCol uint32, startOff int) token.Token {
	l.advance() // opening quote
	for l.off < len(l.src) {
		ch := l.peek()
		if ch == '\n' {
			break
		}
		if ch == '\\' && l.off+1 < len(l.src) {
			l.advance()
			l.advance()
			continue
		}
		l.advance()
		if ch == '"' {
			return l.make(token.StringLit, string(l.src[startOff:l.off]), startLine, startCol)
		}
	}
	l.reporter.Report(diag.PhaseSyntax,
		source.Span(startLine, startCol, l.line, l.col),
		"unterminated string literal")
	return l.make(token.StringLit, string(l.src[startOff:l.off]), startLine, startCol)
}

func (l *Lexer) scanOperator() token.Kind {
	two := ""
	if l.off+1 < len(l.src) {
		two = string(l.src[l.off : l.off+2])
	}
	switch two {
	case "||":
		l.advance()
		l.advance()
		return token.LOr
	case "&&":
		l.advance()
		l.advance()
		return token.LAnd
	case "<=":
		l.advance()
		l.advance()
		return token.Le
	case ">=":
		l.advance()
		l.advance()
		return token.Ge
	case "==":
		l.advance()
		l.advance()
		return token.Eq
	case "!=":
		l.advance()
		l.advance()
		return token.Ne
	case "<<":
		l.advance()
		l.advance()
		return token.Push
	case ">>":
		l.advance()
		l.advance()
		return token.Pop
	case "++":
		l.advance()
		l.advance()
		return token.Incr
	case "--":
		l.advance()
		l.advance()
		return token.Decr
	}

	var kind token.Kind
	switch l.peek() {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '!':
		kind = token.Not
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '=':
		kind = token.Assign
	case '#':
		kind = token.Hash
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Period
	case ';':
		kind = token.Semi
	case ':':
		kind = token.Colon
	default:
		return token.Illegal
	}
	l.advance()
	return kind
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}
