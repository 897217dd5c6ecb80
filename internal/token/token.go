package token

import "ucc/internal/source"

// Token is a single lexeme with its source position. Text holds the raw
// source text of the token, including quotes and literal suffixes.
type Token struct {
	Kind Kind
	Text string
	Pos  source.Position
}

func (t Token) String() string {
	return t.Text
}

var keywords = map[string]Kind{
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"struct":   KwStruct,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"assert":   KwAssert,
	"true":     KwTrue,
	"false":    KwFalse,
	"new":      KwNew,
	"null":     KwNull,
}

// Lookup maps an identifier to its keyword kind, or Ident.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Ident
}
