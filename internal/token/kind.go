package token

// Kind enumerates the lexical token kinds of the uC language.
type Kind uint8

const (
	EOF Kind = iota
	Illegal

	// Literals
	Ident
	IntLit
	DoubleLit
	StringLit

	// Keywords
	KwIf
	KwElse
	KwWhile
	KwFor
	KwStruct
	KwBreak
	KwContinue
	KwReturn
	KwAssert
	KwTrue
	KwFalse
	KwNew
	KwNull

	// Operators
	Plus
	Minus
	Star
	Slash
	Percent
	LOr
	LAnd
	Not
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	Push
	Pop
	Assign
	Incr
	Decr
	Hash

	// Delimiters
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Period
	Semi
	Colon
)

var kindNames = map[Kind]string{
	EOF:        "end of file",
	Illegal:    "illegal",
	Ident:      "identifier",
	IntLit:     "integer",
	DoubleLit:  "double",
	StringLit:  "string",
	KwIf:       "if",
	KwElse:     "else",
	KwWhile:    "while",
	KwFor:      "for",
	KwStruct:   "struct",
	KwBreak:    "break",
	KwContinue: "continue",
	KwReturn:   "return",
	KwAssert:   "assert",
	KwTrue:     "true",
	KwFalse:    "false",
	KwNew:      "new",
	KwNull:     "null",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	LOr:        "||",
	LAnd:       "&&",
	Not:        "!",
	Lt:         "<",
	Le:         "<=",
	Gt:         ">",
	Ge:         ">=",
	Eq:         "==",
	Ne:         "!=",
	Push:       "<<",
	Pop:        ">>",
	Assign:     "=",
	Incr:       "++",
	Decr:       "--",
	Hash:       "#",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	LBrace:     "{",
	RBrace:     "}",
	Comma:      ",",
	Period:     ".",
	Semi:       ";",
	Colon:      ":",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Category names the lexical class of a kind for error messages.
func (k Kind) Category() string {
	switch {
	case k == Ident:
		return "identifier"
	case k == IntLit:
		return "integer"
	case k == DoubleLit:
		return "double"
	case k == StringLit:
		return "string"
	case k >= KwIf && k <= KwNull:
		return "keyword"
	case k >= Plus && k <= Hash:
		return "operator"
	case k >= LParen && k <= Colon:
		return "delimiter"
	default:
		return "unknown"
	}
}

// IsArith reports whether the kind is a binary arithmetic operator.
func (k Kind) IsArith() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent:
		return true
	}
	return false
}

// IsLogic reports whether the kind is a binary logic operator.
func (k Kind) IsLogic() bool {
	return k == LOr || k == LAnd
}

// IsComparison reports whether the kind is an ordering comparison.
func (k Kind) IsComparison() bool {
	switch k {
	case Lt, Le, Gt, Ge:
		return true
	}
	return false
}

// IsEquality reports whether the kind is an equality test.
func (k Kind) IsEquality() bool {
	return k == Eq || k == Ne
}
