package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous or unrecognized token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents any numeric literal (int, float, hex, binary).
	Number
	// String represents a string literal, including its letter prefix
	// and quotes. Triple-quoted strings are a single String token.
	String

	// Directive keywords: statements emitted verbatim by the rewriter.
	KwPass
	KwReturn
	KwRaise
	KwBreak
	KwContinue
	KwYield

	// Continuation keywords: a line ending in one of these is still
	// mid-expression.
	KwAnd
	KwOr
	KwNot
	KwIn
	KwIs

	// Remaining keywords.
	KwIf
	KwElif
	KwElse
	KwFor
	KwWhile
	KwDef
	KwClass
	KwTry
	KwExcept
	KwFinally
	KwWith
	KwLambda
	KwImport
	KwFrom
	KwAs
	KwGlobal
	KwNonlocal
	KwDel
	KwAssert
	KwAsync
	KwAwait
	KwMatch
	KwCase
	KwTrue
	KwFalse
	KwNone

	// Brackets.
	LParen   // (
	RParen   // )
	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }

	// Punctuation the rewriter dispatches on.
	Comma     // ,
	Colon     // :
	Semicolon // ;
	Dot       // .
	At        // @
	Backslash // \ (line continuation outside brackets)

	// Operators.
	Plus             // +
	Minus            // -
	Star             // *
	StarStar         // **
	Slash            // /
	SlashSlash       // //
	Percent          // %
	Amp              // &
	Pipe             // |
	Caret            // ^
	Tilde            // ~
	Shl              // <<
	Shr              // >>
	Lt               // <
	LtEq             // <=
	Gt               // >
	GtEq             // >=
	EqEq             // ==
	BangEq           // !=
	Assign           // =
	Arrow            // ->
	ColonAssign      // :=
	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	StarStarAssign   // **=
	SlashAssign      // /=
	SlashSlashAssign // //=
	PercentAssign    // %=
	AmpAssign        // &=
	PipeAssign       // |=
	CaretAssign      // ^=
	ShlAssign        // <<=
	ShrAssign        // >>=
	AtAssign         // @=
	Ellipsis         // ...
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	Number:           "Number",
	String:           "String",
	KwPass:           "KwPass",
	KwReturn:         "KwReturn",
	KwRaise:          "KwRaise",
	KwBreak:          "KwBreak",
	KwContinue:       "KwContinue",
	KwYield:          "KwYield",
	KwAnd:            "KwAnd",
	KwOr:             "KwOr",
	KwNot:            "KwNot",
	KwIn:             "KwIn",
	KwIs:             "KwIs",
	KwIf:             "KwIf",
	KwElif:           "KwElif",
	KwElse:           "KwElse",
	KwFor:            "KwFor",
	KwWhile:          "KwWhile",
	KwDef:            "KwDef",
	KwClass:          "KwClass",
	KwTry:            "KwTry",
	KwExcept:         "KwExcept",
	KwFinally:        "KwFinally",
	KwWith:           "KwWith",
	KwLambda:         "KwLambda",
	KwImport:         "KwImport",
	KwFrom:           "KwFrom",
	KwAs:             "KwAs",
	KwGlobal:         "KwGlobal",
	KwNonlocal:       "KwNonlocal",
	KwDel:            "KwDel",
	KwAssert:         "KwAssert",
	KwAsync:          "KwAsync",
	KwAwait:          "KwAwait",
	KwMatch:          "KwMatch",
	KwCase:           "KwCase",
	KwTrue:           "KwTrue",
	KwFalse:          "KwFalse",
	KwNone:           "KwNone",
	LParen:           "LParen",
	RParen:           "RParen",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	Comma:            "Comma",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Dot:              "Dot",
	At:               "At",
	Backslash:        "Backslash",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	StarStar:         "StarStar",
	Slash:            "Slash",
	SlashSlash:       "SlashSlash",
	Percent:          "Percent",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Shl:              "Shl",
	Shr:              "Shr",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	EqEq:             "EqEq",
	BangEq:           "BangEq",
	Assign:           "Assign",
	Arrow:            "Arrow",
	ColonAssign:      "ColonAssign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	StarStarAssign:   "StarStarAssign",
	SlashAssign:      "SlashAssign",
	SlashSlashAssign: "SlashSlashAssign",
	PercentAssign:    "PercentAssign",
	AmpAssign:        "AmpAssign",
	PipeAssign:       "PipeAssign",
	CaretAssign:      "CaretAssign",
	ShlAssign:        "ShlAssign",
	ShrAssign:        "ShrAssign",
	AtAssign:         "AtAssign",
	Ellipsis:         "Ellipsis",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsOpenBracket reports whether the kind opens a bracket pair.
func (k Kind) IsOpenBracket() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// IsCloseBracket reports whether the kind closes a bracket pair.
func (k Kind) IsCloseBracket() bool {
	return k == RParen || k == RBracket || k == RBrace
}

// MatchingBracket returns the opposite bracket kind, or Invalid for
// non-bracket kinds.
func (k Kind) MatchingBracket() Kind {
	switch k {
	case LParen:
		return RParen
	case RParen:
		return LParen
	case LBracket:
		return RBracket
	case RBracket:
		return LBracket
	case LBrace:
		return RBrace
	case RBrace:
		return LBrace
	default:
		return Invalid
	}
}

// IsDirective reports whether the kind is a flow-control directive
// keyword (pass/return/raise/break/continue/yield).
func (k Kind) IsDirective() bool {
	return k >= KwPass && k <= KwYield
}

// IsContinuation reports whether the kind is a boolean/membership
// keyword that cannot end a statement.
func (k Kind) IsContinuation() bool {
	return k >= KwAnd && k <= KwIs
}

// IsKeyword reports whether the kind is any keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwPass && k <= KwNone
}
