package token

var keywords = map[string]Kind{
	"pass":     KwPass,
	"return":   KwReturn,
	"raise":    KwRaise,
	"break":    KwBreak,
	"continue": KwContinue,
	"yield":    KwYield,
	"and":      KwAnd,
	"or":       KwOr,
	"not":      KwNot,
	"in":       KwIn,
	"is":       KwIs,
	"if":       KwIf,
	"elif":     KwElif,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"def":      KwDef,
	"class":    KwClass,
	"try":      KwTry,
	"except":   KwExcept,
	"finally":  KwFinally,
	"with":     KwWith,
	"lambda":   KwLambda,
	"import":   KwImport,
	"from":     KwFrom,
	"as":       KwAs,
	"global":   KwGlobal,
	"nonlocal": KwNonlocal,
	"del":      KwDel,
	"assert":   KwAssert,
	"async":    KwAsync,
	"await":    KwAwait,
	"match":    KwMatch,
	"case":     KwCase,
	"True":     KwTrue,
	"False":    KwFalse,
	"None":     KwNone,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// Keywords are case sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
