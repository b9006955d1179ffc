package token

import "pyfmt/internal/source"

// TriviaKind classifies the non-significant text between tokens.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of consecutive newlines.
	TriviaNewline
	// TriviaLineComment is a '#' comment up to (not including) the newline.
	TriviaLineComment
	// TriviaLineJoin is a backslash immediately followed by a newline.
	TriviaLineJoin
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaLineJoin:
		return "LineJoin"
	}
	return "Unknown"
}

// Trivia is one piece of inter-token text. Text preserves the source
// bytes exactly, so trivia plus tokens reproduce the input verbatim.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
