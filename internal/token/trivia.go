package token

import (
	"cnext/internal/source"
)

// TriviaKind classifies non-semantic text between tokens.
type TriviaKind uint8

const (
	// TriviaSpace covers runs of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline covers runs of newlines.
	TriviaNewline
	// TriviaLineComment covers a // comment up to the newline.
	TriviaLineComment
	// TriviaBlockComment covers a /* */ comment, nesting allowed.
	TriviaBlockComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}

// Trivia is one run of non-semantic text attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
