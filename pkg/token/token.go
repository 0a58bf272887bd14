// Package token defines the lexical tokens of the xpres language.
//
// The token set is closed: two punctuation marks, two keywords, identifiers,
// integer literals and the end-of-input marker.
package token

import "fmt"

// TokenType represents the kind of a lexical token.
//
//nolint:revive // token.TokenType mirrors the parser packages that consume it
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota

	// Punctuation
	SEMICOLON // ;
	EQ        // =

	// Keywords
	VAR
	PRINT

	// Literals
	IDENT // lowercase identifier
	INT   // decimal integer
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:       "EOF",
	SEMICOLON: ";",
	EQ:        "=",
	VAR:       "var",
	PRINT:     "print",
	IDENT:     "IDENT",
	INT:       "INT",
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t == VAR || t == PRINT
}

// IsLiteral returns true for token types that carry user text.
func IsLiteral(t TokenType) bool {
	return t == IDENT || t == INT
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// String renders the token the way diagnostics quote it: literals show
// their text, EOF shows "end of input".
func (t Token) String() string {
	switch {
	case t.Type == EOF:
		return "end of input"
	case IsLiteral(t.Type):
		return fmt.Sprintf("%s(%q)", t.Type, t.Literal)
	default:
		return fmt.Sprintf("%q", t.Literal)
	}
}
