// Package lexer tokenizes xpres source text on demand.
package lexer

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/xpres/pkg/token"
)

// Keyword spellings. They are matched as plain prefixes, so "vary" scans as
// the keyword var followed by the identifier y.
const (
	kwVar   = "var"
	kwPrint = "print"
)

// Error reports that no token matches at the cursor.
type Error struct {
	Pos       token.Position
	Remainder string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: no matched token at: %s", e.Pos.Line, e.Pos.Column, e.Remainder)
}

// Lexer scans xpres source one token at a time.
type Lexer struct {
	input string
	pos   int // current byte offset
	line  int // current line number (1-based)
	col   int // current column number (1-based)
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// currentPos returns the cursor position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// advance consumes n bytes, tracking line breaks.
func (l *Lexer) advance(n int) {
	for i := 0; i < n && l.pos < len(l.input); i++ {
		if l.input[l.pos] == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		l.pos++
	}
}

// NextToken consumes and returns the next token. Once the input is
// exhausted every call returns EOF. On error the cursor is left where it was.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()

	pos := l.currentPos()
	if l.pos >= len(l.input) {
		return token.Token{Type: token.EOF, Pos: pos}, nil
	}

	rest := l.input[l.pos:]
	switch {
	case rest[0] == ';':
		return l.emit(token.SEMICOLON, ";", pos), nil
	case rest[0] == '=':
		return l.emit(token.EQ, "=", pos), nil
	case strings.HasPrefix(rest, kwVar):
		return l.emit(token.VAR, kwVar, pos), nil
	case strings.HasPrefix(rest, kwPrint):
		return l.emit(token.PRINT, kwPrint, pos), nil
	}

	if n := span(rest, isLower); n > 0 {
		return l.emit(token.IDENT, rest[:n], pos), nil
	}
	if n := span(rest, isDigit); n > 0 {
		return l.emit(token.INT, rest[:n], pos), nil
	}

	return token.Token{}, &Error{Pos: pos, Remainder: rest}
}

// emit consumes literal and builds its token.
func (l *Lexer) emit(t token.TokenType, literal string, pos token.Position) token.Token {
	l.advance(len(literal))
	return token.Token{Type: t, Literal: literal, Pos: pos}
}

// skipWhitespace skips a maximal run of spaces, tabs and line breaks.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.advance(1)
		default:
			return
		}
	}
}

// span returns the length of the longest prefix of s whose bytes satisfy f.
func span(s string, f func(byte) bool) int {
	n := 0
	for n < len(s) && f(s[n]) {
		n++
	}
	return n
}

func isLower(ch byte) bool {
	return ch >= 'a' && ch <= 'z'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize returns all tokens from the input, ending with EOF.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}
