package format

import (
	"github.com/leapstack-labs/xpres/pkg/lexer"
	"github.com/leapstack-labs/xpres/pkg/token"
)

// Format prints toks one statement per line. Tokens inside a statement are
// separated by single spaces, and runs of blank lines between statements
// collapse to one. The output tokenizes to the same sequence as toks.
func Format(toks []token.Token) string {
	p := newPrinter()
	lastLine := 0

	for _, tok := range toks {
		if tok.Type == token.EOF {
			break
		}
		// Keep at most one blank line between statements
		if p.atLineStart && lastLine > 0 && tok.Pos.Line > lastLine+1 {
			p.writeln()
		}
		p.token(tok)
		if tok.Type == token.SEMICOLON {
			p.writeln()
			lastLine = tok.Pos.Line
		}
	}

	return p.String()
}

// Source tokenizes src and formats it. Lexical errors are returned as
// *lexer.Error and nothing is formatted.
func Source(src string) (string, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return "", err
	}
	return Format(toks), nil
}
