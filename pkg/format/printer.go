// Package format provides canonical formatting of xpres source.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/xpres/pkg/token"
)

// Printer accumulates formatted output.
type Printer struct {
	output      *bytes.Buffer
	atLineStart bool
}

func newPrinter() *Printer {
	return &Printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the formatted output, ending in exactly one newline.
// An empty program formats to the empty string.
func (p *Printer) String() string {
	s := strings.TrimRight(p.output.String(), "\n")
	if s == "" {
		return ""
	}
	return s + "\n"
}

func (p *Printer) write(s string) {
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// token prints tok, separated from the previous token on the line by a
// single space. Semicolons attach to the token before them.
func (p *Printer) token(tok token.Token) {
	if !p.atLineStart && tok.Type != token.SEMICOLON {
		p.space()
	}
	p.write(tok.Literal)
}
