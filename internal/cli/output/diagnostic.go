package output

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/xpres/pkg/interp"
	"github.com/leapstack-labs/xpres/pkg/lexer"
	"github.com/leapstack-labs/xpres/pkg/token"
)

// SourceError ties a fatal error to the file it came from.
type SourceError struct {
	Path string
	Err  error
}

// location returns the source position and the "<kind> error: msg" tail,
// or false when the underlying error carries no position.
func (e *SourceError) location() (token.Position, string, bool) {
	var ie *interp.Error
	if errors.As(e.Err, &ie) {
		return ie.Pos, fmt.Sprintf("%s error: %s", ie.Kind, ie.Message), true
	}
	var le *lexer.Error
	if errors.As(e.Err, &le) {
		return le.Pos, "lexical error: no matched token at: " + le.Remainder, true
	}
	return token.Position{}, "", false
}

func (e *SourceError) Error() string {
	if pos, msg, ok := e.location(); ok {
		return fmt.Sprintf("%s:%d:%d: %s", e.Path, pos.Line, pos.Column, msg)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Diagnostic formats err for stderr, highlighting the source location.
func (s *Styles) Diagnostic(err error) string {
	var se *SourceError
	if errors.As(err, &se) {
		if pos, msg, ok := se.location(); ok {
			where := fmt.Sprintf("%s:%d:%d:", se.Path, pos.Line, pos.Column)
			return fmt.Sprintf("%s %s %s", s.Error.Render("Error:"), s.Pos.Render(where), msg)
		}
	}
	return fmt.Sprintf("%s %v", s.Error.Render("Error:"), err)
}
