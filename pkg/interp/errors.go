package interp

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/xpres/pkg/token"
)

// Kind classifies a fatal interpreter error.
type Kind int

const (
	// KindLexical means no token matched at the cursor.
	KindLexical Kind = iota + 1
	// KindSyntax means a token of the wrong kind appeared where the grammar
	// requires a specific one.
	KindSyntax
	// KindSemantic covers redefined and undefined variables and integer
	// literals out of range.
	KindSemantic
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindSyntax:
		return "syntax"
	case KindSemantic:
		return "semantic"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrIntegerOverflow is wrapped by semantic errors for literals that do not
// fit in an int64.
var ErrIntegerOverflow = errors.New("integer literal out of range")

// Error is the single error type produced by a run.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Message string
	Err     error // underlying cause, if any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error at line %d, column %d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return 0
}

// Common error messages
const (
	errSemicolonExpected  = "semicolon expected, got %s"
	errIdentifierExpected = "identifier expected after 'var', got %s"
	errAssignExpected     = "assignment operator expected, got %s"
	errInvalidExpression  = "invalid expression: %s"
	errUnexpectedToken    = "unexpected token %s"
)

func syntaxError(tok token.Token, format string) *Error {
	return &Error{
		Kind:    KindSyntax,
		Pos:     tok.Pos,
		Message: fmt.Sprintf(format, tok),
	}
}

func semanticError(tok token.Token, err error) *Error {
	return &Error{
		Kind:    KindSemantic,
		Pos:     tok.Pos,
		Message: err.Error(),
		Err:     err,
	}
}
