// Package interp executes xpres programs in a single pass.
//
// Parsing and evaluation are fused: every statement is executed as soon as
// it is recognized, so no syntax tree is ever built.
//
// # Grammar
//
//	program    → (statement ';')* EOF
//	statement  → 'var' IDENT
//	           | IDENT '=' expr
//	           | 'print' expr
//	expr       → IDENT | INT
//
// # Usage
//
//	err := interp.Run("var a; a = 5; print a;", os.Stdout)
//
// Any error aborts the run; values printed before it stay printed.
package interp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/leapstack-labs/xpres/pkg/lexer"
	"github.com/leapstack-labs/xpres/pkg/symtab"
	"github.com/leapstack-labs/xpres/pkg/token"
)

// Interpreter runs one source text against a symbol table.
type Interpreter struct {
	lexer   *lexer.Lexer
	symbols *symtab.Table
	sink    Sink
	logger  *slog.Logger

	tok        token.Token // lookahead
	statements int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithSink sets the destination of print statements. The default discards.
func WithSink(s Sink) Option {
	return func(in *Interpreter) { in.sink = s }
}

// WithSymbols runs against an existing table, so variables declared by an
// earlier run stay visible.
func WithSymbols(t *symtab.Table) Option {
	return func(in *Interpreter) { in.symbols = t }
}

// WithLogger sets the structured logger (optional, uses discard if nil).
func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// New creates an interpreter for src.
func New(src string, opts ...Option) *Interpreter {
	in := &Interpreter{lexer: lexer.New(src)}
	for _, opt := range opts {
		opt(in)
	}
	if in.symbols == nil {
		in.symbols = symtab.New()
	}
	if in.sink == nil {
		in.sink = Discard
	}
	if in.logger == nil {
		in.logger = slog.New(slog.DiscardHandler)
	}
	return in
}

// Run executes src, writing printed values to w.
func Run(src string, w io.Writer) error {
	return New(src, WithSink(NewWriterSink(w))).Run()
}

// Symbols returns the table the interpreter runs against.
func (in *Interpreter) Symbols() *symtab.Table {
	return in.symbols
}

// Statements returns the number of statements executed so far.
func (in *Interpreter) Statements() int {
	return in.statements
}

// Run executes the program until end of input or the first error.
func (in *Interpreter) Run() error {
	if err := in.next(); err != nil {
		return err
	}
	for in.tok.Type != token.EOF {
		if err := in.statement(); err != nil {
			return err
		}
		if err := in.next(); err != nil {
			return err
		}
		if in.tok.Type != token.SEMICOLON {
			return syntaxError(in.tok, errSemicolonExpected)
		}
		in.statements++
		if err := in.next(); err != nil {
			return err
		}
	}
	in.logger.Debug("program finished", "statements", in.statements, "variables", in.symbols.Len())
	return nil
}

// next advances the lookahead.
func (in *Interpreter) next() error {
	tok, err := in.lexer.NextToken()
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			return &Error{
				Kind:    KindLexical,
				Pos:     lexErr.Pos,
				Message: "no matched token at: " + lexErr.Remainder,
				Err:     err,
			}
		}
		return err
	}
	in.tok = tok
	return nil
}

// statement dispatches on the first token of a statement.
func (in *Interpreter) statement() error {
	switch in.tok.Type {
	case token.VAR:
		return in.declaration()
	case token.IDENT:
		return in.assignment()
	case token.PRINT:
		return in.printStmt()
	default:
		return syntaxError(in.tok, errUnexpectedToken)
	}
}

// declaration: 'var' IDENT
func (in *Interpreter) declaration() error {
	if err := in.next(); err != nil {
		return err
	}
	if in.tok.Type != token.IDENT {
		return syntaxError(in.tok, errIdentifierExpected)
	}
	if _, err := in.symbols.Declare(in.tok.Literal); err != nil {
		return semanticError(in.tok, err)
	}
	in.logger.Debug("declared variable", "name", in.tok.Literal, "pos", in.tok.Pos.String())
	return nil
}

// assignment: IDENT '=' expr
func (in *Interpreter) assignment() error {
	target := in.tok
	cell, err := in.symbols.Lookup(target.Literal)
	if err != nil {
		return semanticError(target, err)
	}
	if err := in.next(); err != nil {
		return err
	}
	if in.tok.Type != token.EQ {
		return syntaxError(in.tok, errAssignExpected)
	}
	if err := in.next(); err != nil {
		return err
	}
	v, err := in.expression()
	if err != nil {
		return err
	}
	cell.Value = v
	in.logger.Debug("assigned variable", "name", cell.Name, "value", v, "pos", target.Pos.String())
	return nil
}

// print: 'print' expr
func (in *Interpreter) printStmt() error {
	pos := in.tok.Pos
	if err := in.next(); err != nil {
		return err
	}
	v, err := in.expression()
	if err != nil {
		return err
	}
	if err := in.sink.Emit(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	in.logger.Debug("printed value", "value", v, "pos", pos.String())
	return nil
}

// expression evaluates the lookahead token as IDENT or INT.
func (in *Interpreter) expression() (int64, error) {
	switch in.tok.Type {
	case token.IDENT:
		cell, err := in.symbols.Lookup(in.tok.Literal)
		if err != nil {
			return 0, semanticError(in.tok, err)
		}
		return cell.Value, nil
	case token.INT:
		v, err := strconv.ParseInt(in.tok.Literal, 10, 64)
		if err != nil {
			// The lexer only produces digit runs, so range is the only failure.
			return 0, semanticError(in.tok, fmt.Errorf("%w: %s", ErrIntegerOverflow, in.tok.Literal))
		}
		return v, nil
	default:
		return 0, syntaxError(in.tok, errInvalidExpression)
	}
}
