package commands

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/leapstack-labs/xpres/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestSession(t *testing.T) (*session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	s := newSession(&out, &errOut, output.NewStyles(&errOut, output.ColorNever), testutil.NewTestLogger(t))
	return s, &out, &errOut
}

func TestSessionExecutesStatements(t *testing.T) {
	s, out, errOut := newTestSession(t)

	assert.False(t, s.handle("var x;"))
	assert.False(t, s.handle("x = 5;"))
	assert.False(t, s.handle("print x;"))

	assert.Equal(t, "5\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestSessionMultiLine(t *testing.T) {
	s, out, _ := newTestSession(t)

	assert.False(t, s.handle("var"))
	assert.Equal(t, replContPrompt, s.prompt())
	assert.False(t, s.handle("a"))
	assert.False(t, s.handle(";  print"))
	assert.Equal(t, replContPrompt, s.prompt())
	assert.False(t, s.handle("a;"))

	assert.Equal(t, replPrompt, s.prompt())
	assert.Equal(t, "0\n", out.String())
}

func TestSessionErrorKeepsState(t *testing.T) {
	s, out, errOut := newTestSession(t)

	s.handle("var x; x = 9;")
	s.handle("print x; print y;")
	assert.Equal(t, "9\n", out.String())
	assert.Contains(t, errOut.String(), "<stdin>:2:16: semantic error: undefined variable: y")

	// Redeclaring in a later input is still an error.
	s.handle("var x;")
	assert.Contains(t, errOut.String(), "redefined variable: x")

	s.handle("print x;")
	assert.Equal(t, "9\n9\n", out.String())
}

func TestSessionDotCommands(t *testing.T) {
	s, out, errOut := newTestSession(t)

	s.handle(".vars")
	assert.Contains(t, out.String(), "No variables declared.")

	s.handle("var b; var a; a = 3;")
	out.Reset()
	s.handle(".vars")
	assert.Contains(t, out.String(), "NAME")
	assert.Regexp(t, `(?s)a\s*│\s*3.*b\s*│\s*0`, out.String())

	out.Reset()
	s.handle(".help")
	assert.Contains(t, out.String(), ".reset")

	s.handle(".reset")
	out.Reset()
	s.handle(".vars")
	assert.Contains(t, out.String(), "No variables declared.")

	s.handle(".bogus")
	assert.Contains(t, errOut.String(), "Unknown command: .bogus")

	assert.True(t, s.handle(".quit"))
	assert.True(t, s.handle("  .EXIT  "))
}

func TestSessionCancelPending(t *testing.T) {
	s, out, _ := newTestSession(t)

	s.handle("print")
	s.cancelPending()
	assert.Equal(t, replPrompt, s.prompt())
	s.handle("print 4;")
	assert.Equal(t, "4\n", out.String())
}

func TestSessionBlankLines(t *testing.T) {
	s, out, errOut := newTestSession(t)
	assert.False(t, s.handle(""))
	assert.False(t, s.handle("   \t"))
	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
	assert.Equal(t, replPrompt, s.prompt())
}

func TestSessionErrorLinesCountWholeSession(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "first input",
			lines: []string{"print q;"},
			want:  "<stdin>:1:7:",
		},
		{
			name:  "after earlier inputs",
			lines: []string{"var a;", "print a;", "print q;"},
			want:  "<stdin>:3:7:",
		},
		{
			name:  "blank lines and dot commands count",
			lines: []string{"var a;", "", ".vars", "print q;"},
			want:  "<stdin>:4:7:",
		},
		{
			name:  "multi-line input keeps typed columns",
			lines: []string{"var a;", "print", "  q;"},
			want:  "<stdin>:3:3:",
		},
		{
			name:  "blank line inside pending input",
			lines: []string{"print", "", "q;"},
			want:  "<stdin>:3:1:",
		},
		{
			name:  "lexical error",
			lines: []string{"var a;", "a = Q;"},
			want:  "<stdin>:2:5: lexical error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, errOut := newTestSession(t)
			for _, line := range tt.lines {
				s.handle(line)
			}
			assert.Contains(t, errOut.String(), tt.want)
		})
	}
}

func TestSessionSameMistakeReportsDistinctLines(t *testing.T) {
	s, _, errOut := newTestSession(t)

	s.handle("print q;")
	s.handle("print q;")

	assert.Contains(t, errOut.String(), "<stdin>:1:7:")
	assert.Contains(t, errOut.String(), "<stdin>:2:7:")
}
