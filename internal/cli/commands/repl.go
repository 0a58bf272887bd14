package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/leapstack-labs/xpres/pkg/interp"
	"github.com/leapstack-labs/xpres/pkg/symtab"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "xpres> "
	replContPrompt = "  ...> "
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive xpres session",
		Long: `Start an interactive session. Statements are executed as soon as a line
ends with a semicolon; variables persist for the whole session.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(NewCommandContext(cmd))
		},
	}

	cmd.Flags().String("history", "", "History file (empty uses the configured history_file)")

	return cmd
}

func runREPL(cc *CommandContext) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cc.Cfg.HistoryFile,
		AutoComplete:    newDotCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cc.Out,
		Stderr:          cc.ErrOut,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cc.Out, "xpres interactive session")
	_, _ = fmt.Fprintln(cc.Out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cc.Out)

	s := newSession(cc.Out, cc.ErrOut, cc.Styles, cc.Logger)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.cancelPending()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if s.handle(line) {
			break
		}
		rl.SetPrompt(s.prompt())
	}

	return nil
}

// session holds the state of one interactive session: the shared symbol
// table and any statement text still waiting for its semicolon.
type session struct {
	out     io.Writer
	errOut  io.Writer
	styles  *output.Styles
	logger  *slog.Logger
	symbols *symtab.Table
	pending strings.Builder
	runs    int

	// lines counts every line read so far; start is the session line on
	// which the pending input began.
	lines int
	start int
}

func newSession(out, errOut io.Writer, styles *output.Styles, logger *slog.Logger) *session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &session{
		out:     out,
		errOut:  errOut,
		styles:  styles,
		logger:  logger,
		symbols: symtab.New(),
	}
}

func (s *session) prompt() string {
	if s.pending.Len() > 0 {
		return replContPrompt
	}
	return replPrompt
}

func (s *session) cancelPending() {
	s.pending.Reset()
}

// handle processes one input line and reports whether the session should end.
func (s *session) handle(line string) bool {
	s.lines++
	trimmed := strings.TrimSpace(line)

	if s.pending.Len() == 0 {
		if trimmed == "" {
			return false
		}
		if strings.HasPrefix(trimmed, ".") {
			return s.dotCommand(trimmed)
		}
		s.start = s.lines
	}

	// Accumulate until a line ends with a semicolon. Lines are kept as typed
	// so error columns match the input.
	s.pending.WriteString(strings.TrimRight(line, " \t\r"))
	s.pending.WriteString("\n")
	if !strings.HasSuffix(trimmed, ";") {
		return false
	}

	src := s.pending.String()
	s.pending.Reset()
	s.exec(src, s.start)
	return false
}

// exec runs src, which starts on session line firstLine, against the session
// symbol table. Statements executed before an error keep their effects.
func (s *session) exec(src string, firstLine int) {
	s.runs++
	in := interp.New(src,
		interp.WithSymbols(s.symbols),
		interp.WithSink(interp.NewWriterSink(s.out)),
		interp.WithLogger(s.logger.With("input", s.runs, "line", firstLine)),
	)
	if err := in.Run(); err != nil {
		err = shiftLines(err, firstLine-1)
		_, _ = fmt.Fprintln(s.errOut, s.styles.Diagnostic(&output.SourceError{Path: "<stdin>", Err: err}))
	}
}

// shiftLines moves the position of an interpreter error n lines down, so
// positions count from the start of the session rather than the input.
func shiftLines(err error, n int) error {
	var ie *interp.Error
	if n == 0 || !errors.As(err, &ie) {
		return err
	}
	shifted := *ie
	shifted.Pos.Line += n
	return &shifted
}

func (s *session) dotCommand(line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".vars":
		s.printVars()

	case ".reset":
		s.symbols = symtab.New()
		_, _ = fmt.Fprintln(s.out, "All variables cleared.")

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func (s *session) printVars() {
	names := s.symbols.Names()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(s.out, "No variables declared.")
		return
	}

	values := s.symbols.Snapshot()
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Value"})
	for _, name := range names {
		t.AppendRow(table.Row{name, values[name]})
	}
	t.Render()
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .vars           List declared variables and their values
  .reset          Forget all variables
  .quit / .exit   Exit the session

Tips:
  - Statements run once a line ends with a semicolon (;)
  - Variables start at 0 and persist between inputs
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func newDotCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".vars"),
		readline.PcItem(".reset"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
		readline.PcItem("var"),
		readline.PcItem("print"),
	)
}
