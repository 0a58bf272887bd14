package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Styles holds the lipgloss styles used for diagnostics.
type Styles struct {
	Error lipgloss.Style
	Pos   lipgloss.Style
	OK    lipgloss.Style
	Dim   lipgloss.Style
}

// NewStyles builds styles bound to w. ColorNever forces plain ASCII output,
// ColorAlways forces ANSI colors even when w is not a terminal.
func NewStyles(w io.Writer, mode ColorMode) *Styles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	default:
		if !IsTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}

	return &Styles{
		Error: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Pos:   r.NewStyle().Bold(true),
		OK:    r.NewStyle().Foreground(lipgloss.Color("2")),
		Dim:   r.NewStyle().Faint(true),
	}
}
