package commands

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/leapstack-labs/xpres/pkg/format"
	"github.com/spf13/cobra"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand() *cobra.Command {
	var write, list bool

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: "Format xpres source files",
		Long: `Rewrite xpres source in canonical form: one statement per line, single
spaces between tokens and at most one blank line between statements.

By default the formatted source is printed to stdout. Formatting never
changes the token stream, so programs behave the same before and after.`,
		Example: `  xpres fmt prog.xp
  xpres fmt -w *.xp
  xpres fmt -l progs/*.xp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)

			for _, path := range args {
				src, err := readSource(path)
				if err != nil {
					return &output.SourceError{Path: path, Err: err}
				}

				formatted, err := format.Source(src)
				if err != nil {
					return &output.SourceError{Path: path, Err: err}
				}

				changed := formatted != src
				cc.Logger.Debug("formatted", "file", path, "changed", changed)

				if list {
					if changed {
						_, _ = fmt.Fprintln(cc.Out, path)
					}
					continue
				}
				if write {
					if !changed {
						continue
					}
					if err := writeSource(path, formatted); err != nil {
						return err
					}
					continue
				}
				_, _ = fmt.Fprint(cc.Out, formatted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write result to the source file instead of stdout")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List files whose formatting differs")

	return cmd
}

// writeSource replaces the contents of path, keeping its permissions.
func writeSource(path, src string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(src), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
