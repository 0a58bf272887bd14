package commands

import (
	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/leapstack-labs/xpres/pkg/lexer"
	"github.com/spf13/cobra"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a source file",
		Long: `Tokenize an xpres source file and print each token with its position.

Output format follows --output: a table on a terminal, tab-separated lines
otherwise, or json/yaml when requested. On a lexical error the tokens read
so far are printed before the error is reported.`,
		Example: `  xpres tokens prog.xp
  xpres tokens -o json prog.xp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			path := args[0]

			src, err := readSource(path)
			if err != nil {
				return &output.SourceError{Path: path, Err: err}
			}

			toks, lexErr := lexer.Tokenize(src)
			format := cc.Cfg.Output.Resolve(output.IsTerminal(cc.Out))
			cc.Logger.Debug("tokenized", "file", path, "tokens", len(toks), "format", format.String())

			if err := output.RenderTokens(cc.Out, toks, format); err != nil {
				return err
			}
			if lexErr != nil {
				return &output.SourceError{Path: path, Err: lexErr}
			}
			return nil
		},
	}
}
