package commands

import (
	"context"
	"fmt"
	"runtime"

	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/leapstack-labs/xpres/pkg/interp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// checkResult is the outcome of executing one file with output discarded.
type checkResult struct {
	path       string
	statements int
	err        error
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Execute programs without printing their output",
		Long: `Execute one or more xpres source files with their print output discarded
and report which ones fail. Files are checked concurrently, each with its own
symbol table; results are reported in argument order.`,
		Example: `  xpres check a.xp b.xp
  xpres check --jobs 4 progs/*.xp`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)

			results, err := checkFiles(cmd.Context(), args, cc.Cfg.CheckJobs)
			if err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.err != nil {
					failed++
					_, _ = fmt.Fprintln(cc.ErrOut, cc.Styles.Diagnostic(r.err))
					continue
				}
				_, _ = fmt.Fprintf(cc.Out, "%s %s (%d statements)\n",
					cc.Styles.OK.Render("ok"), r.path, r.statements)
			}

			cc.Logger.Debug("check finished", "files", len(results), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().Int("jobs", 0, "Number of files to check in parallel (0 = number of CPUs)")

	return cmd
}

// checkFiles runs every path with at most jobs in flight. Program errors are
// recorded per file; only cancellation aborts the whole check.
func checkFiles(ctx context.Context, paths []string, jobs int) ([]checkResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]checkResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(path string) checkResult {
	res := checkResult{path: path}

	src, err := readSource(path)
	if err != nil {
		res.err = &output.SourceError{Path: path, Err: err}
		return res
	}

	in := interp.New(src, interp.WithSink(interp.Discard))
	if err := in.Run(); err != nil {
		res.err = &output.SourceError{Path: path, Err: err}
	}
	res.statements = in.Statements()
	return res
}
