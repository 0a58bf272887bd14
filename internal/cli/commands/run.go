package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/leapstack-labs/xpres/pkg/interp"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Execute an xpres program",
		Long: `Read an xpres source file and execute it.

Each print statement writes its value followed by a newline to stdout.
The first error stops the program; values printed before it are kept.`,
		Example: `  xpres run examples/hello.xp
  xpres run --watch prog.xp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			if watch {
				return runWatch(cmd.Context(), cc, args[0], nil)
			}
			return runFile(cc, args[0])
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run the program whenever the file changes")
	cmd.Flags().Duration("debounce", 0, "Delay before re-running after a change (watch mode)")

	return cmd
}

// runFile executes one program file with a fresh symbol table.
func runFile(cc *CommandContext, path string) error {
	src, err := readSource(path)
	if err != nil {
		return &output.SourceError{Path: path, Err: err}
	}

	runID := uuid.NewString()
	logger := cc.Logger.With("run_id", runID, "file", path)
	logger.Debug("starting run", "bytes", len(src))

	start := time.Now()
	in := interp.New(src,
		interp.WithSink(interp.NewWriterSink(cc.Out)),
		interp.WithLogger(logger),
	)
	if err := in.Run(); err != nil {
		logger.Debug("run failed", "error", err, "statements", in.Statements())
		return &output.SourceError{Path: path, Err: err}
	}

	logger.Debug("run completed",
		"statements", in.Statements(),
		"variables", in.Symbols().Len(),
		"elapsed", time.Since(start).Round(time.Microsecond))
	return nil
}

// runWatch runs path once, then again after every write, until ctx is done.
// Program errors are reported but do not stop the watch. ready, if non-nil,
// is called once the watcher is installed.
func runWatch(ctx context.Context, cc *CommandContext, path string, ready func()) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	report := func() {
		if err := runFile(cc, path); err != nil {
			_, _ = fmt.Fprintln(cc.ErrOut, cc.Styles.Diagnostic(err))
		}
	}

	report()
	cc.Logger.Info("watching for changes", "file", path)
	if ready != nil {
		ready()
	}

	debounce := cc.Cfg.WatchDebounce
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// Only handle write/create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			_, _ = fmt.Fprintln(cc.ErrOut, cc.Styles.Dim.Render("--- change detected: "+filepath.Base(path)))
			report()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cc.Logger.Warn("watcher error", "error", err)
		}
	}
}
