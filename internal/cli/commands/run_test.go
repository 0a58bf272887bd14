package commands

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/xpres/internal/cli/output"
	"github.com/leapstack-labs/xpres/internal/testutil"
	"github.com/leapstack-labs/xpres/pkg/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantOut string
		wantErr string
	}{
		{
			name:    "prints values",
			src:     "var x; x = 42; print x; print 7;",
			wantOut: "42\n7\n",
		},
		{
			name:    "empty program",
			src:     "  \n\t",
			wantOut: "",
		},
		{
			name:    "keeps output before error",
			src:     "var a; print a;\nprint b;",
			wantOut: "0\n",
			wantErr: "prog.xp:2:7: semantic error: undefined variable: b",
		},
		{
			name:    "syntax error",
			src:     "var x\nprint x;",
			wantErr: `prog.xp:2:1: syntax error: semicolon expected, got "print"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteSource(t, "prog.xp", tt.src)
			out, _, err := executeCommand(t, NewRunCommand(), path)

			assert.Equal(t, tt.wantOut, out)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var se *output.SourceError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, path, se.Path)
		})
	}
}

func TestRunCommandArgs(t *testing.T) {
	_, _, err := executeCommand(t, NewRunCommand())
	assert.Error(t, err)
}

func TestRunFileKind(t *testing.T) {
	cc, _, _ := newTestContext(t)
	path := testutil.WriteSource(t, "bad.xp", "var x; x = ;")

	err := runFile(cc, path)
	require.Error(t, err)
	assert.Equal(t, interp.KindSyntax, interp.KindOf(err))
}

func TestRunWatch(t *testing.T) {
	cc, out, errOut := newTestContext(t)
	cc.Cfg.WatchDebounce = 10 * time.Millisecond
	path := testutil.WriteSource(t, "watch.xp", "print 1;")

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- runWatch(ctx, cc, path, func() { close(ready) })
	}()

	select {
	case <-ready:
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("watcher did not start")
	}
	assert.Equal(t, "1\n", out.String(), "initial run happens before watching")

	require.NoError(t, os.WriteFile(path, []byte("print 2;"), 0o600))
	require.Eventually(t, func() bool {
		return out.String() == "1\n2\n"
	}, 5*time.Second, 10*time.Millisecond)

	// A failing program is reported and the watch keeps going.
	require.NoError(t, os.WriteFile(path, []byte("print nope;"), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(errOut.String(), "undefined variable: nope")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("print 3;"), 0o600))
	require.Eventually(t, func() bool {
		return out.String() == "1\n2\n3\n"
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestRunWatchMissingDir(t *testing.T) {
	cc, _, _ := newTestContext(t)
	err := runWatch(context.Background(), cc, "/does/not/exist/prog.xp", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
