package commands

import (
	"context"
	"fmt"
	"testing"

	"github.com/leapstack-labs/xpres/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	good := testutil.WriteSource(t, "good.xp", "var x; x = 3; print x;")
	bad := testutil.WriteSource(t, "bad.xp", "print y;")

	out, errOut, err := executeCommand(t, NewCheckCommand(), good, bad, good)
	require.Error(t, err)
	assert.Equal(t, "1 of 3 files failed", err.Error())

	assert.Equal(t,
		fmt.Sprintf("ok %s (3 statements)\nok %s (3 statements)\n", good, good),
		out, "results are reported in argument order")
	assert.Contains(t, errOut, bad+":1:7: semantic error: undefined variable: y")
	assert.NotContains(t, out, "3\n", "print output is discarded")
}

func TestCheckCommandAllPass(t *testing.T) {
	a := testutil.WriteSource(t, "a.xp", "print 1;")
	b := testutil.WriteSource(t, "b.xp", "")

	out, _, err := executeCommand(t, NewCheckCommand(), a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "ok "+a+" (1 statements)")
	assert.Contains(t, out, "ok "+b+" (0 statements)")
}

func TestCheckCommandRequiresFiles(t *testing.T) {
	_, _, err := executeCommand(t, NewCheckCommand())
	assert.Error(t, err)
}

func TestCheckFilesIsolated(t *testing.T) {
	// Each file gets its own symbol table: both may declare x.
	paths := make([]string, 20)
	for i := range paths {
		paths[i] = testutil.WriteSource(t, fmt.Sprintf("p%d.xp", i), fmt.Sprintf("var x; x = %d; print x;", i))
	}

	results, err := checkFiles(context.Background(), paths, 4)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.path)
		assert.NoError(t, r.err)
		assert.Equal(t, 3, r.statements)
	}
}

func TestCheckFilesMissing(t *testing.T) {
	results, err := checkFiles(context.Background(), []string{"missing.xp"}, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorContains(t, results[0].err, "failed to read source")
}

func TestCheckFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checkFiles(ctx, []string{testutil.WriteSource(t, "a.xp", "print 1;")}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
