package commands

import (
	"os"
	"testing"

	"github.com/leapstack-labs/xpres/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFmtCommandStdout(t *testing.T) {
	path := testutil.WriteSource(t, "prog.xp", "var x;x=1;print   x;")

	out, _, err := executeCommand(t, NewFmtCommand(), path)
	require.NoError(t, err)
	assert.Equal(t, "var x;\nx = 1;\nprint x;\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "var x;x=1;print   x;", string(data), "stdout mode leaves the file alone")
}

func TestFmtCommandWrite(t *testing.T) {
	path := testutil.WriteSource(t, "prog.xp", "print 1 ;")

	out, _, err := executeCommand(t, NewFmtCommand(), "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print 1;\n", string(data))
}

func TestFmtCommandList(t *testing.T) {
	clean := testutil.WriteSource(t, "clean.xp", "print 1;\n")
	dirty := testutil.WriteSource(t, "dirty.xp", "print   1;")

	out, _, err := executeCommand(t, NewFmtCommand(), "-l", clean, dirty)
	require.NoError(t, err)
	assert.Equal(t, dirty+"\n", out)
}

func TestFmtCommandLexicalError(t *testing.T) {
	path := testutil.WriteSource(t, "bad.xp", "var X;")

	_, _, err := executeCommand(t, NewFmtCommand(), "-w", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.xp:1:5: lexical error")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "var X;", string(data))
}
