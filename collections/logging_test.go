package collections_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-chain-utils/collections"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	collections.SetLogger(collections.NewLogger(&buf, level))
	t.Cleanup(func() { collections.SetLogger(nil) })
	return &buf
}

func TestDumpLogsAndReturnsReceiver(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	l := ints(1, 2, 3)
	assert.Same(t, l, l.Dump())

	out := buf.String()
	assert.Contains(t, out, "dump")
	assert.Contains(t, out, "len=3")
	assert.Contains(t, out, "[1,2,3]")
	assert.NotContains(t, out, "\x1b[", "non-terminal writers get no color codes")
}

func TestNewLoggerFileIsNotColored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chain.log")
	f, err := os.Create(path)
	require.NoError(t, err)

	collections.NewLogger(f, slog.LevelInfo).Info("written", "len", 2)
	require.NoError(t, f.Close())

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "written")
	assert.Contains(t, string(out), "len=2")
	assert.NotContains(t, string(out), "\x1b[")
}

func TestDictDump(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	d := collections.FromMap(map[string]int{"a": 1})
	assert.Same(t, d, d.Dump())
	assert.Contains(t, buf.String(), "len=1")
}

func TestFailedStepLogsAtDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	l := ints(1).Keep(nil)
	require.Error(t, l.Err())
	assert.Contains(t, buf.String(), "chain step failed")
	assert.Contains(t, buf.String(), "op=keep")
}

func TestFailuresAreQuietAtInfo(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)

	_ = ints(1).Keep(nil)
	assert.Empty(t, buf.String())
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	collections.SetLogger(nil)
	assert.NotNil(t, collections.Logger())
}
