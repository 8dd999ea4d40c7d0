package shell

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
)

func TestRun(t *testing.T) {
	var stdout bytes.Buffer
	err := NewRunner().Run(context.Background(), ports.RunSpec{
		Argv:   []string{"sh", "-c", "echo hello"},
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRun_NilWritersDiscard(t *testing.T) {
	err := NewRunner().Run(context.Background(), ports.RunSpec{
		Argv: []string{"sh", "-c", "echo hello; echo oops >&2"},
	})
	assert.NoError(t, err)
}

func TestRun_ExitCode(t *testing.T) {
	err := NewRunner().Run(context.Background(), ports.RunSpec{
		Argv: []string{"sh", "-c", "exit 3"},
	})
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.True(t, errors.Is(err, domain.ErrLaunchFailed))
}

func TestRun_EmptyCommand(t *testing.T) {
	err := NewRunner().Run(context.Background(), ports.RunSpec{})
	assert.Error(t, err)
}

func TestRun_Dir(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	err := NewRunner().Run(context.Background(), ports.RunSpec{
		Argv:   []string{"pwd"},
		Dir:    dir,
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), filepath.Base(dir))
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner().Run(ctx, ports.RunSpec{
		Argv: []string{"sh", "-c", "sleep 10"},
	})
	assert.Error(t, err)
}

func TestOutput(t *testing.T) {
	out, err := NewRunner().Output(context.Background(), ports.RunSpec{
		Argv: []string{"sh", "-c", "echo out; echo err >&2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(out))
}

func TestRun_SpecPathWins(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "probe-target")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\necho from-spec-path\n"), 0o700)) //nolint:gosec // test script

	var stdout bytes.Buffer
	err := NewRunner().Run(context.Background(), ports.RunSpec{
		Argv:   []string{"probe-target"},
		Env:    []string{"PATH=" + dir},
		Stdout: &stdout,
	})
	require.NoError(t, err)
	assert.Equal(t, "from-spec-path\n", stdout.String())
}

func TestMergeEnvironment(t *testing.T) {
	base := []string{"PATH=/usr/bin", "HOME=/home/u", "LANG=C"}
	extra := []string{"PATH=/opt/py/bin", "GLUE_DEPS_INSTALLER=conda"}

	merged := mergeEnvironment(base, extra)

	byKey := make(map[string]string, len(merged))
	for _, entry := range merged {
		k, v, ok := strings.Cut(entry, "=")
		require.True(t, ok)
		byKey[k] = v
	}

	assert.Equal(t, "/opt/py/bin"+string(os.PathListSeparator)+"/usr/bin", byKey["PATH"])
	assert.Equal(t, "conda", byKey["GLUE_DEPS_INSTALLER"])
	assert.Equal(t, "/home/u", byKey["HOME"])
	assert.Equal(t, "C", byKey["LANG"])
}

func TestMergeEnvironment_MalformedEntriesIgnored(t *testing.T) {
	merged := mergeEnvironment([]string{"A=1"}, []string{"garbage"})
	assert.Equal(t, []string{"A=1"}, merged)
}

func TestLookPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o700)) //nolint:gosec // test executable

	found, err := lookPath("tool", []string{"PATH=" + dir})
	require.NoError(t, err)
	assert.Equal(t, exe, found)

	_, err = lookPath("missing", []string{"PATH=" + dir})
	assert.Error(t, err)

	_, err = lookPath("tool", []string{"HOME=/home/u"})
	assert.Error(t, err)
}

func TestTailBuffer(t *testing.T) {
	tail := NewTailBuffer()

	n, err := tail.Write([]byte("  short output\n"))
	require.NoError(t, err)
	assert.Equal(t, 15, n)
	assert.Equal(t, "short output", tail.String())

	big := strings.Repeat("x", tailCap)
	_, err = tail.Write([]byte(big))
	require.NoError(t, err)
	assert.Len(t, tail.String(), tailCap)
	assert.NotContains(t, tail.String(), "short")
}
