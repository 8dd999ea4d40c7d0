package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glue-viz/gluedeps/internal/core/domain"
)

func record(id string) domain.InstallRecord {
	return domain.InstallRecord{
		ID:          id,
		Time:        time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC),
		Installer:   "pip",
		Interpreter: "/usr/bin/python3",
		Packages:    []string{"numpy"},
		Duration:    3 * time.Second,
	}
}

func TestAppendAndRecent(t *testing.T) {
	j := New(t.TempDir())

	for i := range 5 {
		require.NoError(t, j.Append(record(fmt.Sprintf("run-%d", i))))
	}

	records, err := j.Recent(3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "run-4", records[0].ID)
	assert.Equal(t, "run-3", records[1].ID)
	assert.Equal(t, "run-2", records[2].ID)
}

func TestRecent_NoJournal(t *testing.T) {
	records, err := New(t.TempDir()).Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecent_SkipsCorruptLines(t *testing.T) {
	dir := t.TempDir()
	j := New(dir)
	require.NoError(t, j.Append(record("ok")))

	f, err := os.OpenFile(filepath.Join(dir, journalFile), os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString("{truncated\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, j.Append(record("after-crash")))

	records, err := j.Recent(0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "after-crash", records[0].ID)
	assert.Equal(t, "ok", records[1].ID)
}

func TestRecent_ZeroLimitReturnsAll(t *testing.T) {
	j := New(t.TempDir())
	require.NoError(t, j.Append(record("a")))
	require.NoError(t, j.Append(record("b")))

	records, err := j.Recent(0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestInstallRecord_Succeeded(t *testing.T) {
	assert.True(t, record("a").Succeeded())

	failed := record("b")
	failed.Failed = []string{"numpy"}
	assert.False(t, failed.Succeeded())
}
