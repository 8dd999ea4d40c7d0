// Package journal persists install history as JSON lines.
package journal

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/glue-viz/gluedeps/internal/core/domain"
	"github.com/glue-viz/gluedeps/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	journalFile = "journal.jsonl"
	dirPerm     = 0o750
	filePerm    = 0o600

	// maxLineBytes bounds a single journal line; records are small, so a
	// longer line means corruption.
	maxLineBytes = 1 << 20
)

// FileJournal implements ports.Journal with an append-only JSON-lines file.
type FileJournal struct {
	path string
}

// New creates a FileJournal under dir.
func New(dir string) *FileJournal {
	return &FileJournal{path: filepath.Join(dir, journalFile)}
}

// Append stores a new install record.
func (j *FileJournal) Append(record domain.InstallRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal install record")
	}

	if err := os.MkdirAll(filepath.Dir(j.path), dirPerm); err != nil {
		return zerr.Wrap(err, "failed to create journal directory")
	}

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm) //nolint:gosec // path is under the cache dir
	if err != nil {
		return zerr.Wrap(err, "failed to open journal")
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return zerr.Wrap(err, "failed to append to journal")
	}
	return f.Close()
}

// Recent returns up to n records, newest first. Corrupt lines are skipped:
// a crashed install must not make history unreadable.
func (j *FileJournal) Recent(n int) ([]domain.InstallRecord, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to open journal")
	}
	defer func() { _ = f.Close() }()

	var records []domain.InstallRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record domain.InstallRecord
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read journal")
	}

	// Newest first.
	for i, k := 0, len(records)-1; i < k; i, k = i+1, k-1 {
		records[i], records[k] = records[k], records[i]
	}
	if n > 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}

var _ ports.Journal = (*FileJournal)(nil)
