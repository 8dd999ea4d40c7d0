package ports

import "github.com/glue-viz/gluedeps/internal/core/domain"

// Journal persists install history.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type Journal interface {
	// Append stores a new install record.
	Append(record domain.InstallRecord) error

	// Recent returns up to n records, newest first.
	Recent(n int) ([]domain.InstallRecord, error)
}
