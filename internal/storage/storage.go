// Package storage implements the persistence gateway: whole-document
// load/save of the ledger against a remote document store or a local
// snapshot file.
package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/ortosalon/backoffice/internal/models"
)

// Storage is the persistence gateway interface. Save overwrites the entire
// remote document with the given state; there are no partial updates and the
// last full write wins.
type Storage interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
	Close() error
}

// New creates the appropriate storage backend for the target.
// Remote document store: https://api.example.com/v3/b/<bin-id>
// Local snapshot file: ./data/ledger.db
func New(target, masterKey string) (Storage, error) {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return NewRemote(target, masterKey), nil
	}
	return NewBolt(target)
}

// PersistenceError reports a failed load/save round-trip to the backing
// store. It is non-fatal: the in-memory state stays authoritative for the
// running session.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
