package storage

import (
	"context"
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/ortosalon/backoffice/internal/models"
)

const (
	bucketLedger = "ledger"
	keyDocument  = "document"
)

// Bolt persists the ledger document as a single JSON value in a local bbolt
// file. Used for offline operation and tests.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the snapshot file and initializes the bucket.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLedger))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", bucketLedger, err)
	}

	return &Bolt{db: db}, nil
}

// Load fetches the stored document. A fresh file with no document yet
// surfaces as a load failure so the caller falls back to its default state.
func (b *Bolt) Load(ctx context.Context) (*models.Document, error) {
	var doc models.Document
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket([]byte(bucketLedger)).Get([]byte(keyDocument))
		if data == nil {
			return fmt.Errorf("no document stored")
		}
		return json.Unmarshal(data, &doc)
	})
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	return &doc, nil
}

// Save overwrites the stored document with the given state.
func (b *Bolt) Save(ctx context.Context, doc *models.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return &PersistenceError{Op: "save", Err: fmt.Errorf("failed to marshal document: %w", err)}
	}

	err = b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLedger)).Put([]byte(keyDocument), data)
	})
	if err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// Close closes the snapshot file.
func (b *Bolt) Close() error {
	return b.db.Close()
}
