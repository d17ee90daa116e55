// Package ledger implements the Ledger Store: the single owner of the
// in-memory ledger document. Every mutation validates its input, updates the
// document, appends one audit entry and triggers one full-document persist.
// A failed persist is logged and surfaced but never rolls the mutation back;
// the in-memory state is authoritative for the running session.
package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
	"github.com/ortosalon/backoffice/internal/storage"
)

// Options configures a Store.
type Options struct {
	// DefaultExchangeRate is used when no document can be loaded or the
	// loaded document carries no usable rate. TJS per one USD.
	DefaultExchangeRate float64

	// Countries are the permitted supplier country codes.
	Countries []string

	// Outlets are the permitted sale outlets.
	Outlets []string
}

// Store owns the canonical in-memory ledger document and enforces the
// supplier debt invariant on every mutation. It is the only mutator;
// reporting and the API read through Snapshot.
type Store struct {
	mu      sync.RWMutex
	doc     *models.Document
	gateway storage.Storage
	opts    Options

	countries map[string]bool
	outlets   map[string]bool

	lastPersistErr error
}

// New creates a Store backed by the given persistence gateway. Call Load
// before first use.
func New(gateway storage.Storage, opts Options) *Store {
	countries := make(map[string]bool, len(opts.Countries))
	for _, c := range opts.Countries {
		countries[c] = true
	}
	outlets := make(map[string]bool, len(opts.Outlets))
	for _, o := range opts.Outlets {
		outlets[o] = true
	}

	return &Store{
		doc:       models.NewDocument(opts.DefaultExchangeRate),
		gateway:   gateway,
		opts:      opts,
		countries: countries,
		outlets:   outlets,
	}
}

// Load fetches the ledger document from the gateway. On failure the store
// keeps its built-in default (empty collections, default exchange rate) and
// the error is reported as a warning only.
func (s *Store) Load(ctx context.Context) {
	doc, err := s.gateway.Load(ctx)
	if err != nil {
		slog.Warn("failed to load ledger document, starting with defaults", "error", err)
		return
	}

	normalizeDocument(doc, s.opts.DefaultExchangeRate)

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()

	slog.Info("ledger document loaded",
		"sales", len(doc.Sales),
		"suppliers", len(doc.Suppliers),
		"exchange_rate", doc.ExchangeRate)
}

// Snapshot returns a deep copy of the current document for read-side use.
func (s *Store) Snapshot() *models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// ExchangeRate returns the current TJS-per-USD rate.
func (s *Store) ExchangeRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.ExchangeRate
}

// LastPersistError returns the error from the most recent persist attempt,
// or nil if it succeeded. A non-nil value means the remote copy is stale.
func (s *Store) LastPersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastPersistErr
}

// appendAudit prepends one audit entry, evicting the oldest past the cap.
// Callers must hold the write lock.
func (s *Store) appendAudit(actor, action, entity, details string) {
	entry := models.AuditEntry{
		ID:        models.NewID("audit"),
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		Details:   details,
	}

	s.doc.AuditLog = append([]models.AuditEntry{entry}, s.doc.AuditLog...)
	if len(s.doc.AuditLog) > models.MaxAuditEntries {
		s.doc.AuditLog = s.doc.AuditLog[:models.MaxAuditEntries]
	}
}

// commit releases the write lock and persists a snapshot taken at the
// moment of release. The in-memory mutation is already complete; a persist
// failure only risks loss on reload and is recorded for the status surface.
// Callers must hold the write lock.
func (s *Store) commit(ctx context.Context) {
	snap := s.doc.Clone()
	s.mu.Unlock()

	err := s.gateway.Save(ctx, snap)
	if err != nil {
		slog.Warn("failed to persist ledger document, in-memory state retained", "error", err)
	}

	s.mu.Lock()
	s.lastPersistErr = err
	s.mu.Unlock()
}

// findSupplier returns the index of the supplier with the given id, or -1.
// Callers must hold the lock.
func (s *Store) findSupplier(id string) int {
	for i := range s.doc.Suppliers {
		if s.doc.Suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

// normalizeDocument repairs a loaded document: nil collections become empty
// and an unusable exchange rate falls back to the default.
func normalizeDocument(doc *models.Document, defaultRate float64) {
	if doc.Sales == nil {
		doc.Sales = []models.Sale{}
	}
	if doc.Expenses == nil {
		doc.Expenses = []models.Expense{}
	}
	if doc.Employees == nil {
		doc.Employees = []models.Employee{}
	}
	if doc.SalaryPayments == nil {
		doc.SalaryPayments = []models.SalaryPayment{}
	}
	if doc.Suppliers == nil {
		doc.Suppliers = []models.Supplier{}
	}
	if doc.SupplierPayments == nil {
		doc.SupplierPayments = []models.SupplierPayment{}
	}
	if doc.Purchases == nil {
		doc.Purchases = []models.Purchase{}
	}
	if doc.AuditLog == nil {
		doc.AuditLog = []models.AuditEntry{}
	}
	if doc.ExchangeRate <= 0 {
		doc.ExchangeRate = defaultRate
	}
}
