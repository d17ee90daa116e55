package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/ortosalon/backoffice/internal/models"
)

// fakeGateway is an in-memory persistence gateway for tests. It records
// every saved snapshot and can be made to fail on demand.
type fakeGateway struct {
	doc     *models.Document
	loadErr error
	saveErr error
	saves   int
}

func (g *fakeGateway) Load(ctx context.Context) (*models.Document, error) {
	if g.loadErr != nil {
		return nil, g.loadErr
	}
	if g.doc == nil {
		return models.NewDocument(10.0), nil
	}
	return g.doc.Clone(), nil
}

func (g *fakeGateway) Save(ctx context.Context, doc *models.Document) error {
	g.saves++
	if g.saveErr != nil {
		return g.saveErr
	}
	g.doc = doc.Clone()
	return nil
}

func (g *fakeGateway) Close() error { return nil }

var testOptions = Options{
	DefaultExchangeRate: 10.0,
	Countries:           []string{"TJ", "RU", "TR", "CN"},
	Outlets:             []string{"Ortosalon Munisa", "Ortosalon Siema"},
}

func newTestStore(t *testing.T) (*Store, *fakeGateway) {
	t.Helper()
	gw := &fakeGateway{}
	return New(gw, testOptions), gw
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	gw := &fakeGateway{loadErr: errors.New("network down")}
	s := New(gw, testOptions)
	s.Load(context.Background())

	doc := s.Snapshot()
	if doc.ExchangeRate != 10.0 {
		t.Errorf("ExchangeRate = %v, expected default 10.0", doc.ExchangeRate)
	}
	if len(doc.Sales) != 0 || len(doc.Suppliers) != 0 {
		t.Error("expected empty document after failed load")
	}
}

func TestLoadNormalizesDocument(t *testing.T) {
	gw := &fakeGateway{doc: &models.Document{ExchangeRate: 0}}
	s := New(gw, testOptions)
	s.Load(context.Background())

	doc := s.Snapshot()
	if doc.ExchangeRate != 10.0 {
		t.Errorf("ExchangeRate = %v, expected default after normalize", doc.ExchangeRate)
	}
	if doc.Sales == nil || doc.AuditLog == nil {
		t.Error("expected nil collections to be repaired")
	}
}

func TestPersistFailureKeepsMutation(t *testing.T) {
	s, gw := newTestStore(t)
	gw.saveErr = errors.New("remote unavailable")

	sale, err := s.AddSale(context.Background(), "admin1", models.CreateSaleRequest{
		Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 150,
	})
	if err != nil {
		t.Fatalf("AddSale() error = %v", err)
	}

	doc := s.Snapshot()
	if len(doc.Sales) != 1 || doc.Sales[0].ID != sale.ID {
		t.Error("mutation should survive a failed persist")
	}
	if s.LastPersistError() == nil {
		t.Error("LastPersistError() should report the failed save")
	}

	// Next successful persist clears the sticky error.
	gw.saveErr = nil
	if _, err := s.AddSale(context.Background(), "admin1", models.CreateSaleRequest{
		Outlet: "Ortosalon Siema", Date: "2026-03-01", Amount: 80,
	}); err != nil {
		t.Fatalf("AddSale() error = %v", err)
	}
	if s.LastPersistError() != nil {
		t.Error("LastPersistError() should be nil after a successful save")
	}
}

func TestEveryMutationPersistsOnce(t *testing.T) {
	s, gw := newTestStore(t)

	_, err := s.AddSale(context.Background(), "admin1", models.CreateSaleRequest{
		Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 100,
	})
	if err != nil {
		t.Fatalf("AddSale() error = %v", err)
	}
	if gw.saves != 1 {
		t.Errorf("saves = %d, expected 1", gw.saves)
	}

	// A rejected mutation must not persist.
	if _, err := s.AddSale(context.Background(), "admin1", models.CreateSaleRequest{
		Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: -5,
	}); err == nil {
		t.Fatal("expected validation error")
	}
	if gw.saves != 1 {
		t.Errorf("saves = %d after rejected mutation, expected 1", gw.saves)
	}
}

func TestAuditNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddSale(ctx, "admin1", models.CreateSaleRequest{
		Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 100,
	}); err != nil {
		t.Fatalf("AddSale() error = %v", err)
	}
	if _, err := s.AddExpense(ctx, "admin2", models.CreateExpenseRequest{
		Category: "Rent", Date: "2026-03-01", Amount: 500,
	}); err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}

	log := s.Snapshot().AuditLog
	if len(log) != 2 {
		t.Fatalf("audit log has %d entries, expected 2", len(log))
	}
	if log[0].Entity != models.EntityExpense {
		t.Errorf("newest entry entity = %q, expected %q", log[0].Entity, models.EntityExpense)
	}
	if log[0].Actor != "admin2" || log[1].Actor != "admin1" {
		t.Error("audit entries not in newest-first order")
	}
}

func TestAuditCapEvictsOldest(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < models.MaxAuditEntries+10; i++ {
		if _, err := s.AddSale(ctx, "admin1", models.CreateSaleRequest{
			Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: float64(i + 1),
		}); err != nil {
			t.Fatalf("AddSale() error = %v", err)
		}
	}

	log := s.Snapshot().AuditLog
	if len(log) != models.MaxAuditEntries {
		t.Fatalf("audit log has %d entries, expected cap %d", len(log), models.MaxAuditEntries)
	}
	// The newest entry reflects the last sale.
	want := fmt.Sprintf("%.2f TJS", float64(models.MaxAuditEntries+10))
	if log[0].Details != "Ortosalon Munisa - "+want {
		t.Errorf("newest audit entry = %q, expected amount %s", log[0].Details, want)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	if _, err := s.AddSale(ctx, "admin1", models.CreateSaleRequest{
		Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 100,
	}); err != nil {
		t.Fatalf("AddSale() error = %v", err)
	}

	snap := s.Snapshot()
	snap.Sales[0].Amount = 9999
	snap.ExchangeRate = 1

	doc := s.Snapshot()
	if doc.Sales[0].Amount != 100 || doc.ExchangeRate != 10.0 {
		t.Error("mutating a snapshot must not affect the store")
	}
}
