package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

// RegisterSupplier creates a supplier with an initial debt. The USD balance
// is derived from the debt at the current exchange rate.
func (s *Store) RegisterSupplier(ctx context.Context, actor string, req models.CreateSupplierRequest) (*models.Supplier, error) {
	if req.Name == "" {
		return nil, validationErr("name", "name is required")
	}
	if req.Country == "" {
		return nil, validationErr("country", "country is required")
	}
	if len(s.countries) > 0 && !s.countries[req.Country] {
		return nil, validationErr("country", fmt.Sprintf("unknown country code %q", req.Country))
	}
	if req.InitialDebt < 0 {
		return nil, validationErr("initialDebt", "initial debt must not be negative")
	}

	s.mu.Lock()

	supplier := models.Supplier{
		ID:        models.NewID("supplier"),
		Name:      req.Name,
		Country:   req.Country,
		Debt:      req.InitialDebt,
		DebtUSD:   req.InitialDebt / s.doc.ExchangeRate,
		AddedBy:   actor,
		Timestamp: time.Now(),
	}

	s.doc.Suppliers = append(s.doc.Suppliers, supplier)
	s.appendAudit(actor, models.ActionAdded, models.EntitySupplier,
		fmt.Sprintf("%s (%s) - debt: %.2f TJS", supplier.Name, supplier.Country, supplier.Debt))
	s.commit(ctx)

	return &supplier, nil
}

// DeleteSupplier removes a supplier and cascade-deletes all its purchases
// and payments. No debt adjustment is applied since the balance is gone with
// the supplier.
func (s *Store) DeleteSupplier(ctx context.Context, actor, id string) error {
	s.mu.Lock()

	idx := s.findSupplier(id)
	if idx == -1 {
		s.mu.Unlock()
		return ErrNotFound
	}

	supplier := s.doc.Suppliers[idx]
	s.doc.Suppliers = append(s.doc.Suppliers[:idx], s.doc.Suppliers[idx+1:]...)

	purchases := s.doc.Purchases[:0]
	for _, p := range s.doc.Purchases {
		if p.SupplierID != id {
			purchases = append(purchases, p)
		}
	}
	s.doc.Purchases = purchases

	payments := s.doc.SupplierPayments[:0]
	for _, p := range s.doc.SupplierPayments {
		if p.SupplierID != id {
			payments = append(payments, p)
		}
	}
	s.doc.SupplierPayments = payments

	s.appendAudit(actor, models.ActionDeleted, models.EntitySupplier, supplier.Name)
	s.commit(ctx)

	return nil
}
