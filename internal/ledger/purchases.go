package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

// RecordPurchase records goods received from a supplier on credit. The
// entered amount is resolved into both currencies at the current rate and
// the supplier's debt grows by the purchase in both.
func (s *Store) RecordPurchase(ctx context.Context, actor string, req models.CreatePurchaseRequest) (*models.Purchase, error) {
	if req.SupplierID == "" {
		return nil, validationErr("supplierId", "supplier is required")
	}
	if !validCurrency(req.Currency) {
		return nil, validationErr("currency", fmt.Sprintf("unknown currency %q", req.Currency))
	}
	if req.Date == "" {
		return nil, validationErr("date", "date is required")
	}
	if req.Description == "" {
		return nil, validationErr("description", "description is required")
	}
	if req.Amount <= 0 {
		return nil, validationErr("amount", "amount must be positive")
	}

	s.mu.Lock()

	idx := s.findSupplier(req.SupplierID)
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	supplier := &s.doc.Suppliers[idx]

	amountTJS, amountUSD := resolveAmounts(req.Amount, req.Currency, s.doc.ExchangeRate)

	purchase := models.Purchase{
		ID:           models.NewID("purchase"),
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Amount:       amountTJS,
		AmountUSD:    amountUSD,
		Currency:     req.Currency,
		Date:         req.Date,
		Description:  req.Description,
		AddedBy:      actor,
		Timestamp:    time.Now(),
	}

	s.doc.Purchases = append(s.doc.Purchases, purchase)
	supplier.Debt += amountTJS
	supplier.DebtUSD += amountUSD

	s.appendAudit(actor, models.ActionAdded, models.EntityPurchase,
		fmt.Sprintf("%s - %s - %s", supplier.Name, fmtAmount(req.Amount, req.Currency), req.Description))
	s.commit(ctx)

	return &purchase, nil
}

// DeletePurchase removes a purchase and subtracts its amounts back out of
// the supplier's debt. A purchase whose supplier was already cascade-deleted
// cannot remain, so the supplier lookup only guards against direct races.
func (s *Store) DeletePurchase(ctx context.Context, actor, id string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.doc.Purchases {
		if s.doc.Purchases[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrNotFound
	}

	purchase := s.doc.Purchases[idx]
	s.doc.Purchases = append(s.doc.Purchases[:idx], s.doc.Purchases[idx+1:]...)

	if sIdx := s.findSupplier(purchase.SupplierID); sIdx != -1 {
		s.doc.Suppliers[sIdx].Debt -= purchase.Amount
		s.doc.Suppliers[sIdx].DebtUSD -= purchase.AmountUSD
	}

	s.appendAudit(actor, models.ActionDeleted, models.EntityPurchase,
		fmt.Sprintf("%s - %.2f TJS", purchase.SupplierName, purchase.Amount))
	s.commit(ctx)

	return nil
}
