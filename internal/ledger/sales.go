package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

// AddSale records a revenue entry for one outlet.
func (s *Store) AddSale(ctx context.Context, actor string, req models.CreateSaleRequest) (*models.Sale, error) {
	if req.Outlet == "" {
		return nil, validationErr("outlet", "outlet is required")
	}
	if len(s.outlets) > 0 && !s.outlets[req.Outlet] {
		return nil, validationErr("outlet", fmt.Sprintf("unknown outlet %q", req.Outlet))
	}
	if req.Date == "" {
		return nil, validationErr("date", "date is required")
	}
	if req.Amount <= 0 {
		return nil, validationErr("amount", "amount must be positive")
	}

	sale := models.Sale{
		ID:        models.NewID("sale"),
		Outlet:    req.Outlet,
		Date:      req.Date,
		Amount:    req.Amount,
		AddedBy:   actor,
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.doc.Sales = append(s.doc.Sales, sale)
	s.appendAudit(actor, models.ActionAdded, models.EntitySale,
		fmt.Sprintf("%s - %.2f TJS", sale.Outlet, sale.Amount))
	s.commit(ctx)

	return &sale, nil
}

// ImportSales appends a parsed batch of sales in one mutation with a single
// audit entry. Rows are stamped with "import" authorship.
func (s *Store) ImportSales(ctx context.Context, actor string, req models.ImportSalesRequest) (int, error) {
	if len(req.Sales) == 0 {
		return 0, validationErr("sales", "nothing to import")
	}
	for i, row := range req.Sales {
		if row.Outlet == "" || row.Date == "" {
			return 0, validationErr("sales", fmt.Sprintf("row %d: outlet and date are required", i))
		}
		if row.Amount <= 0 {
			return 0, validationErr("sales", fmt.Sprintf("row %d: amount must be positive", i))
		}
	}

	now := time.Now()
	sales := make([]models.Sale, len(req.Sales))
	for i, row := range req.Sales {
		sales[i] = models.Sale{
			ID:        models.NewID("sale"),
			Outlet:    row.Outlet,
			Date:      row.Date,
			Amount:    row.Amount,
			AddedBy:   "import",
			Timestamp: now,
		}
	}

	s.mu.Lock()
	s.doc.Sales = append(s.doc.Sales, sales...)
	s.appendAudit(actor, models.ActionAdded, models.EntitySalesImport,
		fmt.Sprintf("imported %d sales records", len(sales)))
	s.commit(ctx)

	return len(sales), nil
}

// DeleteSale removes a sale.
func (s *Store) DeleteSale(ctx context.Context, actor, id string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.doc.Sales {
		if s.doc.Sales[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrNotFound
	}

	sale := s.doc.Sales[idx]
	s.doc.Sales = append(s.doc.Sales[:idx], s.doc.Sales[idx+1:]...)
	s.appendAudit(actor, models.ActionDeleted, models.EntitySale,
		fmt.Sprintf("%s - %.2f TJS", sale.Outlet, sale.Amount))
	s.commit(ctx)

	return nil
}
