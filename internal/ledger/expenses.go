package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

// AddExpense records an operating expense.
func (s *Store) AddExpense(ctx context.Context, actor string, req models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Category == "" {
		return nil, validationErr("category", "category is required")
	}
	if req.Date == "" {
		return nil, validationErr("date", "date is required")
	}
	if req.Amount <= 0 {
		return nil, validationErr("amount", "amount must be positive")
	}

	expense := models.Expense{
		ID:          models.NewID("expense"),
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
		AddedBy:     actor,
		Timestamp:   time.Now(),
	}

	s.mu.Lock()
	s.doc.Expenses = append(s.doc.Expenses, expense)
	s.appendAudit(actor, models.ActionAdded, models.EntityExpense,
		fmt.Sprintf("%s - %.2f TJS", expense.Category, expense.Amount))
	s.commit(ctx)

	return &expense, nil
}

// DeleteExpense removes an expense.
func (s *Store) DeleteExpense(ctx context.Context, actor, id string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.doc.Expenses {
		if s.doc.Expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrNotFound
	}

	expense := s.doc.Expenses[idx]
	s.doc.Expenses = append(s.doc.Expenses[:idx], s.doc.Expenses[idx+1:]...)
	s.appendAudit(actor, models.ActionDeleted, models.EntityExpense,
		fmt.Sprintf("%s - %.2f TJS", expense.Category, expense.Amount))
	s.commit(ctx)

	return nil
}
