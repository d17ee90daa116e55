package models

import "time"

// Expense represents an operating expense.
type Expense struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Description string    `json:"description,omitempty"`
	AddedBy     string    `json:"addedBy"`
	Timestamp   time.Time `json:"timestamp"`
}

// CreateExpenseRequest represents the request to record an expense.
type CreateExpenseRequest struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}
