package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ortosalon/backoffice/internal/ledger"
	"github.com/ortosalon/backoffice/internal/models"
)

// ExpensesHandler handles expense-related API endpoints.
type ExpensesHandler struct {
	store *ledger.Store
}

// NewExpensesHandler creates a new ExpensesHandler.
func NewExpensesHandler(s *ledger.Store) *ExpensesHandler {
	return &ExpensesHandler{store: s}
}

// List handles GET /api/1/expenses.
func (h *ExpensesHandler) List(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{"expenses": doc.Expenses})
}

// Create handles POST /api/1/expenses.
func (h *ExpensesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	expense, err := h.store.AddExpense(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"expense": expense})
}

// Delete handles DELETE /api/1/expenses/{id}.
func (h *ExpensesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteExpense(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
