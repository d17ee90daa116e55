package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ortosalon/backoffice/internal/ledger"
	"github.com/ortosalon/backoffice/internal/models"
)

// SuppliersHandler handles supplier-related API endpoints.
type SuppliersHandler struct {
	store *ledger.Store
}

// NewSuppliersHandler creates a new SuppliersHandler.
func NewSuppliersHandler(s *ledger.Store) *SuppliersHandler {
	return &SuppliersHandler{store: s}
}

// List handles GET /api/1/suppliers.
func (h *SuppliersHandler) List(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{"suppliers": doc.Suppliers})
}

// Create handles POST /api/1/suppliers.
func (h *SuppliersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	supplier, err := h.store.RegisterSupplier(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"supplier": supplier})
}

// Delete handles DELETE /api/1/suppliers/{id}. Deleting a supplier also
// removes all its purchases and payments.
func (h *SuppliersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSupplier(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExchangeRateHandler handles the exchange rate endpoints.
type ExchangeRateHandler struct {
	store *ledger.Store
}

// NewExchangeRateHandler creates a new ExchangeRateHandler.
func NewExchangeRateHandler(s *ledger.Store) *ExchangeRateHandler {
	return &ExchangeRateHandler{store: s}
}

// Get handles GET /api/1/exchange_rate.
func (h *ExchangeRateHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"rate": h.store.ExchangeRate()})
}

// Update handles PUT /api/1/exchange_rate. A rate change re-derives every
// derived currency amount in the document.
func (h *ExchangeRateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateExchangeRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	if err := h.store.UpdateExchangeRate(r.Context(), actorFrom(r), req.Rate); err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"rate": h.store.ExchangeRate()})
}
