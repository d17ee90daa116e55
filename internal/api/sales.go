package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ortosalon/backoffice/internal/ledger"
	"github.com/ortosalon/backoffice/internal/models"
)

// SalesHandler handles sale-related API endpoints.
type SalesHandler struct {
	store *ledger.Store
}

// NewSalesHandler creates a new SalesHandler.
func NewSalesHandler(s *ledger.Store) *SalesHandler {
	return &SalesHandler{store: s}
}

// List handles GET /api/1/sales.
func (h *SalesHandler) List(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{"sales": doc.Sales})
}

// Create handles POST /api/1/sales.
func (h *SalesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	sale, err := h.store.AddSale(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"sale": sale})
}

// Import handles POST /api/1/sales/import.
func (h *SalesHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req models.ImportSalesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	count, err := h.store.ImportSales(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"imported": count})
}

// Delete handles DELETE /api/1/sales/{id}.
func (h *SalesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSale(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
