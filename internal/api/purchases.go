package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ortosalon/backoffice/internal/ledger"
	"github.com/ortosalon/backoffice/internal/models"
)

// PurchasesHandler handles purchase-related API endpoints.
type PurchasesHandler struct {
	store *ledger.Store
}

// NewPurchasesHandler creates a new PurchasesHandler.
func NewPurchasesHandler(s *ledger.Store) *PurchasesHandler {
	return &PurchasesHandler{store: s}
}

// List handles GET /api/1/purchases.
func (h *PurchasesHandler) List(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{"purchases": doc.Purchases})
}

// Create handles POST /api/1/purchases.
func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	purchase, err := h.store.RecordPurchase(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"purchase": purchase})
}

// Delete handles DELETE /api/1/purchases/{id}.
func (h *PurchasesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePurchase(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SupplierPaymentsHandler handles supplier payment API endpoints.
type SupplierPaymentsHandler struct {
	store *ledger.Store
}

// NewSupplierPaymentsHandler creates a new SupplierPaymentsHandler.
func NewSupplierPaymentsHandler(s *ledger.Store) *SupplierPaymentsHandler {
	return &SupplierPaymentsHandler{store: s}
}

// List handles GET /api/1/supplier_payments.
func (h *SupplierPaymentsHandler) List(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{"supplier_payments": doc.SupplierPayments})
}

// Create handles POST /api/1/supplier_payments.
func (h *SupplierPaymentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSupplierPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	payment, err := h.store.RecordPayment(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"supplier_payment": payment})
}

// Update handles PUT /api/1/supplier_payments/{id}. The old payment's debt
// effect is reversed before the new amount is applied.
func (h *SupplierPaymentsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateSupplierPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	payment, err := h.store.EditPayment(r.Context(), actorFrom(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"supplier_payment": payment})
}

// Delete handles DELETE /api/1/supplier_payments/{id}.
func (h *SupplierPaymentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeletePayment(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
