package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ortosalon/backoffice/internal/ledger"
	"github.com/ortosalon/backoffice/internal/models"
)

// EmployeesHandler handles employee-related API endpoints.
type EmployeesHandler struct {
	store *ledger.Store
}

// NewEmployeesHandler creates a new EmployeesHandler.
func NewEmployeesHandler(s *ledger.Store) *EmployeesHandler {
	return &EmployeesHandler{store: s}
}

// List handles GET /api/1/employees.
func (h *EmployeesHandler) List(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{"employees": doc.Employees})
}

// Create handles POST /api/1/employees.
func (h *EmployeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	employee, err := h.store.AddEmployee(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"employee": employee})
}

// Delete handles DELETE /api/1/employees/{id}.
func (h *EmployeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteEmployee(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SalaryPaymentsHandler handles salary payout endpoints.
type SalaryPaymentsHandler struct {
	store *ledger.Store
}

// NewSalaryPaymentsHandler creates a new SalaryPaymentsHandler.
func NewSalaryPaymentsHandler(s *ledger.Store) *SalaryPaymentsHandler {
	return &SalaryPaymentsHandler{store: s}
}

// List handles GET /api/1/salary_payments.
func (h *SalaryPaymentsHandler) List(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string]interface{}{"salary_payments": doc.SalaryPayments})
}

// Create handles POST /api/1/salary_payments.
func (h *SalaryPaymentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSalaryPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	payment, err := h.store.AddSalaryPayment(r.Context(), actorFrom(r), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"salary_payment": payment})
}

// Delete handles DELETE /api/1/salary_payments/{id}.
func (h *SalaryPaymentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteSalaryPayment(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
		writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
