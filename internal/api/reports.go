package api

import (
	"net/http"
	"time"

	"github.com/ortosalon/backoffice/internal/config"
	"github.com/ortosalon/backoffice/internal/ledger"
	"github.com/ortosalon/backoffice/internal/report"
)

// ReportsHandler handles the read-only reporting endpoints. All views are
// recomputed from a fresh snapshot on every request.
type ReportsHandler struct {
	store    *ledger.Store
	business *config.Business
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(s *ledger.Store, business *config.Business) *ReportsHandler {
	return &ReportsHandler{store: s, business: business}
}

// Summary handles GET /api/1/reports/summary?from=...&to=...
func (h *ReportsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing from or to date")
		return
	}

	summary, err := report.Summarize(h.store.Snapshot(), from, to, h.business.ProfitRatio)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"summary": summary})
}

// Dashboard handles GET /api/1/reports/dashboard.
func (h *ReportsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	metrics := report.Dashboard(h.store.Snapshot(), time.Now(), h.business.ProfitRatio)
	writeJSON(w, http.StatusOK, map[string]interface{}{"dashboard": metrics})
}

// DailySales handles GET /api/1/reports/daily_sales.
func (h *ReportsHandler) DailySales(w http.ResponseWriter, r *http.Request) {
	series := report.DailySales(h.store.Snapshot(), time.Now(), h.business.Outlets, 30)
	writeJSON(w, http.StatusOK, map[string]interface{}{"daily_sales": series})
}

// Outlets handles GET /api/1/reports/outlets.
func (h *ReportsHandler) Outlets(w http.ResponseWriter, r *http.Request) {
	totals := report.OutletComparison(h.store.Snapshot(), time.Now(), h.business.Outlets)
	writeJSON(w, http.StatusOK, map[string]interface{}{"outlets": totals})
}

// Debt handles GET /api/1/reports/debt.
func (h *ReportsHandler) Debt(w http.ResponseWriter, r *http.Request) {
	summary := report.DebtByCountry(h.store.Snapshot(), h.business.CountryCodes())
	writeJSON(w, http.StatusOK, map[string]interface{}{"debt": summary})
}

// Expenses handles GET /api/1/reports/expenses?from=...&to=...
func (h *ReportsHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing from or to date")
		return
	}

	byCategory, err := report.ExpensesByCategory(h.store.Snapshot(), from, to)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"expenses_by_category": byCategory})
}

// Audit handles GET /api/1/audit?from=...&to=...
func (h *ReportsHandler) Audit(w http.ResponseWriter, r *http.Request) {
	doc := h.store.Snapshot()

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" && to == "" {
		writeJSON(w, http.StatusOK, map[string]interface{}{"audit_log": doc.AuditLog})
		return
	}
	if from == "" || to == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Provide both from and to, or neither")
		return
	}

	entries, err := report.AuditWindow(doc, from, to)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"audit_log": entries})
}
