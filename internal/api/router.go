package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ortosalon/backoffice/internal/auth"
	"github.com/ortosalon/backoffice/internal/config"
	"github.com/ortosalon/backoffice/internal/ledger"
)

// NewRouter builds the full API router.
func NewRouter(store *ledger.Store, authManager *auth.Manager, business *config.Business) *chi.Mux {
	authHandler := NewAuthHandler(authManager)
	salesHandler := NewSalesHandler(store)
	expensesHandler := NewExpensesHandler(store)
	employeesHandler := NewEmployeesHandler(store)
	salaryPaymentsHandler := NewSalaryPaymentsHandler(store)
	suppliersHandler := NewSuppliersHandler(store)
	purchasesHandler := NewPurchasesHandler(store)
	supplierPaymentsHandler := NewSupplierPaymentsHandler(store)
	exchangeRateHandler := NewExchangeRateHandler(store)
	reportsHandler := NewReportsHandler(store, business)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Authentication endpoints (no token required for login).
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)

	// API endpoints (authentication required).
	r.Route("/api/1", func(r chi.Router) {
		r.Use(AuthMiddleware(authManager))

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", salesHandler.List)
			r.Post("/", salesHandler.Create)
			r.Post("/import", salesHandler.Import)
			r.Delete("/{id}", salesHandler.Delete)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", expensesHandler.List)
			r.Post("/", expensesHandler.Create)
			r.Delete("/{id}", expensesHandler.Delete)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeesHandler.List)
			r.Post("/", employeesHandler.Create)
			r.Delete("/{id}", employeesHandler.Delete)
		})

		r.Route("/salary_payments", func(r chi.Router) {
			r.Get("/", salaryPaymentsHandler.List)
			r.Post("/", salaryPaymentsHandler.Create)
			r.Delete("/{id}", salaryPaymentsHandler.Delete)
		})

		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", suppliersHandler.List)
			r.Post("/", suppliersHandler.Create)
			r.Delete("/{id}", suppliersHandler.Delete)
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Get("/", purchasesHandler.List)
			r.Post("/", purchasesHandler.Create)
			r.Delete("/{id}", purchasesHandler.Delete)
		})

		r.Route("/supplier_payments", func(r chi.Router) {
			r.Get("/", supplierPaymentsHandler.List)
			r.Post("/", supplierPaymentsHandler.Create)
			r.Put("/{id}", supplierPaymentsHandler.Update)
			r.Delete("/{id}", supplierPaymentsHandler.Delete)
		})

		r.Route("/exchange_rate", func(r chi.Router) {
			r.Get("/", exchangeRateHandler.Get)
			r.Put("/", exchangeRateHandler.Update)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", reportsHandler.Summary)
			r.Get("/dashboard", reportsHandler.Dashboard)
			r.Get("/daily_sales", reportsHandler.DailySales)
			r.Get("/outlets", reportsHandler.Outlets)
			r.Get("/debt", reportsHandler.Debt)
			r.Get("/expenses", reportsHandler.Expenses)
		})

		r.Get("/audit", reportsHandler.Audit)
	})

	// Health check endpoint. Reports whether the last persist reached the
	// backing store; a degraded store still serves from memory.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		status := map[string]interface{}{"status": "ok"}
		if err := store.LastPersistError(); err != nil {
			status["status"] = "degraded"
			status["persist_error"] = err.Error()
		}
		writeJSON(w, http.StatusOK, status)
	})

	return r
}
