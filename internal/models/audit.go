package models

import "time"

// Audit actions.
const (
	ActionAdded    = "added"
	ActionModified = "modified"
	ActionDeleted  = "deleted"
)

// Audited entity kinds.
const (
	EntitySale            = "sale"
	EntitySalesImport     = "sales_import"
	EntityExpense         = "expense"
	EntityEmployee        = "employee"
	EntitySalaryPayment   = "salary_payment"
	EntitySupplier        = "supplier"
	EntityPurchase        = "purchase"
	EntitySupplierPayment = "supplier_payment"
	EntityExchangeRate    = "exchange_rate"
)

// MaxAuditEntries caps the audit log; the oldest entries are evicted first.
const MaxAuditEntries = 1000

// AuditEntry is one append-only audit log record. Entries are never mutated
// after creation; the log is ordered newest first.
type AuditEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	Details   string    `json:"details"`
}
