// Package models defines the ledger document and its record types.
package models

// Document is the whole persisted ledger state. The remote store holds it as
// a single JSON value; the running process keeps one authoritative copy in
// memory and overwrites the remote copy after every committed mutation.
type Document struct {
	Sales            []Sale            `json:"sales"`
	Expenses         []Expense         `json:"expenses"`
	Employees        []Employee        `json:"employees"`
	SalaryPayments   []SalaryPayment   `json:"salaryPayments"`
	Suppliers        []Supplier        `json:"suppliers"`
	SupplierPayments []SupplierPayment `json:"supplierPayments"`
	Purchases        []Purchase        `json:"purchases"`
	AuditLog         []AuditEntry      `json:"auditLog"`
	ExchangeRate     float64           `json:"exchangeRate"`
}

// NewDocument returns an empty document with the given exchange rate.
func NewDocument(exchangeRate float64) *Document {
	return &Document{
		Sales:            []Sale{},
		Expenses:         []Expense{},
		Employees:        []Employee{},
		SalaryPayments:   []SalaryPayment{},
		Suppliers:        []Supplier{},
		SupplierPayments: []SupplierPayment{},
		Purchases:        []Purchase{},
		AuditLog:         []AuditEntry{},
		ExchangeRate:     exchangeRate,
	}
}

// Clone returns a deep copy of the document. The ledger hands clones to the
// persistence gateway so a save in flight never observes a half-applied
// mutation.
func (d *Document) Clone() *Document {
	c := &Document{
		Sales:            make([]Sale, len(d.Sales)),
		Expenses:         make([]Expense, len(d.Expenses)),
		Employees:        make([]Employee, len(d.Employees)),
		SalaryPayments:   make([]SalaryPayment, len(d.SalaryPayments)),
		Suppliers:        make([]Supplier, len(d.Suppliers)),
		SupplierPayments: make([]SupplierPayment, len(d.SupplierPayments)),
		Purchases:        make([]Purchase, len(d.Purchases)),
		AuditLog:         make([]AuditEntry, len(d.AuditLog)),
		ExchangeRate:     d.ExchangeRate,
	}
	copy(c.Sales, d.Sales)
	copy(c.Expenses, d.Expenses)
	copy(c.Employees, d.Employees)
	copy(c.SalaryPayments, d.SalaryPayments)
	copy(c.Suppliers, d.Suppliers)
	copy(c.SupplierPayments, d.SupplierPayments)
	copy(c.Purchases, d.Purchases)
	copy(c.AuditLog, d.AuditLog)
	return c
}
