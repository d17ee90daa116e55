package models

import "time"

// Currency identifies which of a record's two stored amounts the user
// actually entered. The other amount is always derived from the exchange
// rate in effect at write time and re-derived on rate updates.
type Currency string

// Supported currencies. TJS is the base ledger currency; USD amounts are
// tracked alongside it via the document's exchange rate.
const (
	CurrencyTJS Currency = "TJS"
	CurrencyUSD Currency = "USD"
)

// Supplier payment methods.
const (
	PaymentMethodCash = "cash"
	PaymentMethodBank = "bank"
	PaymentMethodCard = "card"
)

// Supplier represents a goods supplier with an outstanding debt balance.
// Debt is authoritative in TJS; DebtUSD restates the same balance at the
// last-applied exchange rate.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"` // country code, e.g. TJ, RU, TR, CN
	Debt      float64   `json:"debt"`
	DebtUSD   float64   `json:"debtUSD"`
	AddedBy   string    `json:"addedBy"`
	Timestamp time.Time `json:"timestamp"`
}

// Purchase represents goods received from a supplier on credit. It increases
// the supplier's debt when recorded and is immutable except for deletion,
// which subtracts its amount back out. SupplierName is a snapshot.
type Purchase struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	Amount       float64   `json:"amount"`    // TJS
	AmountUSD    float64   `json:"amountUSD"` // USD
	Currency     Currency  `json:"currency"`  // which amount was entered
	Date         string    `json:"date"`      // YYYY-MM-DD
	Description  string    `json:"description"`
	AddedBy      string    `json:"addedBy"`
	Timestamp    time.Time `json:"timestamp"`
}

// SupplierPayment represents money paid to a supplier against its debt.
// Unlike purchases it is editable; both edit and delete must restore the
// supplier's debt as if the payment's effect had been reversed.
type SupplierPayment struct {
	ID           string    `json:"id"`
	SupplierID   string    `json:"supplierId"`
	SupplierName string    `json:"supplierName"`
	Amount       float64   `json:"amount"`    // TJS
	AmountUSD    float64   `json:"amountUSD"` // USD
	Currency     Currency  `json:"currency"`  // which amount was entered
	Commission   float64   `json:"commission,omitempty"`
	Method       string    `json:"method"` // cash, bank or card
	Date         string    `json:"date"`   // YYYY-MM-DD
	AddedBy      string    `json:"addedBy"`
	Timestamp    time.Time `json:"timestamp"`
}

// CreateSupplierRequest represents the request to register a supplier.
type CreateSupplierRequest struct {
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	InitialDebt float64 `json:"initialDebt"`
}

// CreatePurchaseRequest represents the request to record a purchase.
type CreatePurchaseRequest struct {
	SupplierID  string   `json:"supplierId"`
	Amount      float64  `json:"amount"`
	Currency    Currency `json:"currency"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
}

// CreateSupplierPaymentRequest represents the request to record a payment.
type CreateSupplierPaymentRequest struct {
	SupplierID string   `json:"supplierId"`
	Amount     float64  `json:"amount"`
	Currency   Currency `json:"currency"`
	Commission float64  `json:"commission,omitempty"`
	Method     string   `json:"method"`
	Date       string   `json:"date"`
}

// UpdateSupplierPaymentRequest represents the request to edit a payment.
// The supplier's debt is restored by reversing the stored amounts before the
// new amount is applied.
type UpdateSupplierPaymentRequest struct {
	Amount     float64  `json:"amount"`
	Currency   Currency `json:"currency"`
	Commission float64  `json:"commission,omitempty"`
	Method     string   `json:"method"`
	Date       string   `json:"date"`
}

// UpdateExchangeRateRequest represents the request to set a new TJS-per-USD
// exchange rate.
type UpdateExchangeRateRequest struct {
	Rate float64 `json:"rate"`
}
