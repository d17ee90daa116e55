package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/ortosalon/backoffice/internal/models"
)

// validMethod reports whether the payment method is one of the enumerated
// methods. An empty method is allowed and treated as cash.
func validMethod(method string) bool {
	switch method {
	case "", models.PaymentMethodCash, models.PaymentMethodBank, models.PaymentMethodCard:
		return true
	}
	return false
}

// RecordPayment records money paid to a supplier against its debt. The
// payment's TJS amount may not exceed the supplier's current debt; a payment
// that would drive the debt negative is rejected with the store unchanged.
func (s *Store) RecordPayment(ctx context.Context, actor string, req models.CreateSupplierPaymentRequest) (*models.SupplierPayment, error) {
	if req.SupplierID == "" {
		return nil, validationErr("supplierId", "supplier is required")
	}
	if !validCurrency(req.Currency) {
		return nil, validationErr("currency", fmt.Sprintf("unknown currency %q", req.Currency))
	}
	if !validMethod(req.Method) {
		return nil, validationErr("method", fmt.Sprintf("unknown payment method %q", req.Method))
	}
	if req.Date == "" {
		return nil, validationErr("date", "date is required")
	}
	if req.Amount <= 0 {
		return nil, validationErr("amount", "amount must be positive")
	}
	if req.Commission < 0 {
		return nil, validationErr("commission", "commission must not be negative")
	}

	s.mu.Lock()

	idx := s.findSupplier(req.SupplierID)
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	supplier := &s.doc.Suppliers[idx]

	amountTJS, amountUSD := resolveAmounts(req.Amount, req.Currency, s.doc.ExchangeRate)
	if amountTJS > supplier.Debt {
		debt := supplier.Debt
		s.mu.Unlock()
		return nil, validationErr("amount",
			fmt.Sprintf("payment of %.2f TJS exceeds supplier debt of %.2f TJS", amountTJS, debt))
	}

	method := req.Method
	if method == "" {
		method = models.PaymentMethodCash
	}

	payment := models.SupplierPayment{
		ID:           models.NewID("supplierpayment"),
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		Amount:       amountTJS,
		AmountUSD:    amountUSD,
		Currency:     req.Currency,
		Commission:   req.Commission,
		Method:       method,
		Date:         req.Date,
		AddedBy:      actor,
		Timestamp:    time.Now(),
	}

	s.doc.SupplierPayments = append(s.doc.SupplierPayments, payment)
	supplier.Debt -= amountTJS
	supplier.DebtUSD -= amountUSD

	s.appendAudit(actor, models.ActionAdded, models.EntitySupplierPayment,
		fmt.Sprintf("%s - %s", supplier.Name, fmtAmount(req.Amount, req.Currency)))
	s.commit(ctx)

	return &payment, nil
}

// EditPayment changes a payment's amount, currency, commission, method or
// date. The stored effect is reversed before the new amount is applied:
// first the old TJS/USD amounts are added back onto the supplier's debt,
// then the new amount is resolved at the current rate and subtracted.
// Applying the new value first would corrupt the balance if the rate changed
// since the payment was recorded.
func (s *Store) EditPayment(ctx context.Context, actor, id string, req models.UpdateSupplierPaymentRequest) (*models.SupplierPayment, error) {
	if !validCurrency(req.Currency) {
		return nil, validationErr("currency", fmt.Sprintf("unknown currency %q", req.Currency))
	}
	if !validMethod(req.Method) {
		return nil, validationErr("method", fmt.Sprintf("unknown payment method %q", req.Method))
	}
	if req.Date == "" {
		return nil, validationErr("date", "date is required")
	}
	if req.Amount <= 0 {
		return nil, validationErr("amount", "amount must be positive")
	}
	if req.Commission < 0 {
		return nil, validationErr("commission", "commission must not be negative")
	}

	s.mu.Lock()

	idx := -1
	for i := range s.doc.SupplierPayments {
		if s.doc.SupplierPayments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	payment := &s.doc.SupplierPayments[idx]

	sIdx := s.findSupplier(payment.SupplierID)
	if sIdx == -1 {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	supplier := &s.doc.Suppliers[sIdx]

	// Phase 1: reverse the stored effect.
	supplier.Debt += payment.Amount
	supplier.DebtUSD += payment.AmountUSD

	// Phase 2: reapply at the current rate, still honoring the debt cap.
	amountTJS, amountUSD := resolveAmounts(req.Amount, req.Currency, s.doc.ExchangeRate)
	if amountTJS > supplier.Debt {
		// Undo the reversal so the failed edit leaves no trace.
		supplier.Debt -= payment.Amount
		supplier.DebtUSD -= payment.AmountUSD
		debt := supplier.Debt + payment.Amount
		s.mu.Unlock()
		return nil, validationErr("amount",
			fmt.Sprintf("payment of %.2f TJS exceeds supplier debt of %.2f TJS", amountTJS, debt))
	}
	supplier.Debt -= amountTJS
	supplier.DebtUSD -= amountUSD

	method := req.Method
	if method == "" {
		method = models.PaymentMethodCash
	}

	payment.Amount = amountTJS
	payment.AmountUSD = amountUSD
	payment.Currency = req.Currency
	payment.Commission = req.Commission
	payment.Method = method
	payment.Date = req.Date

	updated := *payment

	s.appendAudit(actor, models.ActionModified, models.EntitySupplierPayment,
		fmt.Sprintf("%s - %s", payment.SupplierName, fmtAmount(req.Amount, req.Currency)))
	s.commit(ctx)

	return &updated, nil
}

// DeletePayment removes a payment and adds its amounts back onto the
// supplier's debt.
func (s *Store) DeletePayment(ctx context.Context, actor, id string) error {
	s.mu.Lock()

	idx := -1
	for i := range s.doc.SupplierPayments {
		if s.doc.SupplierPayments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return ErrNotFound
	}

	payment := s.doc.SupplierPayments[idx]
	s.doc.SupplierPayments = append(s.doc.SupplierPayments[:idx], s.doc.SupplierPayments[idx+1:]...)

	if sIdx := s.findSupplier(payment.SupplierID); sIdx != -1 {
		s.doc.Suppliers[sIdx].Debt += payment.Amount
		s.doc.Suppliers[sIdx].DebtUSD += payment.AmountUSD
	}

	s.appendAudit(actor, models.ActionDeleted, models.EntitySupplierPayment,
		fmt.Sprintf("%s - %.2f TJS", payment.SupplierName, payment.Amount))
	s.commit(ctx)

	return nil
}
