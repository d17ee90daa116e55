package ledger

import (
	"context"
	"fmt"

	"github.com/ortosalon/backoffice/internal/models"
)

// UpdateExchangeRate sets a new TJS-per-USD rate and re-derives every
// derived amount from its authoritative counterpart: supplier USD balances
// from their TJS debt, USD amounts of TJS-entered records from their TJS
// amount, and TJS amounts of USD-entered records from their USD amount.
// A record's originally entered value is never recomputed.
func (s *Store) UpdateExchangeRate(ctx context.Context, actor string, rate float64) error {
	if rate <= 0 {
		return validationErr("rate", "exchange rate must be positive")
	}

	s.mu.Lock()

	oldRate := s.doc.ExchangeRate
	s.doc.ExchangeRate = rate

	for i := range s.doc.Suppliers {
		s.doc.Suppliers[i].DebtUSD = s.doc.Suppliers[i].Debt / rate
	}

	for i := range s.doc.Purchases {
		p := &s.doc.Purchases[i]
		if p.Currency == models.CurrencyUSD {
			p.Amount = p.AmountUSD * rate
		} else {
			p.AmountUSD = p.Amount / rate
		}
	}

	for i := range s.doc.SupplierPayments {
		p := &s.doc.SupplierPayments[i]
		if p.Currency == models.CurrencyUSD {
			p.Amount = p.AmountUSD * rate
		} else {
			p.AmountUSD = p.Amount / rate
		}
	}

	s.appendAudit(actor, models.ActionModified, models.EntityExchangeRate,
		fmt.Sprintf("%.4f -> %.4f TJS per USD", oldRate, rate))
	s.commit(ctx)

	return nil
}
