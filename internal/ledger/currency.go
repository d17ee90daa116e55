package ledger

import (
	"fmt"

	"github.com/ortosalon/backoffice/internal/models"
)

// resolveAmounts resolves an entered amount into both currencies at the
// given rate. The rate means "1 USD = rate TJS", so TJS converts to USD by
// division and USD to TJS by multiplication. The entered currency stays the
// authoritative value; the other is derived.
func resolveAmounts(amount float64, currency models.Currency, rate float64) (tjs, usd float64) {
	if currency == models.CurrencyUSD {
		return amount * rate, amount
	}
	return amount, amount / rate
}

// validCurrency reports whether the currency tag is one of the two supported
// currencies.
func validCurrency(c models.Currency) bool {
	return c == models.CurrencyTJS || c == models.CurrencyUSD
}

// fmtAmount formats an amount for audit details.
func fmtAmount(amount float64, currency models.Currency) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}
