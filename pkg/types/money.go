package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySAR is the only currency the storefront trades in.
const CurrencySAR = "SAR"

// riyalSuffix is the Arabic display suffix used across the storefront.
const riyalSuffix = "ريال"

// Money is a currency amount. Amounts are exact decimals, never floats.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// SAR builds a riyal amount from whole units.
func SAR(units int64) Money {
	return Money{Amount: decimal.NewFromInt(units), Currency: CurrencySAR}
}

// ParseSAR accepts either a bare decimal ("45", "45.50") or the storefront
// display form ("45 ريال").
func ParseSAR(value string) (Money, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), riyalSuffix))
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", value, err)
	}
	return Money{Amount: amount, Currency: CurrencySAR}, nil
}

// Display renders the amount the way the storefront prints prices.
func (m Money) Display() string {
	return m.Amount.String() + " " + riyalSuffix
}

func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Cmp returns -1, 0 or 1 comparing amounts. Currencies are assumed equal.
func (m Money) Cmp(other Money) int {
	return m.Amount.Cmp(other.Amount)
}

func (m Money) LessThan(other Money) bool {
	return m.Cmp(other) < 0
}

// Within reports whether the amount lies in [min, max] inclusive. A nil max
// means "at least min".
func (m Money) Within(min Money, max *Money) bool {
	if m.Cmp(min) < 0 {
		return false
	}
	if max == nil {
		return true
	}
	return m.Cmp(*max) <= 0
}
