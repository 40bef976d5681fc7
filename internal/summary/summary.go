// Package summary totals a set of transactions.
package summary

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/budget-tools/bankstatement/internal/model"
)

// Summary holds statement totals. Dates compare as text, the same order
// the converter sorts by.
type Summary struct {
	Count     int
	Credits   decimal.Decimal
	Debits    decimal.Decimal // zero or negative
	Net       decimal.Decimal
	FirstDate string
	LastDate  string
}

// Summarize totals txns.
func Summarize(txns []model.Transaction) Summary {
	var s Summary
	for i, tx := range txns {
		s.Count++
		if tx.Amount.IsNegative() {
			s.Debits = s.Debits.Add(tx.Amount)
		} else {
			s.Credits = s.Credits.Add(tx.Amount)
		}
		if i == 0 || tx.Date < s.FirstDate {
			s.FirstDate = tx.Date
		}
		if i == 0 || tx.Date > s.LastDate {
			s.LastDate = tx.Date
		}
	}
	s.Net = s.Credits.Add(s.Debits)
	return s
}

// Lines renders the summary for display, formatting amounts in the given
// ISO-4217 currency.
func (s Summary) Lines(currency string) ([]string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if err := CheckCurrency(currency); err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("Transactions: %d", s.Count)}
	if s.Count > 0 {
		lines = append(lines, fmt.Sprintf("Period:       %s - %s", s.FirstDate, s.LastDate))
	}
	lines = append(lines,
		"Credits:      "+Format(s.Credits, currency),
		"Debits:       "+Format(s.Debits, currency),
		"Net:          "+Format(s.Net, currency),
	)
	return lines, nil
}

// CheckCurrency returns an error unless code is a known ISO-4217 code.
func CheckCurrency(code string) error {
	if money.GetCurrency(strings.ToUpper(strings.TrimSpace(code))) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// Format renders amount with the currency's symbol and grouping, rounding
// to the currency's minor unit. Unknown currencies fall back to USD.
func Format(amount decimal.Decimal, currency string) string {
	c := money.GetCurrency(currency)
	if c == nil {
		currency = "USD"
		c = money.GetCurrency(currency)
	}
	multiplier := decimal.New(1, int32(c.Fraction))
	units := amount.Mul(multiplier).Round(0).IntPart()
	return money.New(units, currency).Display()
}
