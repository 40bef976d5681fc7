package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// debitMarker is the soft hyphen the statement prints after debit amounts.
const debitMarker = "\u00ad"

// ParseAmount converts a statement amount like "$1,234.56" to a decimal.
// A trailing soft hyphen ("$45.00\u00ad") makes the amount negative.
func ParseAmount(s string) (decimal.Decimal, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "$")
	v = strings.ReplaceAll(v, ",", "")

	negative := strings.HasSuffix(v, debitMarker)
	v = strings.TrimSuffix(v, debitMarker)

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
