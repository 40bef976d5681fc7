package model

import (
	"github.com/shopspring/decimal"
)

// Record is one transaction row as it appears in a statement table.
type Record struct {
	Date        string
	Description string // row description plus any continuation lines
	Amount      string // raw amount text, e.g. "$1,234.56"; a trailing U+00AD marks a debit
	Line        int    // 1-based source line of the row
}

// Transaction is a normalized statement transaction.
type Transaction struct {
	Date        string
	Description string
	Amount      decimal.Decimal // negative = debit, positive = credit
}
