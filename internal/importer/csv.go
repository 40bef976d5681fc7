package importer

import (
	"io"

	"github.com/budget-tools/bankstatement/internal/model"
	"github.com/budget-tools/bankstatement/internal/transactions"
)

// CSVParser reads transactions previously written as CSV, unchanged.
type CSVParser struct{}

// Format returns "csv".
func (p *CSVParser) Format() string { return FormatCSV }

// Parse reads date,description,amount rows.
func (p *CSVParser) Parse(r io.Reader) ([]model.Transaction, error) {
	return transactions.ReadCSV(r)
}
