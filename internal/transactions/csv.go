// Package transactions reads and writes normalized transactions.
package transactions

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/budget-tools/bankstatement/internal/model"
)

// Header is the CSV header for transaction files.
const Header = "date,description,amount"

const numFields = 3

// csvRow is one transaction as stored in CSV. Field order is column order.
type csvRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
}

// WriteCSV writes txns with a header row. Amounts use two decimals, or
// more when the amount carries more.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	rows := make([]csvRow, len(txns))
	for i, tx := range txns {
		rows[i] = marshalRow(tx)
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("writing transactions CSV: %w", err)
	}
	return nil
}

// ReadCSV reads a transaction CSV such as the one WriteCSV produces. The
// first row is skipped whatever it holds. Columns are taken by position:
// the first three are date, description and amount, and any further
// columns are ignored.
func ReadCSV(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading transactions CSV header: %w", err)
	}

	var rows []csvRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(&leadingColumns{r: cr, n: numFields}, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	var txns []model.Transaction
	for i, row := range rows {
		tx, err := unmarshalRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, tx)
	}
	return txns, nil
}

// leadingColumns is a gocsv.CSVReader that yields the first n fields of
// each record and rejects shorter records.
type leadingColumns struct {
	r *csv.Reader
	n int
}

func (c *leadingColumns) Read() ([]string, error) {
	rec, err := c.r.Read()
	if err != nil {
		return nil, err
	}
	if len(rec) < c.n {
		line, _ := c.r.FieldPos(0)
		return nil, fmt.Errorf("record on line %d: expected at least %d fields, got %d", line, c.n, len(rec))
	}
	return rec[:c.n], nil
}

func (c *leadingColumns) ReadAll() ([][]string, error) {
	var recs [][]string
	for {
		rec, err := c.Read()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

func marshalRow(tx model.Transaction) csvRow {
	return csvRow{
		Date:        tx.Date,
		Description: tx.Description,
		Amount:      formatAmount(tx.Amount),
	}
}

// formatAmount writes two decimals unless that would drop precision, as
// for a passthrough amount like 1.005.
func formatAmount(d decimal.Decimal) string {
	if d.Equal(d.Round(2)) {
		return d.StringFixed(2)
	}
	return d.String()
}

func unmarshalRow(row csvRow) (model.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", row.Amount, err)
	}
	return model.Transaction{
		Date:        row.Date,
		Description: row.Description,
		Amount:      amount,
	}, nil
}
