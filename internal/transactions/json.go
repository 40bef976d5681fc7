package transactions

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/budget-tools/bankstatement/internal/model"
)

// jsonTransaction is the JSON shape of a transaction; amount is a number.
type jsonTransaction struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// WriteJSON writes txns as a JSON array. An empty list is written as [].
func WriteJSON(w io.Writer, txns []model.Transaction) error {
	out := make([]jsonTransaction, len(txns))
	for i, tx := range txns {
		out[i] = jsonTransaction{
			Date:        tx.Date,
			Description: tx.Description,
			Amount:      tx.Amount.InexactFloat64(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing transactions JSON: %w", err)
	}
	return nil
}
