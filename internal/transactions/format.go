package transactions

import (
	"fmt"
	"io"
	"strings"

	"github.com/budget-tools/bankstatement/internal/model"
)

// Format names an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatCSV, FormatJSON, FormatXLSX}

// ParseFormat validates a user-supplied format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want csv, json or xlsx)", s)
}

// Write encodes txns to w in the given format.
func Write(w io.Writer, format Format, txns []model.Transaction) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, txns)
	case FormatJSON:
		return WriteJSON(w, txns)
	case FormatXLSX:
		return WriteXLSX(w, txns)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
