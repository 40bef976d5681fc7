package importer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/budget-tools/bankstatement/internal/model"
	"github.com/budget-tools/bankstatement/internal/normalize"
	"github.com/budget-tools/bankstatement/internal/scanner"
)

// FECCCUParser reads the layout text of a credit union statement: the
// scanner rebuilds the transaction tables and the normalizer cleans them.
type FECCCUParser struct {
	normalizer *normalize.Normalizer
	logger     *log.Logger
}

// NewFECCCUParser returns a statement parser. A nil normalizer means the
// default rules; a nil logger disables logging.
func NewFECCCUParser(n *normalize.Normalizer, logger *log.Logger) *FECCCUParser {
	if n == nil {
		n = normalize.Default()
	}
	return &FECCCUParser{normalizer: n, logger: logger}
}

// Format returns "fecccu".
func (p *FECCCUParser) Format() string { return FormatFECCCU }

// Parse scans r and returns normalized transactions sorted by date.
func (p *FECCCUParser) Parse(r io.Reader) ([]model.Transaction, error) {
	s := scanner.New(scanner.WithLogger(p.logger))
	records, err := s.Scan(r)
	if err != nil {
		return nil, fmt.Errorf("scanning statement: %w", err)
	}

	txns, err := p.normalizer.Normalize(records)
	if err != nil {
		return nil, fmt.Errorf("normalizing statement: %w", err)
	}

	if p.logger != nil {
		p.logger.Info("parsed statement",
			"tables", s.Tables(),
			"records", len(records),
			"transactions", len(txns),
			"filtered", len(records)-len(txns))
	}
	return txns, nil
}
