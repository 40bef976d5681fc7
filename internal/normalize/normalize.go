// Package normalize turns raw statement records into typed transactions.
package normalize

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/budget-tools/bankstatement/internal/model"
)

// DefaultNoise lists descriptions of internal transfers that the bank
// books twice; they are not real transactions.
var DefaultNoise = []string{"OVERDRAFT TRANSFER", "PC CU TRANSFER"}

// DefaultBoilerplate matches the channel prefixes the bank puts in front
// of descriptions: "ACH/", "POS/WDR 1234 ", "DBT/WDR#99 ".
const DefaultBoilerplate = `ACH/|(?:POS|DBT)/WDR[ #*]?[0-9]* `

// Rules configures a Normalizer.
type Rules struct {
	Noise       []string // exact descriptions to drop
	Boilerplate string   // regular expression removed from descriptions
}

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return Rules{
		Noise:       slices.Clone(DefaultNoise),
		Boilerplate: DefaultBoilerplate,
	}
}

// Normalizer filters, converts and cleans statement records.
type Normalizer struct {
	noise       map[string]struct{}
	boilerplate *regexp.Regexp
}

// New compiles rules into a Normalizer. An empty boilerplate expression
// leaves descriptions untouched.
func New(rules Rules) (*Normalizer, error) {
	n := &Normalizer{noise: make(map[string]struct{}, len(rules.Noise))}
	for _, d := range rules.Noise {
		n.noise[d] = struct{}{}
	}
	if rules.Boilerplate != "" {
		re, err := regexp.Compile(rules.Boilerplate)
		if err != nil {
			return nil, fmt.Errorf("compiling boilerplate pattern: %w", err)
		}
		n.boilerplate = re
	}
	return n, nil
}

// Default returns a Normalizer with the built-in rules.
func Default() *Normalizer {
	n, err := New(DefaultRules())
	if err != nil {
		panic(err)
	}
	return n
}

// IsNoise reports whether a description is one of the filtered values.
func (n *Normalizer) IsNoise(description string) bool {
	_, ok := n.noise[description]
	return ok
}

// CleanDescription removes every boilerplate match from s.
func (n *Normalizer) CleanDescription(s string) string {
	if n.boilerplate == nil {
		return s
	}
	return n.boilerplate.ReplaceAllString(s, "")
}

// Normalize drops noise records, parses amounts, cleans descriptions and
// sorts the result by date. Noise is matched against the raw description,
// before cleanup.
func (n *Normalizer) Normalize(records []model.Record) ([]model.Transaction, error) {
	txns := make([]model.Transaction, 0, len(records))
	for _, rec := range records {
		if n.IsNoise(rec.Description) {
			continue
		}
		amount, err := ParseAmount(rec.Amount)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		txns = append(txns, model.Transaction{
			Date:        rec.Date,
			Description: n.CleanDescription(rec.Description),
			Amount:      amount,
		})
	}
	SortByDate(txns)
	return txns, nil
}

// SortByDate sorts transactions by their date text, keeping source order
// for equal dates. The comparison is lexicographic: "MM/DD/YYYY" dates
// sort by month and day, not across years.
func SortByDate(txns []model.Transaction) {
	slices.SortStableFunc(txns, func(a, b model.Transaction) int {
		return strings.Compare(a.Date, b.Date)
	})
}
