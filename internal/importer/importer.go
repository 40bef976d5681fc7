// Package importer turns statement files into transactions. Each input
// format has a Parser; a Registry maps format names to parsers.
package importer

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/budget-tools/bankstatement/internal/model"
	"github.com/budget-tools/bankstatement/internal/normalize"
)

// Built-in input formats.
const (
	FormatFECCCU = "fecccu"
	FormatCSV    = "csv"
)

// Parser converts a statement into transactions.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewRegistryWith returns a registry with all built-in parsers, the
// statement parser using n and logger. A nil n means the default rules.
func NewRegistryWith(n *normalize.Normalizer, logger *log.Logger) *Registry {
	r := NewRegistry()
	r.Register(NewFECCCUParser(n, logger))
	r.Register(&CSVParser{})
	return r
}
