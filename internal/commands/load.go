package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/budget-tools/bankstatement/internal/importer"
	"github.com/budget-tools/bankstatement/internal/model"
)

// inputOptions are the flags shared by commands that read a statement.
type inputOptions struct {
	format string
	text   bool
}

// parser returns the registered parser for the input format.
func (a *app) parser(format string) (importer.Parser, error) {
	p := a.registry.Get(format)
	if p == nil {
		return nil, fmt.Errorf("unknown input format %q (want %s)", format, strings.Join(a.registry.Formats(), " or "))
	}
	return p, nil
}

// load parses the statement at path. Statement input is rendered to text
// first unless it is already text.
func (a *app) load(ctx context.Context, path string, p importer.Parser, text bool) ([]model.Transaction, error) {
	if p.Format() == importer.FormatFECCCU && !text {
		ex := a.cfg.ExtractorFor()
		if !ex.Available() {
			return nil, fmt.Errorf("%s not found on PATH: install poppler-utils or set extractor.command", ex.Command)
		}
		a.logger.Debug("extracting text", "command", ex.Command, "pdf", path)
		txtPath, err := ex.Extract(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("extracting statement text: %w", err)
		}
		path = txtPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement: %w", err)
	}
	defer f.Close()

	txns, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return txns, nil
}
