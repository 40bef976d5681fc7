// Package scanner extracts transaction rows from the layout text of a
// FECCCU bank statement.
//
// A statement holds one "Transaction Detail" table per account. Tables
// span page breaks, repeat their header on every page and wrap long
// descriptions onto continuation lines. The scanner walks the text once,
// keeping only the current table's open record as state.
//
// Blank lines inside a table are skipped, and a repeated header is
// consumed even without a preceding page break. Neither is treated as a
// continuation line.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/budget-tools/bankstatement/internal/model"
)

// State is the scanner's position relative to the statement tables.
type State int

const (
	SeekingTable State = iota
	SeekingHeader
	InTable
)

func (s State) String() string {
	switch s {
	case SeekingTable:
		return "seeking-table"
	case SeekingHeader:
		return "seeking-header"
	case InTable:
		return "in-table"
	default:
		return "unknown"
	}
}

// ErrNoOpenRecord is returned when a continuation line appears before any
// transaction row of the current table.
var ErrNoOpenRecord = errors.New("continuation line without a preceding transaction row")

// ErrTooFewColumns is returned for a transaction row that cannot be split
// into date, description, amount and balance columns.
var ErrTooFewColumns = fmt.Errorf("expected at least %d columns", minRowFields)

// RowError reports a line that violates the table layout.
type RowError struct {
	Line int
	Text string
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *RowError) Unwrap() error { return e.Err }

const maxLineSize = 1 << 20

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// Scanner reads statement text and collects transaction records.
type Scanner struct {
	logger *log.Logger

	state    State
	lineNo   int
	skipNext bool
	table    []*model.Record
	open     *model.Record
	records  []model.Record
	tables   int
}

// New creates a Scanner.
func New(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan is shorthand for New().Scan(r).
func Scan(r io.Reader) ([]model.Record, error) {
	return New().Scan(r)
}

// Tables returns the number of tables found by the last Scan.
func (s *Scanner) Tables() int { return s.tables }

// Scan reads r to the end and returns the records of every table, in
// source order. A table left open at end of input keeps its records.
func (s *Scanner) Scan(r io.Reader) ([]model.Record, error) {
	s.reset()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		s.lineNo++
		if err := s.feed(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading statement text: %w", err)
	}

	if s.state != SeekingTable {
		s.debug("input ended inside table", "records", len(s.table))
		s.closeTable()
	}
	return s.records, nil
}

func (s *Scanner) reset() {
	s.state = SeekingTable
	s.lineNo = 0
	s.skipNext = false
	s.table = nil
	s.open = nil
	s.records = nil
	s.tables = 0
}

func (s *Scanner) feed(line string) error {
	if s.skipNext {
		s.skipNext = false
		return nil
	}

	// Outside a table only the table start and header patterns apply; a
	// page footer sharing their line does not hide them.
	switch s.state {
	case SeekingTable:
		if isTableStart(line) {
			s.tables++
			s.state = SeekingHeader
			s.debug("table start", "table", s.tables)
		}
	case SeekingHeader:
		if kind, ok := headerKind(line); ok {
			s.seekHeader(kind)
		}
	case InTable:
		return s.tableLine(Classify(line), line)
	}
	return nil
}

func (s *Scanner) seekHeader(kind Kind) {
	switch kind {
	case Header:
		s.state = InTable
	case HeaderCheckRecon:
		s.state = InTable
		s.skipNext = true
	}
}

func (s *Scanner) tableLine(kind Kind, line string) error {
	switch kind {
	case EndBalance:
		s.debug("table end", "table", s.tables, "records", len(s.table))
		s.closeTable()
		s.state = SeekingTable
	case BeginBalance, Blank:
	case Header, HeaderCheckRecon:
		s.seekHeader(kind)
	case PageBreak:
		s.debug("page break", "table", s.tables)
		s.state = SeekingHeader
	case TransactionRow:
		f, ok := splitRow(line)
		if !ok {
			return s.rowError(line, ErrTooFewColumns)
		}
		rec := &model.Record{
			Date:        f.date,
			Description: f.description,
			Amount:      f.amount,
			Line:        s.lineNo,
		}
		s.table = append(s.table, rec)
		s.open = rec
	default:
		if s.open == nil {
			return s.rowError(line, ErrNoOpenRecord)
		}
		s.open.Description += " " + strings.TrimSpace(line)
	}
	return nil
}

func (s *Scanner) closeTable() {
	for _, rec := range s.table {
		s.records = append(s.records, *rec)
	}
	s.table = nil
	s.open = nil
}

func (s *Scanner) rowError(line string, err error) error {
	return &RowError{Line: s.lineNo, Text: strings.TrimSpace(line), Err: err}
}

func (s *Scanner) debug(msg string, keyvals ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, append(keyvals, "line", s.lineNo)...)
}
