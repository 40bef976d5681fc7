package scanner

import (
	"regexp"
	"strings"
)

// Kind classifies one line of statement text.
type Kind int

const (
	Continuation Kind = iota
	TableStart
	Header
	HeaderCheckRecon // header whose second line must be discarded
	BeginBalance
	EndBalance
	PageBreak
	TransactionRow
	Blank
)

var kindNames = [...]string{
	Continuation:     "continuation",
	TableStart:       "table-start",
	Header:           "header",
	HeaderCheckRecon: "header-check-recon",
	BeginBalance:     "begin-balance",
	EndBalance:       "end-balance",
	PageBreak:        "page-break",
	TransactionRow:   "transaction-row",
	Blank:            "blank",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

var (
	endBalanceRe   = regexp.MustCompile(`^[\s0-9/]*\*\* Ending Balance \*\*`)
	beginBalanceRe = regexp.MustCompile(`^[\s0-9/]*\* Beginning Balance \*`)
	pageBreakRe    = regexp.MustCompile(`Page [0-9]+ of [0-9]+\s*$`)
	headerRe       = regexp.MustCompile(`^\s*Date\s*Transaction Type`)
	checkReconRe   = regexp.MustCompile(`\*\* Check Recon \*\*\s*$`)
	tableStartRe   = regexp.MustCompile(`^\s*Transaction Detail`)
	rowDateRe      = regexp.MustCompile(`^[0-9/]+`)

	// Columns are separated by two or more blanks; descriptions contain single spaces.
	fieldSepRe = regexp.MustCompile(`\s{2,}`)
)

// Classify returns the kind of a raw line. Balance and page markers win
// over everything else, so a balance line that starts with a date is
// never taken for a transaction row.
func Classify(line string) Kind {
	switch {
	case endBalanceRe.MatchString(line):
		return EndBalance
	case beginBalanceRe.MatchString(line):
		return BeginBalance
	case pageBreakRe.MatchString(line):
		return PageBreak
	case headerRe.MatchString(line):
		if checkReconRe.MatchString(line) {
			return HeaderCheckRecon
		}
		return Header
	case tableStartRe.MatchString(line):
		return TableStart
	}

	stripped := strings.TrimSpace(line)
	switch {
	case stripped == "":
		return Blank
	case rowDateRe.MatchString(stripped):
		return TransactionRow
	default:
		return Continuation
	}
}

// isTableStart reports whether line opens a transaction table, whatever
// else shares the line.
func isTableStart(line string) bool {
	return tableStartRe.MatchString(line)
}

// headerKind reports whether line is a table header and which variant.
func headerKind(line string) (Kind, bool) {
	if !headerRe.MatchString(line) {
		return Continuation, false
	}
	if checkReconRe.MatchString(line) {
		return HeaderCheckRecon, true
	}
	return Header, true
}

// rowFields is a transaction row split into its named columns.
type rowFields struct {
	date        string
	description string
	amount      string
}

// minRowFields covers date, description, amount and running balance.
const minRowFields = 4

// splitRow splits a transaction row on runs of two or more whitespace
// characters. The amount is the second-to-last column; the last one is
// the running balance.
func splitRow(line string) (rowFields, bool) {
	fields := fieldSepRe.Split(strings.TrimSpace(line), -1)
	if len(fields) < minRowFields {
		return rowFields{}, false
	}
	return rowFields{
		date:        fields[0],
		description: fields[1],
		amount:      fields[len(fields)-2],
	}, true
}
