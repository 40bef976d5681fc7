package importer

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-tools/bankstatement/internal/normalize"
	"github.com/budget-tools/bankstatement/internal/scanner"
)

func openFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open("../../testdata/" + name)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestFECCCUParser_Parse(t *testing.T) {
	p := NewFECCCUParser(nil, nil)
	txns, err := p.Parse(openFixture(t, "fecccu_statement.txt"))
	require.NoError(t, err)
	require.Len(t, txns, 4)

	assert.Equal(t, "01/03/2022", txns[0].Date)
	assert.Equal(t, "GROCERY MART SPRINGFIELD IL", txns[0].Description)
	assert.Equal(t, "-45.00", txns[0].Amount.StringFixed(2))

	assert.Equal(t, "01/04/2022", txns[1].Date)
	assert.Equal(t, "DIVIDEND ANNUAL PERCENTAGE YIELD EARNED APY 0.10%", txns[1].Description)
	assert.Equal(t, "0.52", txns[1].Amount.StringFixed(2))

	assert.Equal(t, "01/05/2022", txns[2].Date)
	assert.Equal(t, "PAYROLL DEPOSIT", txns[2].Description)
	assert.Equal(t, "1234.56", txns[2].Amount.StringFixed(2))

	assert.Equal(t, "01/10/2022", txns[3].Date)
	assert.Equal(t, "GAS STATION", txns[3].Description)
	assert.Equal(t, "-30.25", txns[3].Amount.StringFixed(2))
}

func TestFECCCUParser_NoiseFiltered(t *testing.T) {
	p := NewFECCCUParser(nil, nil)
	txns, err := p.Parse(openFixture(t, "fecccu_statement.txt"))
	require.NoError(t, err)

	for _, tx := range txns {
		assert.NotContains(t, tx.Description, "OVERDRAFT TRANSFER")
		assert.NotContains(t, tx.Description, "PC CU TRANSFER")
	}
}

func TestFECCCUParser_CustomRules(t *testing.T) {
	n, err := normalize.New(normalize.Rules{Noise: []string{"DBT/WDR#5678 GAS STATION"}})
	require.NoError(t, err)

	p := NewFECCCUParser(n, nil)
	txns, err := p.Parse(openFixture(t, "fecccu_statement.txt"))
	require.NoError(t, err)

	// Transfers are kept and no prefix is stripped.
	var descs []string
	for _, tx := range txns {
		descs = append(descs, tx.Description)
	}
	assert.Contains(t, descs, "OVERDRAFT TRANSFER")
	assert.Contains(t, descs, "POS/WDR 1234 GROCERY MART SPRINGFIELD IL")
	assert.NotContains(t, descs, "DBT/WDR#5678 GAS STATION")
	assert.Len(t, txns, 5)
}

func TestFECCCUParser_ScanError(t *testing.T) {
	text := "Transaction Detail\n" +
		"  Date   Transaction Type   Amount   Balance\n" +
		"  WRAPPED WITHOUT A ROW\n"
	p := NewFECCCUParser(nil, nil)
	_, err := p.Parse(strings.NewReader(text))
	require.Error(t, err)
	assert.True(t, errors.Is(err, scanner.ErrNoOpenRecord))
}

func TestFECCCUParser_BadAmount(t *testing.T) {
	text := "Transaction Detail\n" +
		"  Date   Transaction Type   Amount   Balance\n" +
		"  01/03/2022   COFFEE   $4.x5   $995.95\n"
	p := NewFECCCUParser(nil, nil)
	_, err := p.Parse(strings.NewReader(text))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
	assert.Contains(t, err.Error(), "line 3")
}

func TestFECCCUParser_NoTables(t *testing.T) {
	p := NewFECCCUParser(nil, nil)
	txns, err := p.Parse(strings.NewReader("Account Summary\nNothing to see here\n"))
	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestFECCCUParser_Format(t *testing.T) {
	assert.Equal(t, "fecccu", NewFECCCUParser(nil, nil).Format())
}

func TestCSVParser_Parse(t *testing.T) {
	p := &CSVParser{}
	txns, err := p.Parse(openFixture(t, "transactions.csv"))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "GAS STATION, PUMP 4", txns[2].Description)
	assert.Equal(t, "-30.25", txns[2].Amount.StringFixed(2))
}

func TestCSVParser_Format(t *testing.T) {
	p := &CSVParser{}
	assert.Equal(t, "csv", p.Format())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	p := r.Get("csv")
	require.NotNil(t, p)
	assert.Equal(t, "csv", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(NewFECCCUParser(nil, nil))
	assert.NotNil(t, r.Get("FECCCU"))
	assert.NotNil(t, r.Get("Fecccu"))
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&CSVParser{})
	assert.Panics(t, func() { r.Register(&CSVParser{}) })
}

func TestNewRegistryWith(t *testing.T) {
	r := NewRegistryWith(nil, nil)
	assert.NotNil(t, r.Get("fecccu"))
	assert.NotNil(t, r.Get("csv"))
	assert.Equal(t, []string{"csv", "fecccu"}, r.Formats())
}
