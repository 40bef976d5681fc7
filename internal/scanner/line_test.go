package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Kind
	}{
		{"  Transaction Detail", TableStart},
		{"Transaction Detail (continued)", TableStart},
		{"      Date        Transaction Type          Amount     Balance", Header},
		{"Date Transaction Type", Header},
		{"      Date        Transaction Type          Amount     Balance     ** Check Recon **", HeaderCheckRecon},
		{"   01/01/2022     * Beginning Balance *              $1,000.00", BeginBalance},
		{"* Beginning Balance *", BeginBalance},
		{"   01/31/2022     ** Ending Balance **               $2,259.31", EndBalance},
		{"                                          Page 1 of 2", PageBreak},
		{"                                          Page 3 of 12  ", PageBreak},
		{"   01/03/2022     GROCERY MART     $45.00     $955.00", TransactionRow},
		{"01/03", TransactionRow},
		{"                  SPRINGFIELD IL", Continuation},
		{"", Blank},
		{"     \t  ", Blank},
		{"Page 1 of 2 is printed here", Continuation},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.line), "Classify(%q)", tt.line)
	}
}

func TestClassify_BalanceBeatsRow(t *testing.T) {
	// Both balance lines start with a date; they must not become rows.
	assert.Equal(t, BeginBalance, Classify("01/01/2022  * Beginning Balance *  $5.00"))
	assert.Equal(t, EndBalance, Classify("01/31/2022  ** Ending Balance **  $5.00"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transaction-row", TransactionRow.String())
	assert.Equal(t, "header-check-recon", HeaderCheckRecon.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want rowFields
		ok   bool
	}{
		{
			name: "four columns",
			line: "   01/03/2022     POS/WDR 1234 GROCERY MART     $45.00\u00ad     $955.00",
			want: rowFields{date: "01/03/2022", description: "POS/WDR 1234 GROCERY MART", amount: "$45.00\u00ad"},
			ok:   true,
		},
		{
			name: "amount is second to last",
			line: "01/05/2022  ACH/PAYROLL  EMPLOYER INC  $1,234.56  $2,189.56",
			want: rowFields{date: "01/05/2022", description: "ACH/PAYROLL", amount: "$1,234.56"},
			ok:   true,
		},
		{
			name: "tabs count as whitespace",
			line: "01/05/2022\t\tDEPOSIT\t\t$10.00\t\t$20.00",
			want: rowFields{date: "01/05/2022", description: "DEPOSIT", amount: "$10.00"},
			ok:   true,
		},
		{
			name: "single spaces do not split",
			line: "01/05/2022 DEPOSIT $10.00 $20.00",
			ok:   false,
		},
		{
			name: "three columns",
			line: "01/05/2022  DEPOSIT  $10.00",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := splitRow(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
