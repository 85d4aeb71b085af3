package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityworks/grantledger/internal/export"
	"github.com/communityworks/grantledger/internal/funder"
	"github.com/communityworks/grantledger/internal/importer/ledgercsv"
	"github.com/communityworks/grantledger/internal/ledger"
)

func sampleRecords() []*ledger.Record {
	params := []ledger.CreateParams{
		{
			Name:            "Main Office Rent",
			Amount:          320000,
			MainCategory:    "Operations",
			SubCategory:     "Facility rent",
			Vendor:          "Landmark Realty",
			Description:     "Monthly Office Lease",
			ReferenceNumber: "CHK-99821",
			PaymentMethod:   "Check",
			PayDate:         "2025-01-15",
			Funder:          "Harbor Family Foundation",
		},
		{
			Name:            "Supplies",
			Amount:          15050,
			MainCategory:    "Administrative",
			Vendor:          "Acme",
			Description:     "Office supplies restock",
			ReferenceNumber: "INV-1",
			PayDate:         "2025-04-02",
			Funder:          "United Way General Support",
		},
	}

	records := make([]*ledger.Record, len(params))
	for i, p := range params {
		records[i] = ledger.New(p, 2025)
	}

	return records
}

func TestLedger_Layout(t *testing.T) {
	svc := export.NewService()
	out := svc.Ledger(sampleRecords())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"Date,Category,Subcategory,Vendor,Description,InvoiceNumber,Amount,Quarter,Year,ItemName,PaymentMethod",
		lines[0])

	// Rows are sorted by pay date; the amount is a plain numeric literal.
	assert.Equal(t,
		`"2025-01-15","Operations","Facility rent","Landmark Realty","Monthly Office Lease","CHK-99821",3200.00,"Q1",2025,"Main Office Rent","Check"`,
		lines[1])
	assert.Contains(t, lines[2], `"2025-04-02"`)
	assert.Contains(t, lines[2], "150.50")
}

func TestLedger_Deterministic(t *testing.T) {
	svc := export.NewService()
	records := sampleRecords()

	first := svc.Ledger(records)

	// Same records handed over in reverse produce the same bytes.
	reversed := []*ledger.Record{records[1], records[0]}
	assert.Equal(t, first, svc.Ledger(reversed))
}

func TestLedger_RoundTrip(t *testing.T) {
	records := sampleRecords()

	out := export.NewService().Ledger(records)

	params, err := ledgercsv.NewParser().Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, params, len(records))

	for i, rec := range records {
		got := params[i]
		assert.Equal(t, rec.Amount, got.Amount)
		assert.Equal(t, rec.PayDate, got.PayDate)
		assert.Equal(t, rec.MainCategory, got.MainCategory)
		assert.Equal(t, rec.Vendor, got.Vendor)
		assert.Equal(t, rec.Description, got.Description)
		assert.Equal(t, rec.ReferenceNumber, got.ReferenceNumber)
		assert.Equal(t, rec.Name, got.Name)
	}
}

func TestFunderSummaries(t *testing.T) {
	funders := []funder.Funder{
		{ID: "HFF", Name: "Harbor Family Foundation", Approved: 400000},
		{ID: "UW", Name: "United Way General Support", Approved: 1000000},
	}

	summaries := funder.NewService(funders).Summarize(sampleRecords())
	out := export.NewService().FunderSummaries(summaries)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "Funder,Approved Amount,Spent,Remaining,% Used,Transactions,Status", lines[0])
	assert.Equal(t, `"Harbor Family Foundation",4000.00,3200.00,800.00,80.0%,1,"Monitor"`, lines[1])
	assert.Equal(t, `"United Way General Support",10000.00,150.50,9849.50,1.5%,1,"On Track"`, lines[2])
	assert.Equal(t, `"Total",14000.00,3350.50,10649.50,23.9%,2,""`, lines[3])
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "3200.00", export.FormatAmount(320000))
	assert.Equal(t, "0.05", export.FormatAmount(5))
	assert.Equal(t, "0.00", export.FormatAmount(0))
	assert.Equal(t, "-12.34", export.FormatAmount(-1234))
}
