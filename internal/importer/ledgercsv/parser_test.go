package ledgercsv_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityworks/grantledger/internal/importer/ledgercsv"
)

func TestParser_TwoRowLedger(t *testing.T) {
	csv := `Date,Category,Subcategory,Vendor,Description,InvoiceNumber,Amount,ItemName
2025-01-15,Operations,Facility rent,Landmark Realty,Monthly Office Lease,CHK-99821,3200.00,Main Office Rent
2025-04-02,NotARealCategory,,Acme,Supplies,INV-1,150.50,Supplies
`

	p := ledgercsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	first := params[0]
	assert.Equal(t, "Main Office Rent", first.Name)
	assert.Equal(t, int64(320000), first.Amount)
	assert.Equal(t, "Operations", first.MainCategory)
	assert.Equal(t, "Facility rent", first.SubCategory)
	assert.Equal(t, "Landmark Realty", first.Vendor)
	assert.Equal(t, "Monthly Office Lease", first.Description)
	assert.Equal(t, "CHK-99821", first.ReferenceNumber)
	assert.Equal(t, "2025-01-15", first.PayDate)

	second := params[1]
	assert.Equal(t, int64(15050), second.Amount)
	assert.Equal(t, "Operations", second.MainCategory, "unknown category normalizes to the default")
	assert.Equal(t, "2025-04-02", second.PayDate)

	assert.Equal(t, int64(335050), first.Amount+second.Amount)
}

func TestParser_QuotedFieldsStripped(t *testing.T) {
	csv := `Date,Vendor,Amount
"2025-03-01","Landmark Realty",3200.00
`

	p := ledgercsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "2025-03-01", params[0].PayDate)
	assert.Equal(t, "Landmark Realty", params[0].Vendor)
}

func TestParser_BadAmountSkipsRow(t *testing.T) {
	csv := `Date,Vendor,Amount
2025-03-01,Acme,not-a-number
2025-03-02,Acme,12.00
2025-03-03,Acme,
`

	p := ledgercsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, int64(1200), params[0].Amount)
}

func TestParser_ShortRowsSkipped(t *testing.T) {
	csv := `Date,Vendor,Amount
2025-03-01,Acme
totals,99
2025-03-02,Acme,12.00
`

	p := ledgercsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, params, 1)
}

func TestParser_NoDateColumnUsesToday(t *testing.T) {
	csv := `Vendor,Description,Amount
Acme,Office chairs,250.00
`

	p := ledgercsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, time.Now().Format(time.DateOnly), params[0].PayDate)
}

func TestParser_UnmatchedColumnsDefaultEmpty(t *testing.T) {
	csv := `Date,Vendor,Amount
2025-05-05,Acme,99.99
`

	p := ledgercsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	row := params[0]
	assert.Equal(t, "Operations", row.MainCategory, "missing category column normalizes to the default")
	assert.Empty(t, row.SubCategory)
	assert.Empty(t, row.Description)
	assert.Empty(t, row.ReferenceNumber)
	assert.Equal(t, "Acme", row.Name, "name falls back to vendor when item and description are absent")
}

func TestParser_NameFallbackToDescription(t *testing.T) {
	csv := `Date,Vendor,Description,Amount
2025-05-05,Acme,Standing desks,99.99
`

	p := ledgercsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
	assert.Equal(t, "Standing desks", params[0].Name)
}

func TestParser_EmptyFile(t *testing.T) {
	p := ledgercsv.NewParser()

	params, err := p.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, params)

	params, err = p.Parse(strings.NewReader("Date,Vendor,Amount\n"))
	require.NoError(t, err)
	assert.Empty(t, params)
}
