package funder_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityworks/grantledger/internal/funder"
	"github.com/communityworks/grantledger/internal/ledger"
)

func spend(funderName string, cents int64) *ledger.Record {
	return &ledger.Record{ID: uuid.New(), Amount: cents, Funder: funderName}
}

func TestService_Summarize(t *testing.T) {
	svc := funder.NewService([]funder.Funder{
		{ID: "A", Name: "Alpha Grant", Approved: 100000},
		{ID: "B", Name: "Beta Grant", Approved: 50000},
	})

	records := []*ledger.Record{
		spend("Alpha Grant", 40000),
		spend("Alpha Grant", 40000),
		spend("alpha grant", 99999), // wrong case: never joined
		spend("Gamma Grant", 12345), // unconfigured funder: not counted
		spend("", 777),
	}

	summaries := svc.Summarize(records)
	require.Len(t, summaries, 2)

	alpha := summaries[0]
	assert.Equal(t, "Alpha Grant", alpha.Name)
	assert.Equal(t, int64(80000), alpha.Spent)
	assert.Equal(t, int64(20000), alpha.Remaining)
	assert.InDelta(t, 80.0, alpha.PercentUsed, 0.001)
	assert.Equal(t, 2, alpha.Transactions)
	assert.Equal(t, funder.StatusMonitor, alpha.Status)

	beta := summaries[1]
	assert.Equal(t, int64(0), beta.Spent)
	assert.Equal(t, funder.StatusNoSpending, beta.Status)

	totals := funder.Total(summaries)
	assert.Equal(t, int64(150000), totals.Approved)
	assert.Equal(t, int64(80000), totals.Spent)
	assert.Equal(t, int64(70000), totals.Remaining)
	assert.Equal(t, 2, totals.Transactions)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []funder.Funder
		wantErr bool
	}{
		{
			name:  "EmptyGivesDefaults",
			input: "  ",
			want:  funder.Defaults(),
		},
		{
			name:  "TwoEntries",
			input: "CDBG:Community Development Block Grant:125000; UW:United Way:40000.50",
			want: []funder.Funder{
				{ID: "CDBG", Name: "Community Development Block Grant", Approved: 12_500_000},
				{ID: "UW", Name: "United Way", Approved: 4_000_050},
			},
		},
		{name: "MissingField", input: "CDBG:125000", wantErr: true},
		{name: "BadAmount", input: "CDBG:Block Grant:lots", wantErr: true},
		{name: "NegativeAmount", input: "CDBG:Block Grant:-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := funder.ParseConfig(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
