package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityworks/grantledger/internal/ledger"
	"github.com/communityworks/grantledger/internal/report"
)

func TestMonthDeltas_SkipsZeroBuckets(t *testing.T) {
	// Spend in January, March and April; February is silent. March must
	// compare against January, not against the empty February.
	records := []*ledger.Record{
		rec(100000, "2025-01-15", "Operations"),
		rec(110000, "2025-03-10", "Operations"),
		rec(200000, "2025-04-01", "Operations"),
	}

	deltas := report.MonthDeltas(records)
	require.Len(t, deltas, 3)

	jan := deltas[0]
	assert.Equal(t, "January", jan.Label)
	assert.False(t, jan.HasBaseline, "first nonzero bucket has no baseline")
	assert.False(t, jan.Flagged)

	mar := deltas[1]
	assert.Equal(t, "March", mar.Label)
	require.True(t, mar.HasBaseline)
	assert.Equal(t, "January", mar.BaselineLabel)
	assert.Equal(t, int64(10000), mar.Change)
	assert.InDelta(t, 10.0, mar.PctChange, 0.001)
	assert.False(t, mar.Flagged, "10% is under the review threshold")

	apr := deltas[2]
	require.True(t, apr.HasBaseline)
	assert.Equal(t, "March", apr.BaselineLabel)
	assert.InDelta(t, 81.818, apr.PctChange, 0.01)
	assert.True(t, apr.Flagged)
}

func TestMonthDeltas_FlagsLargeDrop(t *testing.T) {
	records := []*ledger.Record{
		rec(100000, "2025-05-01", "Operations"),
		rec(50000, "2025-06-01", "Operations"),
	}

	deltas := report.MonthDeltas(records)
	require.Len(t, deltas, 2)

	jun := deltas[1]
	assert.Equal(t, int64(-50000), jun.Change)
	assert.InDelta(t, -50.0, jun.PctChange, 0.001)
	assert.True(t, jun.Flagged, "a drop beyond the threshold is flagged too")
}

func TestMonthDeltas_Empty(t *testing.T) {
	assert.Empty(t, report.MonthDeltas(nil))
}

func TestQuarterDeltas(t *testing.T) {
	records := []*ledger.Record{
		rec(100000, "2025-02-10", "Operations"), // Q1
		rec(118000, "2025-12-01", "Operations"), // Q4
	}

	deltas := report.QuarterDeltas(records)
	require.Len(t, deltas, 2)

	assert.Equal(t, "Q1", deltas[0].Label)
	assert.False(t, deltas[0].HasBaseline)

	q4 := deltas[1]
	assert.Equal(t, "Q4", q4.Label)
	assert.Equal(t, "Q1", q4.BaselineLabel)
	assert.InDelta(t, 18.0, q4.PctChange, 0.001)
	assert.False(t, q4.Flagged)
}
