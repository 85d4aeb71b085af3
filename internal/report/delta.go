package report

import (
	"math"

	"github.com/communityworks/grantledger/internal/ledger"
)

// ReviewThresholdPct flags a period-over-period swing larger than this
// percentage for qualitative review.
const ReviewThresholdPct = 20.0

// Delta compares one nonzero time bucket against the most recent prior
// bucket that also had spend. Zero buckets never appear in the output and
// never serve as a baseline, so a quiet month does not manufacture a 100%
// jump in the month after it.
type Delta struct {
	Label         string
	Total         int64
	HasBaseline   bool
	BaselineLabel string
	Baseline      int64
	Change        int64
	PctChange     float64
	Flagged       bool
}

// MonthDeltas reports month-over-month spend changes in calendar order.
// The first month with any spend has no comparison baseline and is reported
// as such rather than as a zero or undefined change.
func MonthDeltas(records []*ledger.Record) []Delta {
	buckets := ByMonth(records)

	series := make([]seriesPoint, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, seriesPoint{label: b.Month.String(), total: b.Total})
	}

	return deltas(series)
}

// QuarterDeltas is the quarterly analogue of MonthDeltas, using the stored
// quarter field of each record.
func QuarterDeltas(records []*ledger.Record) []Delta {
	buckets := ByQuarter(records)

	series := make([]seriesPoint, 0, len(buckets))
	for _, b := range buckets {
		series = append(series, seriesPoint{label: string(b.Quarter), total: b.Total})
	}

	return deltas(series)
}

type seriesPoint struct {
	label string
	total int64
}

func deltas(series []seriesPoint) []Delta {
	var out []Delta

	prev := -1 // index of the most recent nonzero bucket

	for i, p := range series {
		if p.total == 0 {
			continue
		}

		d := Delta{Label: p.label, Total: p.total}

		if prev >= 0 {
			base := series[prev]

			d.HasBaseline = true
			d.BaselineLabel = base.label
			d.Baseline = base.total
			d.Change = p.total - base.total
			d.PctChange = float64(d.Change) / float64(base.total) * 100
			d.Flagged = math.Abs(d.PctChange) > ReviewThresholdPct
		}

		out = append(out, d)
		prev = i
	}

	return out
}
