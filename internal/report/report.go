// Package report computes derived numeric views over a ledger record list.
// Every function is pure: no mutation of the input, no I/O, cheap enough to
// recompute after every edit.
package report

import (
	"sort"
	"time"

	"github.com/communityworks/grantledger/internal/ledger"
)

// Placeholder labels for records missing a vendor or item name.
const (
	UnknownVendor   = "Unknown Vendor"
	UnspecifiedItem = "Unspecified Item"
)

// MonthBucket is one calendar month's slice of the ledger. Months with no
// matching records still appear with a zero total.
type MonthBucket struct {
	Month   time.Month
	Total   int64
	Count   int
	Records []*ledger.Record
}

// QuarterBucket is the quarterly analogue of MonthBucket. Grouping uses the
// quarter stored on each record, not a re-derivation from its date.
type QuarterBucket struct {
	Quarter ledger.Quarter
	Total   int64
	Count   int
	Records []*ledger.Record
}

// GroupTotal is one row of a dimension-sliced aggregate (category, vendor
// or item name).
type GroupTotal struct {
	Key   string
	Total int64
	Count int
}

// ByMonth groups records into the 12 calendar months by the month component
// of their pay date.
func ByMonth(records []*ledger.Record) []MonthBucket {
	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1)
	}

	for _, rec := range records {
		b := &buckets[ledger.MonthOf(rec.PayDate)-1]
		b.Total += rec.Amount
		b.Count++
		b.Records = append(b.Records, rec)
	}

	return buckets
}

// ByQuarter groups records into Q1..Q4 by their stored quarter field.
func ByQuarter(records []*ledger.Record) []QuarterBucket {
	quarters := []ledger.Quarter{ledger.Q1, ledger.Q2, ledger.Q3, ledger.Q4}

	index := make(map[ledger.Quarter]int, len(quarters))
	buckets := make([]QuarterBucket, len(quarters))

	for i, q := range quarters {
		buckets[i].Quarter = q
		index[q] = i
	}

	for _, rec := range records {
		i, ok := index[rec.Quarter]
		if !ok {
			continue
		}

		buckets[i].Total += rec.Amount
		buckets[i].Count++
		buckets[i].Records = append(buckets[i].Records, rec)
	}

	return buckets
}

// ByCategory sums records per main category, descending by total.
func ByCategory(records []*ledger.Record) []GroupTotal {
	return groupBy(records, func(rec *ledger.Record) string {
		return rec.MainCategory
	})
}

// ByVendor sums records per vendor, descending by total. Records without a
// vendor fall back to their description, then to the UnknownVendor label.
func ByVendor(records []*ledger.Record) []GroupTotal {
	return groupBy(records, func(rec *ledger.Record) string {
		return firstNonEmpty(rec.Vendor, rec.Description, UnknownVendor)
	})
}

// ByItem sums records per item name, descending by total, falling back to
// description and the UnspecifiedItem label.
func ByItem(records []*ledger.Record) []GroupTotal {
	return groupBy(records, func(rec *ledger.Record) string {
		return firstNonEmpty(rec.Name, rec.Description, UnspecifiedItem)
	})
}

// Top returns at most n leading rows of a dimension aggregate. n <= 0 means
// no truncation; the full aggregate always stays computable.
func Top(groups []GroupTotal, n int) []GroupTotal {
	if n <= 0 || n >= len(groups) {
		return groups
	}

	return groups[:n]
}

// TopTransactions returns the n largest individual records by amount,
// descending. The input slice is left untouched.
func TopTransactions(records []*ledger.Record, n int) []*ledger.Record {
	sorted := make([]*ledger.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted
}

// FunderSpend sums all records attributed to the named funder. The match is
// exact and case-sensitive.
func FunderSpend(records []*ledger.Record, name string) int64 {
	var total int64

	for _, rec := range records {
		if rec.Funder == name {
			total += rec.Amount
		}
	}

	return total
}

// TotalAmount is the flat sum over every record.
func TotalAmount(records []*ledger.Record) int64 {
	var total int64

	for _, rec := range records {
		total += rec.Amount
	}

	return total
}

func groupBy(records []*ledger.Record, key func(*ledger.Record) string) []GroupTotal {
	index := make(map[string]int)

	var groups []GroupTotal

	for _, rec := range records {
		k := key(rec)

		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i

			groups = append(groups, GroupTotal{Key: k})
		}

		groups[i].Total += rec.Amount
		groups[i].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})

	return groups
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
