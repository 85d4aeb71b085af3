// Package export serializes ledger records and funder summaries into CSV
// text blobs for download. Output is deterministic for the same input:
// ledger rows are explicitly sorted before writing.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/communityworks/grantledger/internal/funder"
	"github.com/communityworks/grantledger/internal/ledger"
)

// Fixed column orders. The ledger header names line up with the importer's
// keyword lists so an exported file re-imports cleanly.
const (
	ledgerHeader = "Date,Category,Subcategory,Vendor,Description,InvoiceNumber,Amount,Quarter,Year,ItemName,PaymentMethod"
	funderHeader = "Funder,Approved Amount,Spent,Remaining,% Used,Transactions,Status"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Ledger renders records as CSV, one row per record, sorted by pay date then
// id. Text fields are double-quoted; the amount is a plain decimal literal
// so the file stays machine-readable on re-import.
func (s *Service) Ledger(records []*ledger.Record) string {
	sorted := make([]*ledger.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PayDate != sorted[j].PayDate {
			return sorted[i].PayDate < sorted[j].PayDate
		}

		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	var sb strings.Builder

	sb.WriteString(ledgerHeader + "\n")

	for _, rec := range sorted {
		sb.WriteString(strings.Join([]string{
			quote(rec.PayDate),
			quote(rec.MainCategory),
			quote(rec.SubCategory),
			quote(rec.Vendor),
			quote(rec.Description),
			quote(rec.ReferenceNumber),
			FormatAmount(rec.Amount),
			quote(string(rec.Quarter)),
			fmt.Sprintf("%d", rec.Year),
			quote(rec.Name),
			quote(rec.PaymentMethod),
		}, ",") + "\n")
	}

	return sb.String()
}

// FunderSummaries renders one row per funder plus a totals row.
func (s *Service) FunderSummaries(summaries []funder.Summary) string {
	var sb strings.Builder

	sb.WriteString(funderHeader + "\n")

	for _, sum := range summaries {
		sb.WriteString(strings.Join([]string{
			quote(sum.Name),
			FormatAmount(sum.Approved),
			FormatAmount(sum.Spent),
			FormatAmount(sum.Remaining),
			fmt.Sprintf("%.1f%%", sum.PercentUsed),
			fmt.Sprintf("%d", sum.Transactions),
			quote(string(sum.Status)),
		}, ",") + "\n")
	}

	t := funder.Total(summaries)

	sb.WriteString(strings.Join([]string{
		quote("Total"),
		FormatAmount(t.Approved),
		FormatAmount(t.Spent),
		FormatAmount(t.Remaining),
		fmt.Sprintf("%.1f%%", t.PercentUsed),
		fmt.Sprintf("%d", t.Transactions),
		quote(""),
	}, ",") + "\n")

	return sb.String()
}

// FormatAmount renders cents as a plain decimal literal ("3200.00").
func FormatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// quote wraps a text field in double quotes. Embedded quotes and commas are
// dropped rather than escaped; the importer's splitter is not RFC 4180 and
// a stray comma would shift every later column on re-import.
func quote(v string) string {
	v = strings.NewReplacer(`"`, "", ",", " ").Replace(v)

	return `"` + v + `"`
}
