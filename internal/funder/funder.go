// Package funder models grant-funded budget envelopes and classifies their
// health from the spend recorded against them.
package funder

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/communityworks/grantledger/internal/ledger"
)

// Funder is one budget envelope. Name is the join key ledger records carry
// in their Funder field; Approved is a fixed ceiling in cents, set at
// configuration time and never mutated by transactions.
type Funder struct {
	ID       string
	Name     string
	Approved int64
}

// Defaults is the built-in funder configuration used when none is supplied
// through the environment.
func Defaults() []Funder {
	return []Funder{
		{ID: "CDBG", Name: "Community Development Block Grant", Approved: 12_500_000},
		{ID: "STATE-VS", Name: "State Victim Services Grant", Approved: 9_000_000},
		{ID: "HFF", Name: "Harbor Family Foundation", Approved: 7_500_000},
		{ID: "UW", Name: "United Way General Support", Approved: 4_000_000},
	}
}

// ParseConfig reads a funder list from a "id:name:approved;id:name:approved"
// string, with approved given in whole currency units (for example
// "CDBG:Community Development Block Grant:125000").
func ParseConfig(s string) ([]Funder, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Defaults(), nil
	}

	var funders []Funder

	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("funder entry %q: want id:name:approved", entry)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("funder entry %q: bad approved amount: %w", entry, err)
		}

		if amount.IsNegative() {
			return nil, fmt.Errorf("funder entry %q: approved amount must not be negative", entry)
		}

		funders = append(funders, Funder{
			ID:       strings.TrimSpace(parts[0]),
			Name:     strings.TrimSpace(parts[1]),
			Approved: amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		})
	}

	if len(funders) == 0 {
		return Defaults(), nil
	}

	return funders, nil
}

// Summary is the derived view of one funder: spend and transaction count
// joined from the ledger, plus the qualitative status.
type Summary struct {
	Funder
	Spent        int64
	Remaining    int64
	PercentUsed  float64
	Transactions int
	Status       Status
}

// Totals aggregates the summaries of every configured funder.
type Totals struct {
	Approved     int64
	Spent        int64
	Remaining    int64
	PercentUsed  float64
	Transactions int
}

// Service answers funder-level questions over a caller-supplied record list.
// The funder list itself is immutable after construction.
type Service struct {
	funders []Funder
}

func NewService(funders []Funder) *Service {
	own := make([]Funder, len(funders))
	copy(own, funders)

	return &Service{funders: own}
}

// Funders returns the configured envelope list in configuration order.
func (s *Service) Funders() []Funder {
	out := make([]Funder, len(s.funders))
	copy(out, s.funders)

	return out
}

// Summarize derives the per-funder view from the given records. Records are
// joined by exact, case-sensitive funder name; records naming no configured
// funder are simply not counted here.
func (s *Service) Summarize(records []*ledger.Record) []Summary {
	summaries := make([]Summary, 0, len(s.funders))

	for _, f := range s.funders {
		var spent int64

		count := 0

		for _, rec := range records {
			if rec.Funder != f.Name {
				continue
			}

			spent += rec.Amount
			count++
		}

		summaries = append(summaries, Summary{
			Funder:       f,
			Spent:        spent,
			Remaining:    f.Approved - spent,
			PercentUsed:  percentUsed(f.Approved, spent),
			Transactions: count,
			Status:       Classify(f.Approved, spent),
		})
	}

	return summaries
}

// Total folds a summary list into one overall row.
func Total(summaries []Summary) Totals {
	var t Totals

	for _, sum := range summaries {
		t.Approved += sum.Approved
		t.Spent += sum.Spent
		t.Transactions += sum.Transactions
	}

	t.Remaining = t.Approved - t.Spent
	t.PercentUsed = percentUsed(t.Approved, t.Spent)

	return t
}

func percentUsed(approved, spent int64) float64 {
	if approved <= 0 {
		return 0
	}

	return float64(spent) / float64(approved) * 100
}
