// Package store holds the ledger record collection in memory. Every
// mutation replaces the backing slice with a new one, so slices handed out
// by ListRecords stay valid while the caller aggregates or exports them.
package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/communityworks/grantledger/internal/ledger"
)

type Store struct {
	mu      sync.RWMutex
	records []*ledger.Record
}

func New() *Store {
	return &Store{}
}

func (s *Store) ListRecords(_ context.Context, filter ledger.ListFilter) ([]*ledger.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*ledger.Record, 0, len(s.records))

	for _, rec := range s.records {
		if filter.Matches(rec) {
			out = append(out, rec)
		}
	}

	return out, nil
}

func (s *Store) AppendRecord(_ context.Context, rec *ledger.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = appendCopy(s.records, rec)

	return nil
}

func (s *Store) AppendRecords(_ context.Context, recs []*ledger.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = appendCopy(s.records, recs...)

	return nil
}

func (s *Store) DeleteRecord(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*ledger.Record, 0, len(s.records))
	found := false

	for _, rec := range s.records {
		if rec.ID == id {
			found = true
			continue
		}

		next = append(next, rec)
	}

	if !found {
		return ledger.ErrNotFound
	}

	s.records = next

	return nil
}

func (s *Store) ClearRecords(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.records)
	s.records = nil

	return n, nil
}

// appendCopy never grows the old slice in place; readers holding a slice
// from a previous ListRecords call are unaffected by later appends.
func appendCopy(old []*ledger.Record, recs ...*ledger.Record) []*ledger.Record {
	next := make([]*ledger.Record, 0, len(old)+len(recs))
	next = append(next, old...)
	next = append(next, recs...)

	return next
}
