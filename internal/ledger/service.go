package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	ListRecords(ctx context.Context, filter ListFilter) ([]*Record, error)
	AppendRecord(ctx context.Context, rec *Record) error
	AppendRecords(ctx context.Context, recs []*Record) error
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	ClearRecords(ctx context.Context) (int, error)
}

// ListFilter narrows a listing to matching records. Nil fields match all.
type ListFilter struct {
	Year         *int
	Funder       *string
	Quarter      *Quarter
	MainCategory *string
}

// Matches reports whether rec satisfies every set filter field.
// Funder comparison is an exact, case-sensitive string match.
func (f ListFilter) Matches(rec *Record) bool {
	if f.Year != nil && rec.Year != *f.Year {
		return false
	}

	if f.Funder != nil && rec.Funder != *f.Funder {
		return false
	}

	if f.Quarter != nil && rec.Quarter != *f.Quarter {
		return false
	}

	if f.MainCategory != nil && rec.MainCategory != *f.MainCategory {
		return false
	}

	return true
}

type Service struct {
	repo        Repository
	defaultYear int
}

// NewService wires a ledger service over a record repository. defaultYear is
// the year assigned when a pay date's year component cannot be parsed.
func NewService(repo Repository, defaultYear int) *Service {
	return &Service{repo: repo, defaultYear: defaultYear}
}

// Create validates manual-entry params and appends a new record.
// A *ValidationError is returned before anything is constructed when a
// required field is missing.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Record, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	rec := New(params, s.defaultYear)
	if err := s.repo.AppendRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("appending record: %w", err)
	}

	return rec, nil
}

// ImportBatch constructs records from already-parsed import rows and appends
// them to the existing collection. Import rows bypass manual-entry
// validation; the importer has already applied its own row filters.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) ([]*Record, error) {
	if len(params) == 0 {
		return nil, nil
	}

	recs := make([]*Record, len(params))
	for i, p := range params {
		recs[i] = New(p, s.defaultYear)
	}

	if err := s.repo.AppendRecords(ctx, recs); err != nil {
		return nil, fmt.Errorf("appending batch: %w", err)
	}

	return recs, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Record, error) {
	return s.repo.ListRecords(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecord(ctx, id)
}

// Clear removes every record and returns how many were dropped.
func (s *Service) Clear(ctx context.Context) (int, error) {
	return s.repo.ClearRecords(ctx)
}
