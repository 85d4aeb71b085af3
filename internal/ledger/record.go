package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Quarter identifies the calendar quarter a record falls in.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// ErrNotFound is returned when a record id does not exist in the collection.
var ErrNotFound = errors.New("record not found")

// Record represents one normalized expense transaction.
//
// Quarter and Year are derived from PayDate once at construction and then
// frozen. The ledger is append/remove only, so the stored values can never
// drift from the date they were derived from.
type Record struct {
	ID              uuid.UUID
	Name            string
	Amount          int64 // Amount in cents
	MainCategory    string
	SubCategory     string
	Vendor          string
	Description     string
	ReferenceNumber string
	PaymentMethod   string
	PayDate         string // YYYY-MM-DD
	Quarter         Quarter
	Year            int
	Funder          string
	CreatedAt       time.Time
}

// CreateParams carries the raw field values for a new record. Year, when
// nonzero, overrides the value derived from PayDate.
type CreateParams struct {
	Name            string
	Amount          int64
	MainCategory    string
	SubCategory     string
	Vendor          string
	Description     string
	ReferenceNumber string
	PaymentMethod   string
	PayDate         string
	Funder          string
	Year            int
}

// ValidationError reports a manual-entry field that failed validation.
// The caller surfaces it synchronously; no record is created.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid required field: %s", e.Field)
}

// Validate checks the fields required for manual entry: name, a positive
// amount, a pay date and a funder. CSV import rows skip this check and rely
// on the importer's own row filters instead.
func (p CreateParams) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return &ValidationError{Field: "name"}
	case p.Amount <= 0:
		return &ValidationError{Field: "amount"}
	case strings.TrimSpace(p.PayDate) == "":
		return &ValidationError{Field: "payDate"}
	case strings.TrimSpace(p.Funder) == "":
		return &ValidationError{Field: "funder"}
	}

	return nil
}

// New builds a well-formed record from params. A fresh id is assigned and
// quarter/year are derived from the pay date; params is never mutated.
// defaultYear is used when the date's year component cannot be parsed.
func New(params CreateParams, defaultYear int) *Record {
	year := params.Year
	if year == 0 {
		year = DeriveYear(params.PayDate, defaultYear)
	}

	return &Record{
		ID:              uuid.New(),
		Name:            params.Name,
		Amount:          params.Amount,
		MainCategory:    params.MainCategory,
		SubCategory:     params.SubCategory,
		Vendor:          params.Vendor,
		Description:     params.Description,
		ReferenceNumber: params.ReferenceNumber,
		PaymentMethod:   params.PaymentMethod,
		PayDate:         params.PayDate,
		Quarter:         DeriveQuarter(params.PayDate),
		Year:            year,
		Funder:          params.Funder,
		CreatedAt:       time.Now().UTC(),
	}
}

// DeriveQuarter maps the month component of a YYYY-MM-DD date string to its
// quarter: months 1-3 give Q1, 4-6 Q2, 7-9 Q3 and 10-12 Q4. A month that
// cannot be parsed falls back to Q4, matching the MonthOf fallback so that
// monthly and quarterly aggregates always agree.
func DeriveQuarter(date string) Quarter {
	switch m := MonthOf(date); {
	case m <= 3:
		return Q1
	case m <= 6:
		return Q2
	case m <= 9:
		return Q3
	}

	return Q4
}

// DeriveYear extracts the year component of a YYYY-MM-DD date string.
// Unparseable input yields fallback rather than an error.
func DeriveYear(date string, fallback int) int {
	parts := strings.SplitN(date, "-", 2)

	y, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || y <= 0 {
		return fallback
	}

	return y
}

// MonthOf extracts the 1-12 month component of a YYYY-MM-DD date string.
// Malformed or out-of-range months fall back to 12 (December), keeping
// every record inside some month bucket.
func MonthOf(date string) int {
	parts := strings.Split(date, "-")
	if len(parts) < 2 {
		return 12
	}

	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 1 || m > 12 {
		return 12
	}

	return m
}
