// Package importer turns uploaded expense files into ledger create params
// and classifies each upload into a three-tier outcome. Row-level problems
// never fail a batch; only a file-level read failure is an error.
package importer

import (
	"io"

	"github.com/communityworks/grantledger/internal/ledger"
)

// Outcome is the user-facing classification of one import attempt.
type Outcome string

const (
	// OutcomeSuccess means at least one row was imported.
	OutcomeSuccess Outcome = "success"
	// OutcomeWarning means the file was handled but nothing was imported:
	// wrong extension or no valid data rows.
	OutcomeWarning Outcome = "warning"
	// OutcomeError means the file could not be read at all. No partial
	// records accompany an error outcome.
	OutcomeError Outcome = "error"
)

// Summary describes what happened to an upload.
type Summary struct {
	Imported int
	Outcome  Outcome
	Message  string
}

// Parser converts one file's content into ledger create params.
type Parser interface {
	Parse(r io.Reader) ([]ledger.CreateParams, error)
}
