package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/communityworks/grantledger/internal/importer/ledgercsv"
	"github.com/communityworks/grantledger/internal/ledger"
)

type Service struct {
	csv Parser
}

func NewService() *Service {
	return &Service{csv: ledgercsv.NewParser()}
}

// Import parses the named upload and classifies the attempt. The extension
// is checked before any bytes are read: non-CSV files come back as a
// warning with guidance rather than being parsed blindly.
func (s *Service) Import(filename string, r io.Reader) ([]ledger.CreateParams, Summary) {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != ".csv" {
		return nil, Summary{
			Outcome: OutcomeWarning,
			Message: fmt.Sprintf("%q is not a CSV file. Please export your ledger as .csv and upload that instead.", filename),
		}
	}

	params, err := s.csv.Parse(r)
	if err != nil {
		return nil, Summary{
			Outcome: OutcomeError,
			Message: fmt.Sprintf("could not read %q: %v", filename, err),
		}
	}

	if len(params) == 0 {
		return nil, Summary{
			Outcome: OutcomeWarning,
			Message: "no valid data found in the file",
		}
	}

	return params, Summary{
		Imported: len(params),
		Outcome:  OutcomeSuccess,
		Message:  fmt.Sprintf("imported %d records", len(params)),
	}
}
