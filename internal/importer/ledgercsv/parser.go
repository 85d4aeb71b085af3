// Package ledgercsv parses arbitrary expense CSVs into ledger create params
// by heuristically mapping whatever headers the file carries onto ledger
// fields. Files exported by this system round-trip through it, but so do
// hand-made spreadsheets with unfamiliar column names.
package ledgercsv

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/communityworks/grantledger/internal/encoding"
	"github.com/communityworks/grantledger/internal/ledger"
	"github.com/communityworks/grantledger/internal/taxonomy"
)

// minRowCells is the fewest comma-separated cells a line must have to be
// considered a data row.
const minRowCells = 3

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the whole file and returns the rows it could make sense of.
// The first non-blank line is the header; its cells are lower-cased and
// matched by keyword containment (see columns.go). Rows with too few cells
// or an unparseable amount are skipped, never fatal. Only a read failure
// returns an error, and then with no partial records.
func (p *Parser) Parse(r io.Reader) ([]ledger.CreateParams, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	lines := splitLines(string(raw))
	if len(lines) == 0 {
		return nil, nil
	}

	cols := resolveColumns(splitCells(strings.ToLower(lines[0])))

	var params []ledger.CreateParams

	for _, line := range lines[1:] {
		cells := splitCells(line)
		if len(cells) < minRowCells {
			continue
		}

		row, ok := parseRow(cols, cells)
		if !ok {
			continue
		}

		params = append(params, row)
	}

	return params, nil
}

func parseRow(cols columnMap, cells []string) (ledger.CreateParams, bool) {
	var amount int64

	if cols.amount >= 0 {
		cents, err := parseAmount(cell(cells, cols.amount))
		if err != nil {
			return ledger.CreateParams{}, false
		}

		amount = cents
	}

	payDate := cell(cells, cols.date)
	if cols.date < 0 {
		payDate = time.Now().Format(time.DateOnly)
	}

	vendor := cell(cells, cols.vendor)
	description := cell(cells, cols.description)

	name := cell(cells, cols.item)
	if name == "" {
		if name = description; name == "" {
			name = vendor
		}
	}

	return ledger.CreateParams{
		Name:            name,
		Amount:          amount,
		MainCategory:    taxonomy.Normalize(cell(cells, cols.category)),
		SubCategory:     cell(cells, cols.subcategory),
		Vendor:          vendor,
		Description:     description,
		ReferenceNumber: cell(cells, cols.reference),
		PayDate:         payDate,
	}, true
}

func splitLines(text string) []string {
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

// splitCells splits a line on commas and strips literal quote characters.
// This is deliberately not RFC 4180: quoted fields containing commas are
// not supported, matching the exporter which never emits them.
func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(strings.ReplaceAll(c, `"`, ""))
	}

	return cells
}

// cell safely fetches a resolved column's value; unresolved columns and
// short rows yield the empty string.
func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}

	return cells[idx]
}
