package ledgercsv

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount converts an amount cell like "3200.00", "$150.50" or "87" to
// cents. Thousands separators cannot survive the comma split upstream, so
// only a currency sign and whitespace are tolerated here.
func parseAmount(s string) (int64, error) {
	clean := strings.TrimSpace(strings.TrimPrefix(s, "$"))

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
