package ledgercsv

import "strings"

// Column resolution works by keyword containment: the first header cell
// whose lower-cased text contains any of a field's keywords is claimed as
// that field's column. Keyword lists are ranked, most specific first.
var (
	dateKeywords        = []string{"date", "paid", "posted"}
	subcategoryKeywords = []string{"subcat", "sub-cat", "sub cat"}
	categoryKeywords    = []string{"categ"}
	vendorKeywords      = []string{"vendor", "payee", "merchant", "supplier"}
	descriptionKeywords = []string{"desc", "memo", "detail", "notes"}
	referenceKeywords   = []string{"invoice", "check", "reference", "number"}
	amountKeywords      = []string{"amount", "spend", "cost"}
	itemKeywords        = []string{"item", "name"}
)

// resolveColumn returns the index of the first header containing any of the
// keywords, skipping indices already claimed by another field. The second
// return is false when no header matches; the caller then leaves that field
// empty for every row instead of aborting the import.
func resolveColumn(headers, keywords []string, claimed map[int]bool) (int, bool) {
	for _, kw := range keywords {
		for i, h := range headers {
			if claimed[i] {
				continue
			}

			if strings.Contains(h, kw) {
				return i, true
			}
		}
	}

	return -1, false
}

// columnMap holds the resolved index per ledger field; -1 means unresolved.
type columnMap struct {
	date        int
	category    int
	subcategory int
	vendor      int
	description int
	reference   int
	amount      int
	item        int
}

// resolveColumns claims a column per field in a fixed order. Subcategory is
// resolved before category because a "subcategory" header also contains the
// category keywords; vendor before item because "vendor name" would
// otherwise be taken by the item field's "name" keyword.
func resolveColumns(headers []string) columnMap {
	claimed := make(map[int]bool, len(headers))

	claim := func(keywords []string) int {
		i, ok := resolveColumn(headers, keywords, claimed)
		if !ok {
			return -1
		}

		claimed[i] = true

		return i
	}

	return columnMap{
		date:        claim(dateKeywords),
		subcategory: claim(subcategoryKeywords),
		category:    claim(categoryKeywords),
		vendor:      claim(vendorKeywords),
		description: claim(descriptionKeywords),
		reference:   claim(referenceKeywords),
		amount:      claim(amountKeywords),
		item:        claim(itemKeywords),
	}
}
