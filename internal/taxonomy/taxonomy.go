// Package taxonomy holds the closed two-level expense category set used to
// normalize ledger records. The tables are built once at init and only
// exposed through copying accessors.
package taxonomy

// DefaultCategory is the fallback assigned to any unrecognized main category.
// Imports never fail because of a bad category label.
const DefaultCategory = "Operations"

// mainCategories is the closed, ordered set of main categories.
var mainCategories = []string{
	"Operations",
	"Operating Services",
	"Professional Services",
	"Contract Services",
	"Administrative",
	"Subscriptions",
	"Gross Salaries",
	"Related Benefits",
	"Other Charges",
	"Acquisition and Major Repairs",
	"Travel",
}

// subcategories lists the prompted subcategories per main category.
// Main categories absent from this map accept any free-text subcategory.
var subcategories = map[string][]string{
	"Operations": {
		"Facility rent",
		"Utilities",
		"Office supplies",
		"Insurance",
		"Maintenance",
	},
	"Operating Services": {
		"Printing",
		"Postage and shipping",
		"Telephone and internet",
	},
	"Professional Services": {
		"Legal",
		"Accounting and audit",
		"Consulting",
	},
	"Subscriptions": {
		"Software",
		"Memberships and dues",
		"Publications",
	},
	"Travel": {
		"Mileage",
		"Lodging",
		"Per diem",
		"Conference and training",
	},
}

var validMain = func() map[string]bool {
	m := make(map[string]bool, len(mainCategories))
	for _, c := range mainCategories {
		m[c] = true
	}

	return m
}()

// MainCategories returns the ordered closed set of main categories.
func MainCategories() []string {
	out := make([]string, len(mainCategories))
	copy(out, mainCategories)

	return out
}

// IsValidMain reports whether v is a member of the closed main category set.
func IsValidMain(v string) bool {
	return validMain[v]
}

// SubcategoriesFor returns the ordered subcategory list prompted for a main
// category. An empty result means any subcategory (or none) is acceptable.
func SubcategoriesFor(main string) []string {
	subs, ok := subcategories[main]
	if !ok {
		return nil
	}

	out := make([]string, len(subs))
	copy(out, subs)

	return out
}

// Normalize maps v onto the closed category set. Valid values pass through
// unchanged; anything else becomes DefaultCategory. Normalize is idempotent.
func Normalize(v string) string {
	if validMain[v] {
		return v
	}

	return DefaultCategory
}
