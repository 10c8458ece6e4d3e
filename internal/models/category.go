package models

// Category labels an expense. The budget service accepts a fixed set; anything
// outside it is still aggregated under its own name.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryHousing       Category = "Housing"
	CategoryUtilities     Category = "Utilities"
	CategoryOther         Category = "Other"
)

// Uncategorized is the aggregate bucket for expenses without a category.
const Uncategorized = "Uncategorized"

var knownCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryHousing,
	CategoryUtilities,
	CategoryOther,
}

// Categories returns the categories accepted for new expenses, in display order.
func Categories() []Category {
	out := make([]Category, len(knownCategories))
	copy(out, knownCategories)
	return out
}

// IsKnown reports whether c is one of the accepted categories.
func (c Category) IsKnown() bool {
	for _, k := range knownCategories {
		if c == k {
			return true
		}
	}
	return false
}

// Bucket returns the name the category aggregates under.
func (c Category) Bucket() string {
	if c == "" {
		return Uncategorized
	}
	return string(c)
}
