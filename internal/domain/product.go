package domain

import "github.com/shopspring/decimal"

// Category selects the pricing rule a product is sold under. The persisted
// type tag (FASHION, EDUCATION, ...) maps one-to-one onto these values.
type Category string

const (
	Fashion     Category = "Fashion"
	Education   Category = "Education"
	Automobiles Category = "Automobiles"
	Electronics Category = "Electronics"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{Fashion, Education, Automobiles, Electronics}
}

// Tag returns the record type discriminator for the category.
func (c Category) Tag() string {
	switch c {
	case Fashion:
		return "FASHION"
	case Education:
		return "EDUCATION"
	case Automobiles:
		return "AUTOMOBILE"
	case Electronics:
		return "ELECTRONICS"
	}
	return ""
}

// CategoryFromTag resolves a record type discriminator back to its category.
func CategoryFromTag(tag string) (Category, bool) {
	switch tag {
	case "FASHION":
		return Fashion, true
	case "EDUCATION":
		return Education, true
	case "AUTOMOBILE":
		return Automobiles, true
	case "ELECTRONICS":
		return Electronics, true
	}
	return "", false
}

// Product is immutable after creation. IDs are assigned externally (seed or
// load) and never reused; the catalog owns every product instance.
type Product struct {
	ID          int
	Name        string
	Category    Category
	SubCategory string
	BasePrice   decimal.Decimal
}
