// Package catalog owns the authoritative set of purchasable products.
package catalog

import (
	"ntshop/internal/domain"
)

type Catalog struct {
	products []*domain.Product
	max      int
}

func New(max int) *Catalog {
	return &Catalog{max: max}
}

// Add inserts a product, rejecting it when the catalog is at capacity.
// Duplicate ids are a caller error; the seed and load paths guarantee
// uniqueness themselves.
func (c *Catalog) Add(p *domain.Product) error {
	if len(c.products) >= c.max {
		return domain.ErrCapacityExceeded
	}
	c.products = append(c.products, p)
	return nil
}

// ByID scans for a product by id. The catalog is small and bounded.
func (c *Catalog) ByID(id int) (*domain.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ByCategory returns matching products in insertion order. No match is an
// empty slice, not an error.
func (c *Catalog) ByCategory(cat domain.Category) []*domain.Product {
	var out []*domain.Product
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// All returns every product in insertion order.
func (c *Catalog) All() []*domain.Product {
	return c.products
}

func (c *Catalog) Len() int { return len(c.products) }

type Counts struct {
	ByCategory map[domain.Category]int
	Total      int
}

// CategoryCounts tallies products per known category plus the overall total.
func (c *Catalog) CategoryCounts() Counts {
	out := Counts{ByCategory: make(map[domain.Category]int)}
	for _, cat := range domain.Categories() {
		out.ByCategory[cat] = 0
	}
	for _, p := range c.products {
		out.ByCategory[p.Category]++
		out.Total++
	}
	return out
}
