// Package cart implements a customer's in-progress order: a bounded list of
// (product, quantity) lines. Lines reference catalog-owned products; the
// cart copies nothing until checkout snapshots it.
package cart

import (
	"github.com/shopspring/decimal"

	"ntshop/internal/domain"
	"ntshop/internal/pricing"
)

type Line struct {
	Product *domain.Product
	Qty     int
}

// Valid reports whether the line counts toward totals and checkout.
func (l Line) Valid() bool {
	return l.Product != nil && l.Qty > 0
}

// Total prices the line under the product's category rule.
func (l Line) Total() decimal.Decimal {
	return pricing.Line(l.Product, l.Qty)
}

type Cart struct {
	lines []Line
	max   int
}

func New(max int) *Cart {
	return &Cart{max: max}
}

// Add appends a new line. Repeated adds of the same product stay separate
// lines; quantities are never merged.
func (c *Cart) Add(p *domain.Product, qty int) error {
	if p == nil || qty <= 0 {
		return domain.ErrInvalidItem
	}
	if len(c.lines) >= c.max {
		return domain.ErrCapacityExceeded
	}
	c.lines = append(c.lines, Line{Product: p, Qty: qty})
	return nil
}

// Total sums the priced lines; an empty cart totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		if !l.Valid() {
			continue
		}
		total = total.Add(l.Total())
	}
	return total
}

// Clear resets the cart, used after a successful checkout or a cancel.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) IsEmpty() bool {
	for _, l := range c.lines {
		if l.Valid() {
			return false
		}
	}
	return true
}

// Lines returns the cart content in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}
