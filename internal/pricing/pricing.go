// Package pricing holds the category-specific price rules. Pricing is a pure
// function of (base price, quantity, category); nothing here touches state.
package pricing

import (
	"github.com/shopspring/decimal"

	"ntshop/internal/domain"
)

var (
	automobileSurcharge = decimal.RequireFromString("1.05")
	electronicsDiscount = decimal.RequireFromString("0.90")
)

// Electronics orders of at least this many units get the bulk discount.
const electronicsBulkQty = 3

// Price returns the cost of qty units at the given base price. Callers must
// pass qty >= 1; the rules are undefined below that.
func Price(base decimal.Decimal, qty int, cat domain.Category) decimal.Decimal {
	total := base.Mul(decimal.NewFromInt(int64(qty)))
	switch cat {
	case domain.Automobiles:
		return total.Mul(automobileSurcharge)
	case domain.Electronics:
		if qty >= electronicsBulkQty {
			return total.Mul(electronicsDiscount)
		}
	}
	return total
}

// Line prices qty units of a product.
func Line(p *domain.Product, qty int) decimal.Decimal {
	return Price(p.BasePrice, qty, p.Category)
}
