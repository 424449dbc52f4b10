// Package ledger owns placed orders: identity allocation, checkout, the
// Placed->Delivered transition, and the read-side queries.
package ledger

import (
	"github.com/shopspring/decimal"

	"ntshop/internal/cart"
	"ntshop/internal/domain"
)

var urgentDeliveryCharge = decimal.NewFromInt(500)

type Ledger struct {
	orders []*domain.Order
	nextID int
	max    int
}

// New seeds the identity allocator at seq; ids observed during restore push
// it further so restarts never reissue a persisted id.
func New(max, seq int) *Ledger {
	return &Ledger{max: max, nextID: seq}
}

func (l *Ledger) allocate() int {
	id := l.nextID
	l.nextID++
	return id
}

func (l *Ledger) observe(id int) {
	if id >= l.nextID {
		l.nextID = id + 1
	}
}

// Checkout turns the cart's valid lines into a new Placed order. The cart is
// left untouched either way; clearing it after success is the caller's job,
// as is persisting the ledger.
func (l *Ledger) Checkout(c *cart.Cart, username, address string, pay domain.PaymentMethod, dt domain.DeliveryType) (*domain.Order, error) {
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	if len(l.orders) >= l.max {
		return nil, domain.ErrCapacityExceeded
	}

	baseTotal := c.Total()
	charge := decimal.Zero
	if dt == domain.DeliveryUrgent {
		charge = urgentDeliveryCharge
	}

	var lines []domain.OrderLine
	for _, ln := range c.Lines() {
		if !ln.Valid() {
			continue
		}
		lines = append(lines, domain.OrderLine{
			ProductID: ln.Product.ID,
			Name:      ln.Product.Name,
			UnitPrice: ln.Product.BasePrice,
			Qty:       ln.Qty,
			LineTotal: ln.Total(),
		})
	}

	o := &domain.Order{
		ID:             l.allocate(),
		Customer:       username,
		Address:        address,
		Lines:          lines,
		ItemCount:      len(lines),
		Total:          baseTotal.Add(charge),
		DeliveryType:   dt,
		DeliveryCharge: charge,
		Payment:        pay,
		Status:         domain.StatusPlaced,
	}
	l.orders = append(l.orders, o)
	return o, nil
}

// MarkDelivered transitions a Placed order to Delivered. An order that is
// already Delivered stays put and its current status is reported; that is
// not an error. An unknown id is.
func (l *Ledger) MarkDelivered(id int) (domain.OrderStatus, error) {
	for _, o := range l.orders {
		if o.ID != id {
			continue
		}
		if o.Status == domain.StatusPlaced {
			o.Status = domain.StatusDelivered
		}
		return o.Status, nil
	}
	return "", domain.ErrNotFound
}

// All returns orders in insertion order.
func (l *Ledger) All() []*domain.Order {
	return l.orders
}

func (l *Ledger) ByCustomer(username string) []*domain.Order {
	var out []*domain.Order
	for _, o := range l.orders {
		if o.Customer == username {
			out = append(out, o)
		}
	}
	return out
}

func (l *Ledger) ByStatus(s domain.OrderStatus) []*domain.Order {
	var out []*domain.Order
	for _, o := range l.orders {
		if o.Status == s {
			out = append(out, o)
		}
	}
	return out
}

func (l *Ledger) Len() int { return len(l.orders) }

// Restore appends an order loaded from the store. A duplicate id is
// discarded (first occurrence wins) and a full ledger stops accepting, but
// every seen id still advances the allocator. Reports whether the order was
// kept.
func (l *Ledger) Restore(o *domain.Order) bool {
	l.observe(o.ID)
	if len(l.orders) >= l.max {
		return false
	}
	for _, have := range l.orders {
		if have.ID == o.ID {
			return false
		}
	}
	l.orders = append(l.orders, o)
	return true
}
