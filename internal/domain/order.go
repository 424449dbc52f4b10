package domain

import "github.com/shopspring/decimal"

type PaymentMethod string

const (
	AdvancePayment PaymentMethod = "Advance Payment"
	CashOnDelivery PaymentMethod = "Cash on Delivery (COD)"
)

type DeliveryType string

const (
	DeliveryNormal DeliveryType = "Normal"
	DeliveryUrgent DeliveryType = "Urgent"
)

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "Placed"
	StatusDelivered OrderStatus = "Delivered"
)

// OrderLine is a value snapshot taken at checkout. It is independent of the
// catalog: later catalog changes cannot alter a placed order's content.
type OrderLine struct {
	ProductID int
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
	LineTotal decimal.Decimal
}

// Order is created once at checkout and mutated only by the Placed->Delivered
// status transition. Total is frozen at creation and never recomputed.
//
// Lines is nil for orders restored from disk: the persisted record keeps only
// ItemCount and Total, not per-line detail.
type Order struct {
	ID             int
	Customer       string
	Address        string
	Lines          []OrderLine
	ItemCount      int
	Total          decimal.Decimal
	DeliveryType   DeliveryType
	DeliveryCharge decimal.Decimal
	Payment        PaymentMethod
	Status         OrderStatus
}
