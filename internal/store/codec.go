package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"ntshop/internal/domain"
)

// Fields are |-separated with no escaping: a field value containing the
// delimiter corrupts its record. Known limitation of the format.
const sep = "|"

func encodeProduct(p *domain.Product) string {
	return strings.Join([]string{
		p.Category.Tag(),
		strconv.Itoa(p.ID),
		p.Name,
		string(p.Category),
		p.BasePrice.String(),
		p.SubCategory,
	}, sep)
}

// decodeProduct parses TYPE|id|name|category|basePrice|subCategory. The
// category is re-derived from the type tag; the stored category field is
// display text only. Extra trailing fields are ignored.
func decodeProduct(line string) (*domain.Product, error) {
	fields := strings.Split(line, sep)
	if len(fields) < 6 {
		return nil, fmt.Errorf("product record %q: %w", line, domain.ErrMalformedRecord)
	}
	cat, ok := domain.CategoryFromTag(fields[0])
	if !ok {
		return nil, fmt.Errorf("product type %q: %w", fields[0], domain.ErrMalformedRecord)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("product id %q: %w", fields[1], domain.ErrMalformedRecord)
	}
	price, err := decimal.NewFromString(fields[4])
	if err != nil {
		return nil, fmt.Errorf("product price %q: %w", fields[4], domain.ErrMalformedRecord)
	}
	return &domain.Product{
		ID:          id,
		Name:        fields[2],
		Category:    cat,
		SubCategory: fields[5],
		BasePrice:   price,
	}, nil
}

func encodeUser(u *domain.User) string {
	return strings.Join([]string{string(u.Role), u.Username, u.Password, u.Address}, sep)
}

func decodeUser(line string) (*domain.User, error) {
	fields := strings.Split(line, sep)
	if len(fields) < 4 {
		return nil, fmt.Errorf("user record %q: %w", line, domain.ErrMalformedRecord)
	}
	role := domain.Role(fields[0])
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return nil, fmt.Errorf("user type %q: %w", fields[0], domain.ErrMalformedRecord)
	}
	return &domain.User{
		Role:     role,
		Username: fields[1],
		Password: fields[2],
		Address:  fields[3],
	}, nil
}

func encodeOrder(o *domain.Order) string {
	return strings.Join([]string{
		strconv.Itoa(o.ID),
		o.Customer,
		o.Address,
		strconv.Itoa(o.ItemCount),
		o.Total.String(),
		string(o.DeliveryType),
		o.DeliveryCharge.String(),
		string(o.Payment),
		string(o.Status),
	}, sep)
}

// decodeOrder parses the order summary record. Line items are not persisted;
// a restored order carries only its item count and frozen totals.
func decodeOrder(line string) (*domain.Order, error) {
	fields := strings.Split(line, sep)
	if len(fields) < 9 {
		return nil, fmt.Errorf("order record %q: %w", line, domain.ErrMalformedRecord)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("order id %q: %w", fields[0], domain.ErrMalformedRecord)
	}
	count, err := strconv.Atoi(fields[3])
	if err != nil {
		return nil, fmt.Errorf("order item count %q: %w", fields[3], domain.ErrMalformedRecord)
	}
	total, err := decimal.NewFromString(fields[4])
	if err != nil {
		return nil, fmt.Errorf("order total %q: %w", fields[4], domain.ErrMalformedRecord)
	}
	charge, err := decimal.NewFromString(fields[6])
	if err != nil {
		return nil, fmt.Errorf("order delivery charge %q: %w", fields[6], domain.ErrMalformedRecord)
	}
	return &domain.Order{
		ID:             id,
		Customer:       fields[1],
		Address:        fields[2],
		ItemCount:      count,
		Total:          total,
		DeliveryType:   domain.DeliveryType(fields[5]),
		DeliveryCharge: charge,
		Payment:        domain.PaymentMethod(fields[7]),
		Status:         domain.OrderStatus(fields[8]),
	}, nil
}
