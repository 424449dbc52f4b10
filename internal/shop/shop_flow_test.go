package shop_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"ntshop/internal/cart"
	"ntshop/internal/config"
	"ntshop/internal/domain"
	"ntshop/internal/shop"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		DataDir:       t.TempDir(),
		UsersFile:     "users.txt",
		ProductsFile:  "products.txt",
		OrdersFile:    "orders.txt",
		MaxProducts:   100,
		MaxUsers:      50,
		MaxOrders:     200,
		MaxCartItems:  20,
		OrderSeq:      1001,
		AdminUser:     "admin",
		AdminPassword: "admin123",
	}
}

func TestShopFlow_SeedCheckoutSaveReload(t *testing.T) {
	cfg := testConfig(t)

	s := shop.New(cfg)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	if err := s.Seed(); err != nil {
		t.Fatal(err)
	}
	if s.Catalog.Len() != 80 {
		t.Fatalf("want 80 seeded products, got %d", s.Catalog.Len())
	}

	if _, err := s.Users.Register("ali123", "secret1x"); err != nil {
		t.Fatal(err)
	}

	tv, err := s.Catalog.ByID(61)
	if err != nil {
		t.Fatal(err)
	}
	ct := cart.New(cfg.MaxCartItems)
	if err := ct.Add(tv, 3); err != nil {
		t.Fatal(err)
	}

	o, err := s.PlaceOrder(ct, "ali123", "House 5, Lahore", domain.CashOnDelivery, domain.DeliveryUrgent)
	if err != nil {
		t.Fatal(err)
	}
	if o.ID != 1001 {
		t.Fatalf("want first order id 1001, got %d", o.ID)
	}
	// 75000*3*0.9 + 500
	if want := decimal.RequireFromString("203000"); !o.Total.Equal(want) {
		t.Fatalf("want total %s, got %s", want, o.Total)
	}
	if !ct.IsEmpty() {
		t.Fatal("cart should be cleared after successful checkout")
	}

	// restart: a fresh shop over the same files
	s2 := shop.New(cfg)
	if err := s2.Load(); err != nil {
		t.Fatal(err)
	}
	if s2.Catalog.Len() != 80 || s2.Users.Len() != 2 || s2.Ledger.Len() != 1 {
		t.Fatalf("bad reload: products=%d users=%d orders=%d", s2.Catalog.Len(), s2.Users.Len(), s2.Ledger.Len())
	}

	restored := s2.Ledger.All()[0]
	if restored.ID != 1001 || restored.Customer != "ali123" || restored.Status != domain.StatusPlaced {
		t.Fatalf("bad restored order: %+v", restored)
	}
	if restored.Lines != nil {
		t.Fatal("restored orders keep no line detail")
	}

	// new ids never collide with restored ones
	p, err := s2.Catalog.ByID(1)
	if err != nil {
		t.Fatal(err)
	}
	ct2 := cart.New(cfg.MaxCartItems)
	if err := ct2.Add(p, 1); err != nil {
		t.Fatal(err)
	}
	o2, err := s2.PlaceOrder(ct2, "ali123", "House 5, Lahore", domain.AdvancePayment, domain.DeliveryNormal)
	if err != nil {
		t.Fatal(err)
	}
	if o2.ID != 1002 {
		t.Fatalf("want order id 1002 after reload, got %d", o2.ID)
	}
}

func TestShopFlow_MarkDeliveredPersists(t *testing.T) {
	cfg := testConfig(t)
	s := shop.New(cfg)
	if err := s.Seed(); err != nil {
		t.Fatal(err)
	}

	p, err := s.Catalog.ByID(21)
	if err != nil {
		t.Fatal(err)
	}
	ct := cart.New(cfg.MaxCartItems)
	if err := ct.Add(p, 2); err != nil {
		t.Fatal(err)
	}
	o, err := s.PlaceOrder(ct, "ali123", "Lahore", domain.CashOnDelivery, domain.DeliveryNormal)
	if err != nil {
		t.Fatal(err)
	}

	st, err := s.Ledger.MarkDelivered(o.ID)
	if err != nil || st != domain.StatusDelivered {
		t.Fatalf("mark delivered: %v %v", st, err)
	}
	if err := s.SaveOrders(); err != nil {
		t.Fatal(err)
	}

	s2 := shop.New(cfg)
	if err := s2.Load(); err != nil {
		t.Fatal(err)
	}
	if got := s2.Ledger.All()[0].Status; got != domain.StatusDelivered {
		t.Fatalf("want Delivered after reload, got %s", got)
	}
}
