// Package shop wires the catalog, user registry, order ledger, and record
// store together and owns the load/seed/save checkpoints.
package shop

import (
	"fmt"

	"ntshop/internal/cart"
	"ntshop/internal/catalog"
	"ntshop/internal/config"
	"ntshop/internal/domain"
	"ntshop/internal/ledger"
	applog "ntshop/internal/log"
	"ntshop/internal/store"
	"ntshop/internal/users"
)

type Shop struct {
	Catalog *catalog.Catalog
	Users   *users.Registry
	Ledger  *ledger.Ledger
	Store   *store.Store

	cfg config.Config
}

func New(cfg config.Config) *Shop {
	return &Shop{
		Catalog: catalog.New(cfg.MaxProducts),
		Users:   users.New(cfg.MaxUsers),
		Ledger:  ledger.New(cfg.MaxOrders, cfg.OrderSeq),
		Store:   store.New(cfg.DataDir, cfg.UsersFile, cfg.ProductsFile, cfg.OrdersFile),
		cfg:     cfg,
	}
}

func (s *Shop) Config() config.Config { return s.cfg }

// Load populates the in-memory collections from the store. Runs once at
// startup, before any session. Collections stop filling at capacity; the
// ledger still observes every order id so the allocator cannot collide.
func (s *Shop) Load() error {
	products, err := s.Store.LoadProducts()
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	for _, p := range products {
		if err := s.Catalog.Add(p); err != nil {
			break
		}
	}

	us, err := s.Store.LoadUsers()
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	for _, u := range us {
		if err := s.Users.Add(u); err != nil {
			break
		}
	}

	orders, err := s.Store.LoadOrders()
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	for _, o := range orders {
		s.Ledger.Restore(o)
	}

	applog.Info(applog.Ctx{}, "shop.load", map[string]any{
		"products": s.Catalog.Len(), "users": s.Users.Len(), "orders": s.Ledger.Len(),
	})
	return nil
}

// Seed fills the catalog on first run and makes sure an admin account
// exists. Idempotent.
func (s *Shop) Seed() error {
	if err := s.Catalog.SeedDefaults(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := s.Users.EnsureAdmin(s.cfg.AdminUser, s.cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func (s *Shop) SaveProducts() error { return s.Store.SaveProducts(s.Catalog.All()) }
func (s *Shop) SaveUsers() error    { return s.Store.SaveUsers(s.Users.All()) }
func (s *Shop) SaveOrders() error   { return s.Store.SaveOrders(s.Ledger.All()) }

// SaveAll writes every collection. A failed file is reported but the
// remaining collections are still attempted; in-memory state is never
// touched.
func (s *Shop) SaveAll() error {
	var firstErr error
	for _, save := range []struct {
		name string
		fn   func() error
	}{
		{"users", s.SaveUsers},
		{"products", s.SaveProducts},
		{"orders", s.SaveOrders},
	} {
		if err := save.fn(); err != nil {
			applog.Error(applog.Ctx{}, "shop.save", err, map[string]any{"collection": save.name})
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// PlaceOrder is the checkout orchestration: ledger append, then cart clear,
// then persistence. The cart survives a rejected checkout.
func (s *Shop) PlaceOrder(c *cart.Cart, username, address string, pay domain.PaymentMethod, dt domain.DeliveryType) (*domain.Order, error) {
	o, err := s.Ledger.Checkout(c, username, address, pay, dt)
	if err != nil {
		return nil, err
	}
	c.Clear()
	if err := s.SaveAll(); err != nil {
		return o, err
	}
	return o, nil
}
