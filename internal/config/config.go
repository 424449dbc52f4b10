package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DataDir      string `env:"DATA_DIR" envDefault:"."`
	UsersFile    string `env:"USERS_FILE" envDefault:"users.txt"`
	ProductsFile string `env:"PRODUCTS_FILE" envDefault:"products.txt"`
	OrdersFile   string `env:"ORDERS_FILE" envDefault:"orders.txt"`
	LogFile      string `env:"LOG_FILE" envDefault:""`

	MaxProducts  int `env:"MAX_PRODUCTS" envDefault:"100"`
	MaxUsers     int `env:"MAX_USERS" envDefault:"50"`
	MaxOrders    int `env:"MAX_ORDERS" envDefault:"200"`
	MaxCartItems int `env:"MAX_CART_ITEMS" envDefault:"20"`

	// First order id handed out by a fresh ledger; loaded orders push the
	// allocator past their own ids.
	OrderSeq int `env:"ORDER_SEQ" envDefault:"1001"`

	AdminUser     string `env:"ADMIN_USER" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	log.Printf("[config] DATA_DIR=%s USERS_FILE=%s PRODUCTS_FILE=%s ORDERS_FILE=%s ORDER_SEQ=%d",
		cfg.DataDir, cfg.UsersFile, cfg.ProductsFile, cfg.OrdersFile, cfg.OrderSeq)
	return cfg, nil
}
