package session_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ntshop/internal/config"
	"ntshop/internal/session"
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

func TestScriptedRegisterAndCheckout(t *testing.T) {
	cfg := testConfig(t)
	sh := shop.New(cfg)
	require.NoError(t, sh.Seed())

	script := strings.Join([]string{
		// register, then log in
		"3", "ali123", "secret1x",
		"1", "ali123", "secret1x",
		// browse electronics, add product 61 x3
		"1", "4", "61", "3",
		// view cart, confirm checkout
		"4", "y",
		"ali123", "House 5, Lahore",
		// cash on delivery, urgent, confirm
		"2", "2", "y",
		// logout, exit
		"6", "4",
	}, "\n") + "\n"

	var out bytes.Buffer
	session.New(sh, strings.NewReader(script), &out).Run()

	assert.Contains(t, out.String(), "Order Placed Successfully! Order ID: 1001")
	require.Equal(t, 1, sh.Ledger.Len())
	o := sh.Ledger.All()[0]
	assert.Equal(t, "ali123", o.Customer)
	assert.Equal(t, "House 5, Lahore", o.Address)
	// 75000*3*0.9 + 500 urgent charge
	assert.True(t, o.Total.Equal(decimal.RequireFromString("203000")), "total %s", o.Total)
}

func TestScriptedAdminMarkDelivered(t *testing.T) {
	cfg := testConfig(t)
	sh := shop.New(cfg)
	require.NoError(t, sh.Seed())

	customer := strings.Join([]string{
		// register, log in, add product 1 x1 from the full listing
		"3", "ali123", "secret1x",
		"1", "ali123", "secret1x",
		"2", "1", "1",
		// checkout with cash on delivery, normal delivery
		"4", "y",
		"ali123", "Lahore",
		"2", "1", "y",
		"6", "4",
	}, "\n") + "\n"
	var out bytes.Buffer
	session.New(sh, strings.NewReader(customer), &out).Run()
	require.Equal(t, 1, sh.Ledger.Len())

	// mark order 1001 delivered twice; the second is a no-op
	admin := strings.Join([]string{
		"2", "admin", "admin123",
		"3", "1001",
		"3", "1001",
		"8", "4",
	}, "\n") + "\n"
	out.Reset()
	session.New(sh, strings.NewReader(admin), &out).Run()

	assert.Contains(t, out.String(), "Order ID 1001 marked as 'Delivered'")
	assert.Equal(t, 1, len(sh.Ledger.ByStatus("Delivered")))
}

func TestScriptedLoginFailure(t *testing.T) {
	cfg := testConfig(t)
	sh := shop.New(cfg)
	require.NoError(t, sh.Seed())

	script := strings.Join([]string{"1", "ghost1", "secret1x", "4"}, "\n") + "\n"
	var out bytes.Buffer
	session.New(sh, strings.NewReader(script), &out).Run()
	assert.Contains(t, out.String(), "Authentication failed")
}
