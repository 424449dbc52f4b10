// Package session drives the interactive terminal flow: role selection,
// login, registration, and the customer/admin menus. It holds no invariants
// of its own; everything of consequence happens in the core it calls into.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ntshop/internal/cart"
	"ntshop/internal/domain"
	applog "ntshop/internal/log"
	"ntshop/internal/shop"
	"ntshop/internal/users"
	"ntshop/internal/validate"
)

type Session struct {
	shop *shop.Shop
	in   *bufio.Scanner
	out  io.Writer
	eof  bool
}

func New(sh *shop.Shop, in io.Reader, out io.Writer) *Session {
	return &Session{shop: sh, in: bufio.NewScanner(in), out: out}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) prompt(msg string) string {
	s.printf("%s", msg)
	if !s.in.Scan() {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *Session) promptInt(msg string) (int, bool) {
	n, err := strconv.Atoi(s.prompt(msg))
	if err != nil {
		s.printf("Invalid input. Please try again.\n")
		return 0, false
	}
	return n, true
}

func (s *Session) confirm(msg string) bool {
	return strings.EqualFold(s.prompt(msg), "y")
}

// Run loops on the role menu until the user exits. The caller saves all
// collections after Run returns.
func (s *Session) Run() {
	s.printf("\n=======================================\n")
	s.printf("  WELCOME TO N&T SHOP ONLINE SYSTEM\n")
	s.printf("=======================================\n")

	for {
		s.printf("Are you a Customer or an Admin?\n1. Customer\n2. Admin\n3. Register New Customer\n4. Exit\n")
		choice, ok := s.promptInt("Enter choice: ")
		if s.eof {
			return
		}
		if !ok {
			continue
		}
		switch choice {
		case 1, 2:
			s.login(choice)
		case 3:
			s.register()
		case 4:
			s.printf("\nThank you for using N&T SHOP. Goodbye!\n")
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) register() {
	for {
		s.printf("\n--- New Customer Registration ---\n")
		s.printf("Username requirements: %d-%d characters (letters and numbers only)\n",
			validate.MinUsernameLen, validate.MaxUsernameLen)
		s.printf("Password requirements: %d-%d characters with at least one letter and one number\n",
			validate.MinPasswordLen, validate.MaxPasswordLen)

		username := s.prompt("Enter new username: ")
		password := s.prompt("Enter password: ")

		u, err := s.shop.Users.Register(username, password)
		if err == nil {
			s.printf("\nCustomer '%s' registered successfully!\n", u.Username)
			if serr := s.shop.SaveUsers(); serr != nil {
				s.printf("Warning: could not save user data.\n")
			}
			applog.Audit(applog.Ctx{User: u.Username}, "customer.register", nil)
			return
		}

		switch err {
		case users.ErrBadInput:
			s.printf("Invalid username or password format.\n")
		case users.ErrUserExists:
			s.printf("Username already exists! Please choose a different username.\n")
		case domain.ErrCapacityExceeded:
			s.printf("Maximum user limit reached! Cannot register new user.\n")
			return
		default:
			s.printf("Registration failed.\n")
		}
		if !strings.EqualFold(s.prompt("Press 'r' to retry or any other key to cancel: "), "r") || s.eof {
			return
		}
	}
}

func (s *Session) login(role int) {
	username := s.prompt("Enter Username: ")
	password := s.prompt("Enter Password: ")

	u, err := s.shop.Users.Authenticate(username, password)
	if err != nil {
		s.printf("Authentication failed. Please check your credentials or register.\n")
		applog.Info(applog.Ctx{User: username}, "login.fail", nil)
		return
	}

	ctx := applog.Ctx{Session: uuid.NewString(), User: u.Username}
	switch {
	case role == 1 && u.Role == domain.RoleCustomer:
		applog.Audit(ctx, "login.customer", nil)
		s.customerMenu(ctx, u)
	case role == 2 && u.Role == domain.RoleAdmin:
		applog.Audit(ctx, "login.admin", nil)
		s.adminMenu(ctx, u)
	default:
		s.printf("Role mismatch. Please log in with the correct role.\n")
	}
}

func money(d decimal.Decimal) string {
	return "PKR " + d.StringFixed(2)
}

func (s *Session) printProduct(p *domain.Product) {
	s.printf("  [%d] %s (%s / %s) - %s\n", p.ID, p.Name, p.Category, p.SubCategory, money(p.BasePrice))
}

func (s *Session) customerMenu(ctx applog.Ctx, u *domain.User) {
	ct := cart.New(s.shop.Config().MaxCartItems)
	for {
		s.printf("\n--- Welcome, %s to N&T SHOP ---\n", u.Username)
		s.printf("1. Browse Products by Category\n2. View All Products\n3. View Category Summary\n4. View Cart and Checkout\n5. View Order History\n6. Logout\n")
		choice, ok := s.promptInt("Enter choice: ")
		if s.eof {
			return
		}
		if !ok {
			continue
		}
		switch choice {
		case 1:
			s.browseCategory(ct)
		case 2:
			s.printf("\n--- All Products (%d products) ---\n", s.shop.Catalog.Len())
			for _, p := range s.shop.Catalog.All() {
				s.printProduct(p)
			}
			s.addToCartPrompt(ct)
		case 3:
			s.categorySummary()
		case 4:
			s.viewCart(ct)
			if !ct.IsEmpty() && s.confirm("Ready to checkout? (y/n): ") {
				s.checkout(ctx, u, ct)
			}
		case 5:
			s.orderHistory(u)
		case 6:
			applog.Audit(ctx, "logout", nil)
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) browseCategory(ct *cart.Cart) {
	s.printf("\n--- Select Category ---\n1: Fashion\n2: Education\n3: Automobiles\n4: Electronics\n")
	choice, ok := s.promptInt("Your choice: ")
	if !ok || choice < 1 || choice > 4 {
		s.printf("Invalid category.\n")
		return
	}
	cat := domain.Categories()[choice-1]

	products := s.shop.Catalog.ByCategory(cat)
	s.printf("\n--- Products in %s ---\n", cat)
	if len(products) == 0 {
		s.printf("No products found in this category.\n")
		return
	}
	for _, p := range products {
		s.printProduct(p)
	}
	s.addToCartPrompt(ct)
}

func (s *Session) addToCartPrompt(ct *cart.Cart) {
	id, ok := s.promptInt("Enter Product ID to add to cart (0 to skip): ")
	if !ok || id == 0 {
		return
	}
	p, err := s.shop.Catalog.ByID(id)
	if err != nil {
		s.printf("Invalid Product ID.\n")
		return
	}
	qty, ok := s.promptInt("Enter quantity: ")
	if !ok || qty <= 0 {
		s.printf("Invalid quantity. Skipped.\n")
		return
	}
	switch err := ct.Add(p, qty); err {
	case nil:
		s.printf("Added %d x %s to cart.\n", qty, p.Name)
	case domain.ErrCapacityExceeded:
		s.printf("Failed to add item to cart (cart full).\n")
	default:
		s.printf("Failed to add item to cart.\n")
	}
}

func (s *Session) categorySummary() {
	counts := s.shop.Catalog.CategoryCounts()
	s.printf("\n--- Product Categories Summary ---\n")
	for _, cat := range domain.Categories() {
		s.printf("%s: %d products\n", cat, counts.ByCategory[cat])
	}
	s.printf("Total: %d products\n", counts.Total)
}

func (s *Session) viewCart(ct *cart.Cart) {
	if ct.IsEmpty() {
		s.printf("\nYour cart is empty.\n")
		return
	}
	s.printf("\n--- Your Shopping Cart ---\n")
	for i, l := range ct.Lines() {
		s.printf("%d. %s x %d | Price: %s\n", i+1, l.Product.Name, l.Qty, money(l.Total()))
	}
	s.printf("Subtotal: %s\n", money(ct.Total()))
}

func (s *Session) checkout(ctx applog.Ctx, u *domain.User, ct *cart.Cart) {
	s.printf("\n--- Checkout Process ---\n")
	if s.prompt("Enter your delivery username: ") != u.Username {
		s.printf("Username mismatch! Please enter your registered username.\n")
		return
	}
	address := s.prompt("Enter your full delivery address: ")
	u.Address = address

	payment := domain.CashOnDelivery
	if choice, ok := s.promptInt("\nSelect Payment Method (1 for Advance, 2 for Cash on Delivery): "); ok && choice == 1 {
		payment = domain.AdvancePayment
		s.prompt("Enter Account Name: ")
		for {
			if _, valid := validate.AccountNumber(s.prompt("Enter Account Number (16 digits): ")); valid {
				break
			}
			if s.eof {
				return
			}
			s.printf("Invalid account number! Must be exactly %d digits.\n", validate.AccountNumberLen)
		}
		s.printf("Payment details secured for advance payment.\n")
	}

	delivery := domain.DeliveryNormal
	s.printf("\nSelect Delivery Type:\n1. Normal Delivery (5 days, No extra charge)\n2. Urgent Delivery (3 days, PKR 500 extra charge)\n")
	if choice, ok := s.promptInt("Your choice: "); ok && choice == 2 {
		delivery = domain.DeliveryUrgent
		s.printf("Urgent Delivery selected (PKR 500 added to total).\n")
	}

	s.printf("\n--- Order Summary ---\n")
	s.viewCart(ct)
	s.printf("Payment: %s\nDelivery: %s\n", payment, delivery)

	if !s.confirm("Proceed with placing order? (y/n): ") {
		s.printf("\nOrder cancelled by user. Cart retained.\n")
		return
	}

	o, err := s.shop.PlaceOrder(ct, u.Username, address, payment, delivery)
	if err != nil {
		s.printf("Failed to place order.\n")
		applog.Error(ctx, "checkout.fail", err, nil)
		return
	}
	s.printf("\n********************************************************\n")
	s.printf("    Order Placed Successfully! Order ID: %d\n", o.ID)
	s.printf("********************************************************\n")
	applog.Audit(ctx, "checkout", map[string]any{"order_id": o.ID, "total": o.Total.String()})
}

func (s *Session) printOrder(o *domain.Order) {
	s.printf("\n--- Order ID: %d ---\n", o.ID)
	s.printf("  Customer: %s\n  Address: %s\n", o.Customer, o.Address)
	days := "5 days"
	if o.DeliveryType == domain.DeliveryUrgent {
		days = "3 days"
	}
	s.printf("  Delivery Type: %s (%s)\n  Payment: %s\n  Status: %s\n", o.DeliveryType, days, o.Payment, o.Status)
	if len(o.Lines) > 0 {
		s.printf("  Items:\n")
		for _, l := range o.Lines {
			s.printf("    - %s x %d @ %s\n", l.Name, l.Qty, money(l.LineTotal))
		}
	} else {
		s.printf("  Items: %d (detail not retained after restart)\n", o.ItemCount)
	}
	s.printf("  Delivery Charge: %s\n  FINAL TOTAL: %s\n", money(o.DeliveryCharge), money(o.Total))
}

func (s *Session) orderHistory(u *domain.User) {
	s.printf("\n--- Your Order History ---\n")
	orders := s.shop.Ledger.ByCustomer(u.Username)
	if len(orders) == 0 {
		s.printf("You have no orders yet.\n")
		return
	}
	for _, o := range orders {
		s.printOrder(o)
	}
}

func (s *Session) adminMenu(ctx applog.Ctx, u *domain.User) {
	for {
		s.printf("\n--- Welcome, Admin (%s) ---\n", u.Username)
		s.printf("1. View All Orders\n2. View Delivered Orders\n3. Mark Order as Delivered\n4. Search Customer Information\n5. View Product Inventory\n6. View Category Summary\n7. Save All Data\n8. Logout\n")
		choice, ok := s.promptInt("Enter choice: ")
		if s.eof {
			return
		}
		if !ok {
			continue
		}
		switch choice {
		case 1:
			orders := s.shop.Ledger.All()
			if len(orders) == 0 {
				s.printf("\nNo orders placed yet.\n")
			}
			for _, o := range orders {
				s.printOrder(o)
			}
		case 2:
			s.printf("\n--- Delivered Orders ---\n")
			delivered := s.shop.Ledger.ByStatus(domain.StatusDelivered)
			if len(delivered) == 0 {
				s.printf("No delivered orders found.\n")
			}
			for _, o := range delivered {
				s.printOrder(o)
			}
		case 3:
			s.markDelivered(ctx)
		case 4:
			s.searchCustomer()
		case 5:
			s.printf("\n--- All Products (%d products) ---\n", s.shop.Catalog.Len())
			for _, p := range s.shop.Catalog.All() {
				s.printProduct(p)
			}
		case 6:
			s.categorySummary()
		case 7:
			if err := s.shop.SaveAll(); err != nil {
				s.printf("Error: could not save all data.\n")
			} else {
				s.printf("All data saved successfully!\n")
			}
		case 8:
			applog.Audit(ctx, "logout", nil)
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) markDelivered(ctx applog.Ctx) {
	id, ok := s.promptInt("Enter Order ID to mark as delivered: ")
	if !ok {
		s.printf("Invalid ID.\n")
		return
	}
	st, err := s.shop.Ledger.MarkDelivered(id)
	if err != nil {
		s.printf("Order ID %d not found.\n", id)
		return
	}
	if st == domain.StatusDelivered {
		s.printf("Order ID %d marked as 'Delivered'.\n", id)
	}
	applog.Audit(ctx, "order.delivered", map[string]any{"order_id": id, "status": string(st)})
	if err := s.shop.SaveOrders(); err != nil {
		s.printf("Warning: could not save order data.\n")
	}
}

func (s *Session) searchCustomer() {
	s.printf("\n--- Search Customer ---\n")
	mode, ok := s.promptInt("Search by: 1) Username or 2) Address: ")
	if !ok || (mode != 1 && mode != 2) {
		s.printf("Invalid search type.\n")
		return
	}
	var key string
	if mode == 1 {
		key = s.prompt("Enter Username: ")
	} else {
		key = s.prompt("Enter Address: ")
	}

	s.printf("\n--- Search Results ---\n")
	found := false
	for _, u := range s.shop.Users.All() {
		if u.Role != domain.RoleCustomer {
			continue
		}
		matches := (mode == 1 && u.Username == key) ||
			(mode == 2 && key != "" && strings.Contains(u.Address, key))
		if !matches {
			continue
		}
		found = true
		s.printf("Found Customer: %s\n  - Last Known Address: %s\n", u.Username, u.Address)

		orders := s.shop.Ledger.ByCustomer(u.Username)
		count := 0
		sum := decimal.Zero
		for _, o := range orders {
			count++
			sum = sum.Add(o.Total)
		}
		s.printf("  - Total Orders Placed : %d\n", count)
		s.printf("  - Total Amount Shopped: %s\n", money(sum))
	}
	if !found {
		s.printf("No customers found matching the criteria.\n")
	}
}
