// Package users keeps the registered Admin/Customer accounts. Passwords are
// stored as bcrypt hashes in the record's password field.
package users

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"ntshop/internal/domain"
	"ntshop/internal/validate"
)

var (
	ErrBadCreds   = errors.New("invalid username or password")
	ErrUserExists = errors.New("username already exists")
	ErrBadInput   = errors.New("invalid username or password format")
)

type Registry struct {
	users []*domain.User
	max   int
}

func New(max int) *Registry {
	return &Registry{max: max}
}

// Add inserts a user record as-is, rejecting it at capacity. Used by the
// load path and the admin seed; Register is the validated entry point.
func (r *Registry) Add(u *domain.User) error {
	if len(r.users) >= r.max {
		return domain.ErrCapacityExceeded
	}
	r.users = append(r.users, u)
	return nil
}

func (r *Registry) Find(username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *Registry) All() []*domain.User {
	return r.users
}

func (r *Registry) Len() int { return len(r.users) }

// Register creates a new customer account from raw credentials.
func (r *Registry) Register(username, password string) (*domain.User, error) {
	uname, ok := validate.Username(username)
	if !ok || !validate.Password(password) {
		return nil, ErrBadInput
	}
	if _, err := r.Find(uname); err == nil {
		return nil, ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{Username: uname, Password: string(hash), Role: domain.RoleCustomer}
	if err := r.Add(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks a password against the stored hash.
func (r *Registry) Authenticate(username, password string) (*domain.User, error) {
	u, err := r.Find(username)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	return u, nil
}

// EnsureAdmin seeds the default admin account when none exists. Idempotent;
// safe to run on every startup.
func (r *Registry) EnsureAdmin(username, password string) error {
	for _, u := range r.users {
		if u.Role == domain.RoleAdmin {
			return nil
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return r.Add(&domain.User{Username: username, Password: string(hash), Role: domain.RoleAdmin})
}
