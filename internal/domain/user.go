package domain

// Role is the record type discriminator for users.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

type User struct {
	Username string
	Password string // bcrypt hash
	Address  string
	Role     Role
}
