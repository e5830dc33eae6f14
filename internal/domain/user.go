package domain

// UserRole distinguishes customers from support staff.
type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleAgent    UserRole = "AGENT"
	UserRoleAdmin    UserRole = "ADMIN"
)

// User is the domain model for dashboard identities. Users are immutable once
// created and are copied by value into Ticket and Message records.
type User struct {
	ID     string
	Name   string
	Email  string
	Role   UserRole
	Avatar string
}
