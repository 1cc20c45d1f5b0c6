package domain

import (
	"errors"
	"strings"
)

const (
	RoleBuyer  = "Buyer"
	RoleSeller = "Seller"
	RoleAdmin  = "Admin"
)

var (
	ErrValidation         = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// Account is a demo login as it is declared before its password is hashed.
type Account struct {
	Username string
	Password string
	FullName string
	Role     string
	Email    string
}

// DemoAccounts is the fixed set of users the Identity service accepts.
var DemoAccounts = []Account{
	{Username: "buyer1", Password: "pass123", FullName: "Alice Johnson", Role: RoleBuyer, Email: "alice.johnson@demo.com"},
	{Username: "seller1", Password: "pass123", FullName: "Bob Smith", Role: RoleSeller, Email: "bob.smith@demo.com"},
	{Username: "admin1", Password: "pass123", FullName: "Carol Williams", Role: RoleAdmin, Email: "carol.williams@demo.com"},
}

// Credential models a seeded user record. Records are immutable after seeding.
type Credential struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	Email        string `json:"email"`
}

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// Complete reports whether every field of the result carries a value.
func (r *LoginResult) Complete() bool {
	return r != nil &&
		!IsBlank(r.Token) &&
		!IsBlank(r.Username) &&
		!IsBlank(r.FullName) &&
		!IsBlank(r.Role) &&
		!IsBlank(r.Email)
}

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
