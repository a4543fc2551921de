package session

import (
	"context"
	"errors"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrFieldsRequired      = errors.New("name, email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
)

// User is the authenticated identity held by the session store.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Authenticator performs the actual credential check. The session store
// only validates field presence; everything else is this port's business,
// so the demo policy and a real credential store are interchangeable.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (User, error)
	Register(ctx context.Context, name, email, password string) (User, error)
}
