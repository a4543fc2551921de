package user

import (
	"context"

	"github.com/omaatv/eticaret-projem/internal/session"
)

// SessionAuthenticator adapts Service to the client-side session policy so
// a local session can be backed by real accounts instead of the demo rules.
type SessionAuthenticator struct {
	service *Service
}

func NewSessionAuthenticator(service *Service) *SessionAuthenticator {
	return &SessionAuthenticator{service: service}
}

func (a *SessionAuthenticator) Authenticate(ctx context.Context, email, password string) (session.User, error) {
	if err := ctx.Err(); err != nil {
		return session.User{}, err
	}
	u, err := a.service.Authenticate(email, password)
	if err != nil {
		return session.User{}, session.ErrInvalidCredentials
	}
	return toSessionUser(u), nil
}

func (a *SessionAuthenticator) Register(ctx context.Context, name, email, password string) (session.User, error) {
	if err := ctx.Err(); err != nil {
		return session.User{}, err
	}
	u, err := a.service.Register(User{Name: name, Email: email, Password: password})
	if err != nil {
		return session.User{}, err
	}
	return toSessionUser(u), nil
}

func toSessionUser(u User) session.User {
	role := session.RoleCustomer
	if u.Role == RoleAdmin {
		role = session.RoleAdmin
	}
	return session.User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  role,
	}
}

var _ session.Authenticator = (*SessionAuthenticator)(nil)
