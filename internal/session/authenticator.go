package session

import (
	"context"
	"time"
)

// DemoAuthenticator reproduces the storefront's demo sign-in policy: one
// distinguished credential maps to the admin identity, any other non-empty
// pair signs in as a customer. It exists for local demos and tests only;
// production deployments plug in a real credential store instead.
type DemoAuthenticator struct {
	AdminEmail    string
	AdminPassword string
	// Latency simulates the network round trip of a real credential check.
	Latency time.Duration
}

func NewDemoAuthenticator() *DemoAuthenticator {
	return &DemoAuthenticator{
		AdminEmail:    "admin@arisport.com",
		AdminPassword: "Admin123",
		Latency:       500 * time.Millisecond,
	}
}

func (a *DemoAuthenticator) Authenticate(ctx context.Context, email, password string) (User, error) {
	if err := a.wait(ctx); err != nil {
		return User{}, err
	}
	if email == a.AdminEmail && password == a.AdminPassword {
		return User{ID: 1, Name: "ARISPORT Admin", Email: email, Role: RoleAdmin}, nil
	}
	if email != "" && password != "" {
		return User{ID: 2, Name: "Müşteri Kullanıcı", Email: email, Role: RoleCustomer}, nil
	}
	return User{}, ErrInvalidCredentials
}

func (a *DemoAuthenticator) Register(ctx context.Context, name, email, password string) (User, error) {
	if err := a.wait(ctx); err != nil {
		return User{}, err
	}
	if name == "" || email == "" || password == "" {
		return User{}, ErrFieldsRequired
	}
	return User{
		ID:    int(time.Now().UnixMilli()),
		Name:  name,
		Email: email,
		Role:  RoleCustomer,
	}, nil
}

func (a *DemoAuthenticator) wait(ctx context.Context) error {
	if a.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(a.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
