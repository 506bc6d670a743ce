// Package auth provides the storefront's authentication capability. The
// shipped implementation is simulated: any sign-in with non-empty fields
// succeeds. The interface exists so a real identity provider can be
// substituted without touching the store engine or the checkout flow.
package auth

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/xenking/churro-storefront/internal/store"
)

// Field validation errors, surfaced to the user through the notifier by
// calling code. The store engine is never invoked on a failed sign-in.
var (
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrEmptyPassword = errors.New("password is required")
)

// Authenticator creates a session identity from sign-in credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, name, email, password string) (*store.User, error)
}

var _ Authenticator = (*Simulated)(nil)

// Simulated implements Authenticator without any credential verification.
type Simulated struct{}

// NewSimulated returns the mock authenticator used by the storefront.
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Authenticate validates that all fields are non-empty and mints a user
// with a fresh id. The password is checked for presence only and is
// discarded immediately.
func (a *Simulated) Authenticate(_ context.Context, name, email, password string) (*store.User, error) {
	switch {
	case name == "":
		return nil, ErrEmptyName
	case email == "":
		return nil, ErrEmptyEmail
	case password == "":
		return nil, ErrEmptyPassword
	}

	return &store.User{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
	}, nil
}
