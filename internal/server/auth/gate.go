// Package auth issues and verifies access tokens and enforces who may call
// what. The verified Identity travels explicitly in context.Context.
package auth

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

// Identity is the verified caller as asserted by the identity provider.
type Identity struct {
	Subject string `json:"subject"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored in ctx, if any.
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(*Identity)
	return id, ok && id != nil
}

// UserLookup resolves a provider subject to a stored user.
type UserLookup interface {
	GetByWorkOSID(ctx context.Context, workosID string) (*models.User, error)
}

// RequireAuth fails unless ctx carries an identity with a subject.
func RequireAuth(ctx context.Context) (*Identity, error) {
	id, ok := IdentityFrom(ctx)
	if !ok {
		return nil, common.ErrAuthenticationRequired
	}
	if id.Subject == "" {
		return nil, common.ErrUserIDNotFound
	}
	return id, nil
}

// RequireUser is RequireAuth followed by a lookup of the stored user.
func RequireUser(ctx context.Context, users UserLookup) (*models.User, error) {
	id, err := RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	u, err := users.GetByWorkOSID(ctx, id.Subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// RequireAdmin is RequireUser restricted to the admin role.
func RequireAdmin(ctx context.Context, users UserLookup) (*models.User, error) {
	u, err := RequireUser(ctx, users)
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, common.ErrAdminAccessRequired
	}
	return u, nil
}
