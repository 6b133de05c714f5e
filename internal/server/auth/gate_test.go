package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers map[string]*models.User

func (f fakeUsers) GetByWorkOSID(_ context.Context, id string) (*models.User, error) {
	if id == "broken" {
		return nil, errors.New("db error: connection reset")
	}
	u, ok := f[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func TestRequireAuth(t *testing.T) {
	_, err := RequireAuth(context.Background())
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Equal(t, "Unauthorized: Authentication required", err.Error())

	_, err = RequireAuth(WithIdentity(context.Background(), &Identity{}))
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.Equal(t, "Unauthorized: User ID not found", err.Error())

	_, err = RequireAuth(WithIdentity(context.Background(), nil))
	assert.ErrorIs(t, err, common.ErrAuthenticationRequired)

	id, err := RequireAuth(WithIdentity(context.Background(), &Identity{Subject: "s"}))
	require.NoError(t, err)
	assert.Equal(t, "s", id.Subject)
}

func TestRequireUserAndAdmin(t *testing.T) {
	users := fakeUsers{
		"member": {ID: "1", WorkOSID: "member", Role: models.RoleBrother},
		"admin":  {ID: "2", WorkOSID: "admin", Role: models.RoleAdmin},
	}
	ctxFor := func(sub string) context.Context {
		return WithIdentity(context.Background(), &Identity{Subject: sub})
	}

	u, err := RequireUser(ctxFor("member"), users)
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	_, err = RequireUser(ctxFor("ghost"), users)
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	_, err = RequireUser(ctxFor("broken"), users)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrNotFound)

	_, err = RequireUser(context.Background(), users)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)

	_, err = RequireAdmin(ctxFor("member"), users)
	assert.ErrorIs(t, err, common.ErrAdminAccessRequired)
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	u, err = RequireAdmin(ctxFor("admin"), users)
	require.NoError(t, err)
	assert.Equal(t, "2", u.ID)
}
