package users

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

// Repository stores members. Lookups of missing rows return
// common.ErrNotFound.
type Repository interface {
	// Upsert inserts u, or refreshes the provider-owned profile fields of the
	// row with the same WorkOSID when u.UpdatedAt is strictly newer.
	// It returns the row as stored afterwards.
	Upsert(ctx context.Context, u *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ListBySchool(ctx context.Context, school string) ([]*models.User, error)
	UpdateSchool(ctx context.Context, id string, school string) (*models.User, error)
	SetApprovedBy(ctx context.Context, id string, approverID string) error
}
