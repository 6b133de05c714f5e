// Package assignments persists the graded components of courses.
package assignments

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Assignment) (*models.Assignment, error)
	GetByID(ctx context.Context, id string) (*models.Assignment, error)
	// ListByCourse returns the assignments of courseID owned by userID.
	ListByCourse(ctx context.Context, courseID, userID string) ([]*models.Assignment, error)
}
