// Package grades persists assignment scores, one per (assignment, user).
package grades

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

type Repository interface {
	// Upsert writes g as the single grade for (g.AssignmentID, g.UserID) in
	// one atomic step and returns its id.
	Upsert(ctx context.Context, g *models.Grade) (string, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Grade, error)
	// ListByCourse returns userID's grades on assignments of courseID.
	ListByCourse(ctx context.Context, courseID, userID string) ([]*models.Grade, error)
}
