// Package courses persists courses and their syllabus attachment state.
package courses

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, c *models.Course) (*models.Course, error)
	GetByID(ctx context.Context, id string) (*models.Course, error)
	// ListByUser returns the user's courses, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.Course, error)
	// ListByFileID returns every course the syllabus file is attached to.
	ListByFileID(ctx context.Context, fileID string) ([]*models.Course, error)
	UpdateInfo(ctx context.Context, id string, u models.CourseInfoUpdate) (*models.Course, error)
	SetProcessed(ctx context.Context, id string, processed bool) error
	SetCurrentGPA(ctx context.Context, id string, gpa *float64) error
}
