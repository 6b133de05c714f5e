package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
)

// ownedCourse loads courseID and checks that user owns it.
func ownedCourse(ctx context.Context, r repomanager.Repositories, user *models.User, courseID string) (*models.Course, error) {
	c, err := r.Courses().GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrCourseNotFound
		}
		return nil, err
	}
	if c.UserID != user.ID {
		return nil, common.ErrCourseAccessDenied
	}
	return c, nil
}

// ownedAssignment loads assignmentID and checks that user owns it. Missing
// and foreign assignments are reported the same way.
func ownedAssignment(ctx context.Context, r repomanager.Repositories, user *models.User, assignmentID string) (*models.Assignment, error) {
	a, err := r.Assignments().GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrAssignmentNotFound
		}
		return nil, err
	}
	if a.UserID != user.ID {
		return nil, common.ErrAssignmentNotFound
	}
	return a, nil
}
