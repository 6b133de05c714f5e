package memory

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/google/uuid"
)

type Assignments struct {
	db *db
}

func (r *Assignments) Create(_ context.Context, a *models.Assignment) (*models.Assignment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.st.courses[a.CourseID]; !ok {
		return nil, common.ErrNotFound
	}

	a.ID = uuid.NewString()
	stored := *a
	r.db.st.assignments[a.ID] = &stored
	r.db.st.next(a.ID)
	return a, nil
}

func (r *Assignments) GetByID(_ context.Context, id string) (*models.Assignment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	a, ok := r.db.st.assignments[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (r *Assignments) ListByCourse(_ context.Context, courseID, userID string) ([]*models.Assignment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*models.Assignment
	for _, a := range r.db.st.assignments {
		if a.CourseID == courseID && a.UserID == userID {
			av := *a
			out = append(out, &av)
		}
	}
	sortByOrder(r.db.st, out, func(a *models.Assignment) string { return a.ID }, false)
	return out, nil
}
