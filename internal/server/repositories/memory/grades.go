package memory

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/google/uuid"
)

type Grades struct {
	db *db
}

func (r *Grades) Upsert(_ context.Context, g *models.Grade) (string, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.st.assignments[g.AssignmentID]; !ok {
		return "", common.ErrNotFound
	}

	for _, existing := range r.db.st.grades {
		if existing.AssignmentID == g.AssignmentID && existing.UserID == g.UserID {
			existing.PointsEarned = g.PointsEarned
			existing.MaxPoints = g.MaxPoints
			existing.Percentage = g.Percentage
			existing.EnteredAt = g.EnteredAt
			g.ID = existing.ID
			return existing.ID, nil
		}
	}

	g.ID = uuid.NewString()
	stored := *g
	r.db.st.grades[g.ID] = &stored
	r.db.st.next(g.ID)
	return g.ID, nil
}

func (r *Grades) collect(keep func(*models.Grade) bool) []*models.Grade {
	var out []*models.Grade
	for _, g := range r.db.st.grades {
		if keep(g) {
			gv := *g
			out = append(out, &gv)
		}
	}
	sortByOrder(r.db.st, out, func(g *models.Grade) string { return g.ID }, false)
	return out
}

func (r *Grades) ListByUser(_ context.Context, userID string) ([]*models.Grade, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.collect(func(g *models.Grade) bool { return g.UserID == userID }), nil
}

func (r *Grades) ListByCourse(_ context.Context, courseID, userID string) ([]*models.Grade, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.collect(func(g *models.Grade) bool {
		a, ok := r.db.st.assignments[g.AssignmentID]
		return ok && a.CourseID == courseID && g.UserID == userID
	}), nil
}
