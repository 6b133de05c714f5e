package services

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/server/config"
	"github.com/dmitrijs2005/chapterhub/internal/server/gpa"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
)

// courseGPASource decides where a course's GPA comes from. In cached mode
// it is the stored currentGPA. In live mode it is recomputed from the
// course's assignments and grades.
type courseGPASource struct {
	mode string
}

func (s courseGPASource) live() bool { return s.mode == config.GPAModeLive }

// recompute returns the GPA of c derived from its grades. ok is false when
// no weighted assignment has been graded yet.
func recompute(ctx context.Context, r repomanager.Repositories, c *models.Course) (float64, bool, error) {
	as, err := r.Assignments().ListByCourse(ctx, c.ID, c.UserID)
	if err != nil {
		return 0, false, err
	}
	gs, err := r.Grades().ListByCourse(ctx, c.ID, c.UserID)
	if err != nil {
		return 0, false, err
	}
	v, ok := gpa.CourseGPA(as, gs)
	return v, ok, nil
}

// resolve fills CurrentGPA of each course according to the mode. In live
// mode with writeBack set, recomputed values are stored.
func (s courseGPASource) resolve(ctx context.Context, r repomanager.Repositories, cs []*models.Course, writeBack bool) error {
	if !s.live() {
		return nil
	}

	for _, c := range cs {
		v, ok, err := recompute(ctx, r, c)
		if err != nil {
			return err
		}
		if !ok {
			c.CurrentGPA = nil
			continue
		}
		c.CurrentGPA = &v
		if writeBack {
			if err := r.Courses().SetCurrentGPA(ctx, c.ID, &v); err != nil {
				return err
			}
		}
	}
	return nil
}

// userGPA is the credit-weighted GPA of userID's courses matching f.
func (s courseGPASource) userGPA(ctx context.Context, r repomanager.Repositories, userID string, f gpa.Filter, writeBack bool) (float64, float64, error) {
	cs, err := r.Courses().ListByUser(ctx, userID)
	if err != nil {
		return 0, 0, err
	}
	cs = f.Apply(cs)
	if err := s.resolve(ctx, r, cs, writeBack); err != nil {
		return 0, 0, err
	}
	v, credits := gpa.CreditWeighted(cs)
	return v, credits, nil
}
