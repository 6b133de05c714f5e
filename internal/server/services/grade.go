package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/gpa"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
)

// GradeService records grades and aggregates them into GPAs.
type GradeService struct {
	repomanager repomanager.RepositoryManager
	source      courseGPASource
	logger      logging.Logger
}

// NewGradeService builds a GradeService reading course GPAs as gpaMode
// dictates (config.GPAModeCached or config.GPAModeLive).
func NewGradeService(m repomanager.RepositoryManager, gpaMode string, l logging.Logger) *GradeService {
	return &GradeService{repomanager: m, source: courseGPASource{mode: gpaMode}, logger: l.With("module", "grades")}
}

// AddGrade stores the caller's grade for an assignment, replacing any
// earlier one, and returns its id. The percentage is always recomputed.
func (s *GradeService) AddGrade(ctx context.Context, req AddGradeRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return "", err
	}

	a, err := ownedAssignment(ctx, s.repomanager, user, req.AssignmentID)
	if err != nil {
		return "", err
	}

	id, err := s.repomanager.Grades().Upsert(ctx, &models.Grade{
		AssignmentID: a.ID,
		UserID:       user.ID,
		PointsEarned: req.PointsEarned,
		MaxPoints:    req.MaxPoints,
		Percentage:   models.Percentage(req.PointsEarned, req.MaxPoints),
		EnteredAt:    time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug(ctx, "grade stored", "grade_id", id, "assignment_id", a.ID)
	return id, nil
}

// GetUserGrades returns the caller's grades, each joined with its
// assignment and that assignment's course when they still exist.
func (s *GradeService) GetUserGrades(ctx context.Context) ([]*models.GradeView, error) {
	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	gs, err := s.repomanager.Grades().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.GradeView, 0, len(gs))
	for _, g := range gs {
		v := &models.GradeView{Grade: *g}

		a, err := s.repomanager.Assignments().GetByID(ctx, g.AssignmentID)
		switch {
		case err == nil:
			v.Assignment = a
		case !errors.Is(err, common.ErrNotFound):
			return nil, err
		}

		if v.Assignment != nil {
			c, err := s.repomanager.Courses().GetByID(ctx, v.Assignment.CourseID)
			switch {
			case err == nil:
				v.Course = c
			case !errors.Is(err, common.ErrNotFound):
				return nil, err
			}
		}

		out = append(out, v)
	}
	return out, nil
}

// CalculateSemesterGPA is the caller's credit-weighted GPA over courses
// matching f, rounded to two decimals. In live mode the recomputed course
// GPAs are stored as well.
func (s *GradeService) CalculateSemesterGPA(ctx context.Context, f gpa.Filter) (*models.SemesterGPA, error) {
	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	var v, credits float64
	calc := func(ctx context.Context, r repomanager.Repositories) error {
		var err error
		v, credits, err = s.source.userGPA(ctx, r, user.ID, f, s.source.live())
		return err
	}

	if s.source.live() {
		err = s.repomanager.WithTx(ctx, calc)
	} else {
		err = calc(ctx, s.repomanager)
	}
	if err != nil {
		return nil, err
	}

	return &models.SemesterGPA{
		GPA:          gpa.Round2(v),
		TotalCredits: credits,
		Semester:     f.SemesterLabel(),
		Year:         f.Year,
	}, nil
}

// GetSchoolAverageGPA averages the filtered GPA of every user sharing the
// caller's school. Users without credited courses are left out of both the
// average and the count.
func (s *GradeService) GetSchoolAverageGPA(ctx context.Context, f gpa.Filter) (*models.SchoolAverage, error) {
	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	students, err := s.repomanager.Users().ListBySchool(ctx, user.School)
	if err != nil {
		return nil, err
	}

	var total float64
	var n int
	for _, st := range students {
		v, credits, err := s.source.userGPA(ctx, s.repomanager, st.ID, f, false)
		if err != nil {
			return nil, err
		}
		if credits > 0 {
			total += v
			n++
		}
	}

	var avg float64
	if n > 0 {
		avg = total / float64(n)
	}
	return &models.SchoolAverage{AverageGPA: gpa.Round2(avg), TotalStudents: n}, nil
}

// GetAvailableSemesters lists the distinct (semester, year) pairs of the
// caller's courses, newest course first.
func (s *GradeService) GetAvailableSemesters(ctx context.Context) ([]models.SemesterYear, error) {
	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	cs, err := s.repomanager.Courses().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[models.SemesterYear]struct{}, len(cs))
	out := make([]models.SemesterYear, 0, len(cs))
	for _, c := range cs {
		k := models.SemesterYear{Semester: c.Semester, Year: c.Year}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out, nil
}
