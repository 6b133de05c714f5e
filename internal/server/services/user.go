package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/gpa"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
)

// UnknownSchool groups users without a school in statistics.
const UnknownSchool = "Unknown"

// UserService manages member profiles and the admin views over them.
type UserService struct {
	repomanager repomanager.RepositoryManager
	source      courseGPASource
	logger      logging.Logger
}

func NewUserService(m repomanager.RepositoryManager, gpaMode string, l logging.Logger) *UserService {
	return &UserService{repomanager: m, source: courseGPASource{mode: gpaMode}, logger: l.With("module", "users")}
}

// UpsertUser stores the provider profile. An existing user is refreshed
// only when the profile's updatedAt is newer than the stored one; both are
// fixed-width ISO-8601 UTC strings so they compare lexicographically.
func (s *UserService) UpsertUser(ctx context.Context, p models.ProviderProfile) (*models.User, error) {
	if err := validateRequest(p); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users().Upsert(ctx, p.ToUser())
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "user upserted", "user_id", u.ID, "updated_at", u.UpdatedAt)
	return u, nil
}

// CreateUser lets an admin register a member ahead of their first sign-in.
// The profile is stored the same way UpsertUser stores it, as a public user.
func (s *UserService) CreateUser(ctx context.Context, p models.ProviderProfile) (*models.User, error) {
	admin, err := auth.RequireAdmin(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}
	if err := validateRequest(p); err != nil {
		return nil, err
	}

	u, err := s.repomanager.Users().Upsert(ctx, p.ToUser())
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user created", "user_id", u.ID, "created_by", admin.ID)
	return u, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context) (*models.User, error) {
	return auth.RequireUser(ctx, s.repomanager.Users())
}

func (s *UserService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*models.User, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	if req.School == nil {
		return user, nil
	}
	return s.repomanager.Users().UpdateSchool(ctx, user.ID, *req.School)
}

func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	if _, err := auth.RequireAdmin(ctx, s.repomanager.Users()); err != nil {
		return nil, err
	}
	return s.repomanager.Users().List(ctx)
}

// ApproveUser records the calling admin as the approver of req.UserID.
func (s *UserService) ApproveUser(ctx context.Context, req ApproveUserRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	admin, err := auth.RequireAdmin(ctx, s.repomanager.Users())
	if err != nil {
		return err
	}

	if err := s.repomanager.Users().SetApprovedBy(ctx, req.UserID, admin.ID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrUserNotFound
		}
		return err
	}

	s.logger.Info(ctx, "user approved", "user_id", req.UserID, "approved_by", admin.ID)
	return nil
}

// GetSchoolStatistics groups all users by school. The average GPA of a
// school is the sum of its members' GPAs divided by its member count.
func (s *UserService) GetSchoolStatistics(ctx context.Context) (map[string]*models.SchoolStatistics, error) {
	if _, err := auth.RequireAdmin(ctx, s.repomanager.Users()); err != nil {
		return nil, err
	}

	users, err := s.repomanager.Users().List(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]*models.SchoolStatistics)
	sums := make(map[string]float64)

	for _, u := range users {
		school := u.School
		if school == "" {
			school = UnknownSchool
		}

		st, ok := stats[school]
		if !ok {
			st = &models.SchoolStatistics{}
			stats[school] = st
		}
		st.TotalUsers++

		cs, err := s.repomanager.Courses().ListByUser(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		st.TotalCourses += len(cs)

		if err := s.source.resolve(ctx, s.repomanager, cs, false); err != nil {
			return nil, err
		}
		if v, credits := gpa.CreditWeighted(cs); credits > 0 {
			sums[school] += v
		}
	}

	for school, st := range stats {
		st.AverageGPA = gpa.Round2(sums[school] / float64(st.TotalUsers))
	}
	return stats, nil
}
