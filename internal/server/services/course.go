// Package services contains server-side business logic. Every operation
// resolves the caller through the auth gate before it touches the store and
// re-checks ownership on each course and assignment it reads or writes.
package services

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chapterhub/internal/server/storage"
)

// CourseService manages courses, their syllabus files and manually entered
// assignments.
type CourseService struct {
	repomanager repomanager.RepositoryManager
	blobs       storage.BlobStore
	logger      logging.Logger
}

func NewCourseService(m repomanager.RepositoryManager, blobs storage.BlobStore, l logging.Logger) *CourseService {
	return &CourseService{repomanager: m, blobs: blobs, logger: l.With("module", "courses")}
}

// GenerateUploadURL returns a fresh storage id and a presigned URL the
// client uploads the syllabus file to.
func (s *CourseService) GenerateUploadURL(ctx context.Context) (*models.UploadTarget, error) {
	if _, err := auth.RequireAuth(ctx); err != nil {
		return nil, err
	}

	key, url, err := s.blobs.PresignPut(ctx)
	if err != nil {
		s.logger.Error(ctx, "presign upload failed", "error", err)
		return nil, err
	}

	return &models.UploadTarget{StorageID: key, UploadURL: url}, nil
}

// GetFileURL resolves a storage id to a download URL. Only files attached
// to one of the caller's courses resolve.
func (s *CourseService) GetFileURL(ctx context.Context, req FileRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return "", err
	}

	cs, err := s.repomanager.Courses().ListByFileID(ctx, req.FileID)
	if err != nil {
		return "", err
	}
	if !slices.ContainsFunc(cs, func(c *models.Course) bool { return c.UserID == user.ID }) {
		s.logger.Debug(ctx, "file url refused", "file_id", req.FileID, "user_id", user.ID)
		return "", common.ErrFileNotFound
	}

	return s.blobs.PresignGet(ctx, req.FileID)
}

// CreateSyllabus creates a course for an uploaded syllabus and returns its
// id. Extraction runs separately. A file already attached to another user's
// course is refused.
func (s *CourseService) CreateSyllabus(ctx context.Context, req CreateSyllabusRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return "", err
	}

	attached, err := s.repomanager.Courses().ListByFileID(ctx, req.FileID)
	if err != nil {
		return "", err
	}
	if slices.ContainsFunc(attached, func(c *models.Course) bool { return c.UserID != user.ID }) {
		s.logger.Info(ctx, "syllabus file in use", "file_id", req.FileID, "user_id", user.ID)
		return "", common.ErrFileInUse
	}

	now := time.Now().UTC()
	c, err := s.repomanager.Courses().Create(ctx, &models.Course{
		UserID:             user.ID,
		Name:               req.CourseName,
		Code:               req.CourseCode,
		Semester:           req.Semester,
		Year:               req.Year,
		CreditHours:        models.DefaultCreditHours,
		SyllabusFileID:     &req.FileID,
		SyllabusFileName:   &req.FileName,
		SyllabusProcessed:  false,
		SyllabusUploadedAt: &now,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "course created", "course_id", c.ID, "user_id", user.ID)
	return c.ID, nil
}

// GetUserCourses lists the caller's courses that carry a syllabus, newest
// first, each with a download URL.
func (s *CourseService) GetUserCourses(ctx context.Context) ([]*models.CourseView, error) {
	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	cs, err := s.repomanager.Courses().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*models.CourseView, 0, len(cs))
	for _, c := range cs {
		if !c.HasSyllabus() {
			continue
		}
		v, err := s.view(ctx, c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *CourseService) GetCourse(ctx context.Context, req CourseRequest) (*models.CourseView, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	c, err := ownedCourse(ctx, s.repomanager, user, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !c.HasSyllabus() {
		return nil, common.ErrNoSyllabusAttached
	}

	return s.view(ctx, c)
}

func (s *CourseService) view(ctx context.Context, c *models.Course) (*models.CourseView, error) {
	url, err := s.blobs.PresignGet(ctx, *c.SyllabusFileID)
	if err != nil {
		return nil, err
	}
	return &models.CourseView{Course: *c, FileURL: &url}, nil
}

// UpdateSyllabusInfo applies the fields present in req to the course and
// returns the stored result. A request without fields changes nothing.
func (s *CourseService) UpdateSyllabusInfo(ctx context.Context, req UpdateSyllabusInfoRequest) (*models.Course, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	c, err := ownedCourse(ctx, s.repomanager, user, req.CourseID)
	if err != nil {
		return nil, err
	}

	u := req.update()
	if u.Empty() {
		return c, nil
	}
	return s.repomanager.Courses().UpdateInfo(ctx, c.ID, u)
}

// CreateAssignment adds one assignment to an owned course. Max points
// default to 100.
func (s *CourseService) CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (string, error) {
	if err := validateRequest(req); err != nil {
		return "", err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return "", err
	}

	c, err := ownedCourse(ctx, s.repomanager, user, req.CourseID)
	if err != nil {
		return "", err
	}

	a, err := s.repomanager.Assignments().Create(ctx, models.ExtractedAssignment{
		Name:      req.Name,
		DueDate:   req.DueDate,
		Weight:    req.Weight,
		Category:  req.Category,
		MaxPoints: req.MaxPoints,
	}.ToAssignment(c.ID, user.ID))
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

// GetSyllabusAssignments lists the caller's assignments of a course.
func (s *CourseService) GetSyllabusAssignments(ctx context.Context, req CourseRequest) ([]*models.Assignment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	return s.repomanager.Assignments().ListByCourse(ctx, req.CourseID, user.ID)
}

// RecalculateCourseGPA derives the course GPA from its graded assignments
// and stores it. A course with no weighted grades keeps its stored value.
func (s *CourseService) RecalculateCourseGPA(ctx context.Context, req CourseRequest) (*models.Course, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := auth.RequireUser(ctx, s.repomanager.Users())
	if err != nil {
		return nil, err
	}

	var out *models.Course
	err = s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		c, err := ownedCourse(ctx, r, user, req.CourseID)
		if err != nil {
			return err
		}

		v, ok, err := recompute(ctx, r, c)
		if err != nil {
			return err
		}
		if ok {
			if err := r.Courses().SetCurrentGPA(ctx, c.ID, &v); err != nil {
				return err
			}
			c.CurrentGPA = &v
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "course gpa recalculated", "course_id", out.ID)
	return out, nil
}
