package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chapterhub/internal/server/storage"
	"github.com/dmitrijs2005/chapterhub/internal/textextract"
)

// ConfidenceThreshold is the score a course-info field must exceed to be
// written during auto-processing.
const ConfidenceThreshold = 0.7

// SyllabusExtractor turns syllabus text into structured course data.
type SyllabusExtractor interface {
	ExtractSyllabus(ctx context.Context, text string) (*models.Extraction, error)
}

// SyllabusService runs the extraction pipeline for an uploaded syllabus.
type SyllabusService struct {
	repomanager repomanager.RepositoryManager
	blobs       storage.BlobStore
	extractor   SyllabusExtractor
	pdfTimeout  time.Duration
	logger      logging.Logger
}

func NewSyllabusService(m repomanager.RepositoryManager, blobs storage.BlobStore, e SyllabusExtractor, pdfTimeout time.Duration, l logging.Logger) *SyllabusService {
	return &SyllabusService{
		repomanager: m,
		blobs:       blobs,
		extractor:   e,
		pdfTimeout:  pdfTimeout,
		logger:      l.With("module", "syllabus"),
	}
}

// ExtractAssignments reads the course's syllabus file, extracts course info
// and assignments from it and, with AutoProcess set, stores them. The full
// extraction is returned either way. A failed extraction leaves the course
// untouched so it can be retried.
func (s *SyllabusService) ExtractAssignments(ctx context.Context, req ExtractAssignmentsRequest) (*models.ExtractionResult, error) {
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

	data, err := s.blobs.Get(ctx, *c.SyllabusFileID)
	if err != nil {
		return nil, err
	}

	var fileName string
	if c.SyllabusFileName != nil {
		fileName = *c.SyllabusFileName
	}

	text, err := s.extractText(ctx, data, fileName)
	if err != nil {
		s.logger.Warn(ctx, "text extraction failed", "course_id", c.ID, "error", err)
		return nil, err
	}

	ex, err := s.extractor.ExtractSyllabus(ctx, text)
	if err != nil {
		return nil, err
	}

	if ex.Assignments == nil {
		ex.Assignments = []models.ExtractedAssignment{}
	}

	if req.AutoProcess {
		if err := s.autoProcess(ctx, c, user, ex); err != nil {
			s.logger.Error(ctx, "auto-process failed", "course_id", c.ID, "error", err)
			return nil, err
		}
		s.logger.Info(ctx, "syllabus processed", "course_id", c.ID, "assignments", len(ex.Assignments))
	}

	return &models.ExtractionResult{
		CourseInfo:  ex.CourseInfo,
		Assignments: ex.Assignments,
		Count:       len(ex.Assignments),
	}, nil
}

func (s *SyllabusService) extractText(ctx context.Context, data []byte, fileName string) (string, error) {
	if s.pdfTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.pdfTimeout)
		defer cancel()
	}
	return textextract.Extract(ctx, data, fileName)
}

// autoProcess writes the confident course fields, every assignment and the
// processed flag in one transaction.
func (s *SyllabusService) autoProcess(ctx context.Context, c *models.Course, user *models.User, ex *models.Extraction) error {
	return s.repomanager.WithTx(ctx, func(ctx context.Context, r repomanager.Repositories) error {
		if u := models.CourseInfoUpdateFrom(ex.CourseInfo, ConfidenceThreshold); !u.Empty() {
			if _, err := r.Courses().UpdateInfo(ctx, c.ID, u); err != nil {
				return err
			}
		}

		for _, a := range ex.Assignments {
			if _, err := r.Assignments().Create(ctx, a.ToAssignment(c.ID, user.ID)); err != nil {
				return err
			}
		}

		return r.Courses().SetProcessed(ctx, c.ID, true)
	})
}
