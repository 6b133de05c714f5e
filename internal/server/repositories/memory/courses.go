package memory

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/google/uuid"
)

type Courses struct {
	db *db
}

func (r *Courses) Create(_ context.Context, c *models.Course) (*models.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = r.db.now().UTC()

	stored := *c
	r.db.st.courses[c.ID] = &stored
	r.db.st.next(c.ID)
	return c, nil
}

func (r *Courses) GetByID(_ context.Context, id string) (*models.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.st.courses[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (r *Courses) ListByUser(_ context.Context, userID string) ([]*models.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*models.Course
	for _, c := range r.db.st.courses {
		if c.UserID == userID {
			cv := *c
			out = append(out, &cv)
		}
	}
	sortByOrder(r.db.st, out, func(c *models.Course) string { return c.ID }, true)
	return out, nil
}

func (r *Courses) ListByFileID(_ context.Context, fileID string) ([]*models.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*models.Course
	for _, c := range r.db.st.courses {
		if c.SyllabusFileID != nil && *c.SyllabusFileID == fileID {
			cv := *c
			out = append(out, &cv)
		}
	}
	sortByOrder(r.db.st, out, func(c *models.Course) string { return c.ID }, true)
	return out, nil
}

func (r *Courses) UpdateInfo(_ context.Context, id string, u models.CourseInfoUpdate) (*models.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.st.courses[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	u.Apply(c)
	out := *c
	return &out, nil
}

func (r *Courses) SetProcessed(_ context.Context, id string, processed bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.st.courses[id]
	if !ok {
		return common.ErrNotFound
	}
	c.SyllabusProcessed = processed
	return nil
}

func (r *Courses) SetCurrentGPA(_ context.Context, id string, gpa *float64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.st.courses[id]
	if !ok {
		return common.ErrNotFound
	}
	if gpa == nil {
		c.CurrentGPA = nil
	} else {
		v := *gpa
		c.CurrentGPA = &v
	}
	return nil
}
