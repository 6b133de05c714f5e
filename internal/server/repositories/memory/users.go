package memory

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/google/uuid"
)

type Users struct {
	db *db
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.OrganizationIDs = append([]string{}, u.OrganizationIDs...)
	c.EntityIDs = append([]string{}, u.EntityIDs...)
	return &c
}

func (r *Users) findByWorkOSID(workosID string) *models.User {
	for _, u := range r.db.st.users {
		if u.WorkOSID == workosID {
			return u
		}
	}
	return nil
}

func (r *Users) Upsert(_ context.Context, u *models.User) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing := r.findByWorkOSID(u.WorkOSID)
	if existing == nil {
		stored := copyUser(u)
		stored.ID = uuid.NewString()
		if stored.Role == "" {
			stored.Role = models.RolePublic
		}
		r.db.st.users[stored.ID] = stored
		r.db.st.next(stored.ID)
		return copyUser(stored), nil
	}

	if existing.UpdatedAt < u.UpdatedAt {
		existing.FirstName = u.FirstName
		existing.LastName = u.LastName
		existing.Email = u.Email
		existing.EmailVerified = u.EmailVerified
		existing.ProfilePictureURL = u.ProfilePictureURL
		existing.UpdatedAt = u.UpdatedAt
	}

	return copyUser(existing), nil
}

func (r *Users) GetByID(_ context.Context, id string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.st.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *Users) GetByWorkOSID(_ context.Context, workosID string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u := r.findByWorkOSID(workosID)
	if u == nil {
		return nil, common.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *Users) filter(keep func(*models.User) bool) []*models.User {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []*models.User
	for _, u := range r.db.st.users {
		if keep(u) {
			out = append(out, copyUser(u))
		}
	}
	sortByOrder(r.db.st, out, func(u *models.User) string { return u.ID }, false)
	return out
}

func (r *Users) List(_ context.Context) ([]*models.User, error) {
	return r.filter(func(*models.User) bool { return true }), nil
}

func (r *Users) ListBySchool(_ context.Context, school string) ([]*models.User, error) {
	return r.filter(func(u *models.User) bool { return u.School == school }), nil
}

func (r *Users) UpdateSchool(_ context.Context, id string, school string) (*models.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.st.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	u.School = school
	return copyUser(u), nil
}

func (r *Users) SetApprovedBy(_ context.Context, id string, approverID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	u, ok := r.db.st.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.ApprovedBy = &approverID
	return nil
}
