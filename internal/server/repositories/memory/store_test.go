package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCourse(t *testing.T, s *Store, userID string) (*models.Course, *models.Assignment) {
	t.Helper()
	ctx := context.Background()
	c, err := s.Live().Courses().Create(ctx, &models.Course{UserID: userID, Name: "Intro", CreditHours: 3})
	require.NoError(t, err)
	a, err := s.Live().Assignments().Create(ctx, &models.Assignment{CourseID: c.ID, UserID: userID, Name: "HW", Weight: 10, MaxPoints: 100})
	require.NoError(t, err)
	return c, a
}

func TestGrades_ConcurrentUpsertKeepsOneRow(t *testing.T) {
	s := New()
	_, a := seedCourse(t, s, "u-1")

	const n = 32
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := s.Live().Grades().Upsert(context.Background(), &models.Grade{
				AssignmentID: a.ID, UserID: "u-1", PointsEarned: float64(i), MaxPoints: 100,
				Percentage: float64(i), EnteredAt: time.Now(),
			})
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	got, err := s.Live().Grades().ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	for _, id := range ids {
		assert.Equal(t, got[0].ID, id)
	}
}

func TestGrades_UpsertUnknownAssignment(t *testing.T) {
	s := New()
	_, err := s.Live().Grades().Upsert(context.Background(), &models.Grade{AssignmentID: "nope", UserID: "u"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGrades_ListByCourse(t *testing.T) {
	s := New()
	ctx := context.Background()
	c1, a1 := seedCourse(t, s, "u-1")
	_, a2 := seedCourse(t, s, "u-1")

	_, err := s.Live().Grades().Upsert(ctx, &models.Grade{AssignmentID: a1.ID, UserID: "u-1", Percentage: 90})
	require.NoError(t, err)
	_, err = s.Live().Grades().Upsert(ctx, &models.Grade{AssignmentID: a2.ID, UserID: "u-1", Percentage: 80})
	require.NoError(t, err)

	got, err := s.Live().Grades().ListByCourse(ctx, c1.ID, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 90.0, got[0].Percentage)
}

func TestUsers_UpsertLastWriterWins(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Live().Users()

	first, err := repo.Upsert(ctx, &models.User{WorkOSID: "w1", FirstName: "Old", UpdatedAt: "2025-01-02T00:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, models.RolePublic, first.Role)

	stale, err := repo.Upsert(ctx, &models.User{WorkOSID: "w1", FirstName: "Stale", UpdatedAt: "2025-01-01T00:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, "Old", stale.FirstName)
	assert.Equal(t, first.ID, stale.ID)

	same, err := repo.Upsert(ctx, &models.User{WorkOSID: "w1", FirstName: "Same", UpdatedAt: "2025-01-02T00:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, "Old", same.FirstName)

	newer, err := repo.Upsert(ctx, &models.User{WorkOSID: "w1", FirstName: "New", UpdatedAt: "2025-01-03T00:00:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, "New", newer.FirstName)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUsers_UpsertKeepsLocalFields(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Live().Users()

	u, err := repo.Upsert(ctx, &models.User{WorkOSID: "w1", UpdatedAt: "1"})
	require.NoError(t, err)
	_, err = repo.UpdateSchool(ctx, u.ID, "State U")
	require.NoError(t, err)
	require.NoError(t, repo.SetApprovedBy(ctx, u.ID, "admin-1"))

	u, err = repo.Upsert(ctx, &models.User{WorkOSID: "w1", UpdatedAt: "2", School: "ignored", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "State U", u.School)
	assert.Equal(t, models.RolePublic, u.Role)
	assert.Equal(t, "admin-1", *u.ApprovedBy)

	bySchool, err := repo.ListBySchool(ctx, "State U")
	require.NoError(t, err)
	assert.Len(t, bySchool, 1)

	assert.ErrorIs(t, repo.SetApprovedBy(ctx, "ghost", "x"), common.ErrNotFound)
	_, err = repo.GetByWorkOSID(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCourses_NewestFirstAndUpdates(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Live().Courses()

	c1, err := repo.Create(ctx, &models.Course{UserID: "u-1", Name: "first"})
	require.NoError(t, err)
	c2, err := repo.Create(ctx, &models.Course{UserID: "u-1", Name: "second"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Course{UserID: "u-2", Name: "other"})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, c2.ID, list[0].ID)
	assert.Equal(t, c1.ID, list[1].ID)

	code := "CS101"
	updated, err := repo.UpdateInfo(ctx, c1.ID, models.CourseInfoUpdate{Code: &code})
	require.NoError(t, err)
	assert.Equal(t, "CS101", updated.Code)
	assert.Equal(t, "first", updated.Name)

	g := 3.7
	require.NoError(t, repo.SetCurrentGPA(ctx, c1.ID, &g))
	g = 1.0
	got, err := repo.GetByID(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.7, *got.CurrentGPA, "stored value is not aliased")

	assert.ErrorIs(t, repo.SetProcessed(ctx, "nope", true), common.ErrNotFound)
}

func TestCourses_ListByFileID(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Live().Courses()

	file := "file-1"
	c, err := repo.Create(ctx, &models.Course{UserID: "u-1", Name: "with file", SyllabusFileID: &file})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Course{UserID: "u-1", Name: "no file"})
	require.NoError(t, err)

	list, err := repo.ListByFileID(ctx, "file-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	list, err = repo.ListByFileID(ctx, "file-2")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdate_RollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := seedCourse(t, s, "u-1")

	boom := errors.New("boom")
	err := s.Update(func(tx *Tx) error {
		if err := tx.Courses().SetProcessed(ctx, c.ID, true); err != nil {
			return err
		}
		if _, err := tx.Assignments().Create(ctx, &models.Assignment{CourseID: c.ID, UserID: "u-1", Name: "Extra"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.Live().Courses().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.SyllabusProcessed)

	list, err := s.Live().Assignments().ListByCourse(ctx, c.ID, "u-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdate_CommitsOnSuccess(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := seedCourse(t, s, "u-1")

	require.NoError(t, s.Update(func(tx *Tx) error {
		return tx.Courses().SetProcessed(ctx, c.ID, true)
	}))

	got, err := s.Live().Courses().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.SyllabusProcessed)
}

func TestUpdate_PanicDiscardsChanges(t *testing.T) {
	s := New()
	ctx := context.Background()
	c, _ := seedCourse(t, s, "u-1")

	require.Panics(t, func() {
		_ = s.Update(func(tx *Tx) error {
			_ = tx.Courses().SetProcessed(ctx, c.ID, true)
			panic("boom")
		})
	})

	got, err := s.Live().Courses().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.SyllabusProcessed)
}
