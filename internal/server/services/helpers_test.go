package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/config"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeBlobs struct {
	mu      sync.Mutex
	n       int
	objects map[string][]byte
	putErr  error
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: map[string][]byte{}}
}

func (f *fakeBlobs) PresignPut(context.Context) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", "", f.putErr
	}
	f.n++
	key := fmt.Sprintf("blob-%d", f.n)
	return key, "https://blobs.test/put/" + key, nil
}

func (f *fakeBlobs) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, common.ErrFileNotFound
	}
	return data, nil
}

func (f *fakeBlobs) PresignGet(_ context.Context, key string) (string, error) {
	return "https://blobs.test/get/" + key, nil
}

func (f *fakeBlobs) put(key string, data string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = []byte(data)
}

type fakeExtractor struct {
	out     *models.Extraction
	err     error
	gotText string
	calls   int
}

func (f *fakeExtractor) ExtractSyllabus(_ context.Context, text string) (*models.Extraction, error) {
	f.calls++
	f.gotText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

// -------- helpers --------

func ptr[T any](v T) *T { return &v }

func newRM(t *testing.T) *repomanager.MemoryRepositoryManager {
	t.Helper()
	return repomanager.NewMemoryRepositoryManager()
}

// seedUser stores a user and returns it with a context authenticated as it.
func seedUser(t *testing.T, rm repomanager.RepositoryManager, workosID, school string, role models.Role) (*models.User, context.Context) {
	t.Helper()
	u, err := rm.Users().Upsert(context.Background(), &models.User{
		WorkOSID:  workosID,
		Email:     workosID + "@example.edu",
		UpdatedAt: "2025-09-06T02:59:32.612Z",
		Role:      role,
	})
	require.NoError(t, err)

	if school != "" {
		u, err = rm.Users().UpdateSchool(context.Background(), u.ID, school)
		require.NoError(t, err)
	}

	return u, auth.WithIdentity(context.Background(), &auth.Identity{Subject: workosID})
}

func seedCourse(t *testing.T, rm repomanager.RepositoryManager, u *models.User, semester string, year int, gpa *float64, credits float64) *models.Course {
	t.Helper()
	c, err := rm.Courses().Create(context.Background(), &models.Course{
		UserID:           u.ID,
		Name:             "Course " + semester,
		Code:             "C101",
		Semester:         semester,
		Year:             year,
		CreditHours:      credits,
		CurrentGPA:       gpa,
		SyllabusFileID:   ptr("blob-x"),
		SyllabusFileName: ptr("syllabus.txt"),
	})
	require.NoError(t, err)
	return c
}

func seedAssignment(t *testing.T, rm repomanager.RepositoryManager, c *models.Course, name string, weight float64) *models.Assignment {
	t.Helper()
	a, err := rm.Assignments().Create(context.Background(), &models.Assignment{
		CourseID:  c.ID,
		UserID:    c.UserID,
		Name:      name,
		Weight:    weight,
		MaxPoints: models.DefaultMaxPoints,
	})
	require.NoError(t, err)
	return a
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return cfg
}

var nopLogger = logging.Nop{}
