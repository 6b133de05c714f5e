package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syllabusFixture struct {
	svc       *SyllabusService
	rm        *repomanager.MemoryRepositoryManager
	blobs     *fakeBlobs
	extractor *fakeExtractor
	user      *models.User
	ctx       context.Context
}

func newSyllabusFixture(t *testing.T) *syllabusFixture {
	t.Helper()
	rm := newRM(t)
	blobs := newFakeBlobs()
	ex := &fakeExtractor{out: sampleExtraction()}
	u, ctx := seedUser(t, rm, "user_1", "", models.RoleBrother)
	return &syllabusFixture{
		svc:       NewSyllabusService(rm, blobs, ex, time.Second, nopLogger),
		rm:        rm,
		blobs:     blobs,
		extractor: ex,
		user:      u,
		ctx:       ctx,
	}
}

func (f *syllabusFixture) course(t *testing.T, fileID, fileName string) *models.Course {
	t.Helper()
	c, err := f.rm.Courses().Create(f.ctx, &models.Course{
		UserID:           f.user.ID,
		Name:             "Untitled",
		Code:             "TBD",
		Semester:         "Spring",
		Year:             2024,
		CreditHours:      3,
		SyllabusFileID:   &fileID,
		SyllabusFileName: &fileName,
	})
	require.NoError(t, err)
	return c
}

func sampleExtraction() *models.Extraction {
	return &models.Extraction{
		CourseInfo: &models.ExtractedCourseInfo{
			Name:     ptr("Intro to CS"),
			Code:     ptr("CS101"),
			Semester: ptr("Fall"),
			Year:     ptr(2025),
			Confidence: models.Confidence{
				Name:     0.95,
				Code:     0.98,
				Semester: 0.5,
				Year:     0.9,
			},
		},
		Assignments: []models.ExtractedAssignment{
			{Name: "Midterm Exam", DueDate: ptr("2025-10-15"), Weight: 30, Category: ptr("exam"), MaxPoints: ptr(50.0)},
			{Name: "Homework", Weight: 20},
		},
	}
}

func TestSyllabusService_ExtractWithoutAutoProcess(t *testing.T) {
	f := newSyllabusFixture(t)
	c := f.course(t, "blob-1", "syllabus.TXT")
	f.blobs.put("blob-1", "CS101 Fall 2025")

	res, err := f.svc.ExtractAssignments(f.ctx, ExtractAssignmentsRequest{CourseID: c.ID})
	require.NoError(t, err)

	assert.Equal(t, "CS101 Fall 2025", f.extractor.gotText)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "Intro to CS", *res.CourseInfo.Name)

	stored, err := f.rm.Courses().GetByID(f.ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Untitled", stored.Name)
	assert.False(t, stored.SyllabusProcessed)

	as, err := f.rm.Assignments().ListByCourse(f.ctx, c.ID, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, as)
}

func TestSyllabusService_ExtractWithAutoProcess(t *testing.T) {
	f := newSyllabusFixture(t)
	c := f.course(t, "blob-1", "syllabus.txt")
	f.blobs.put("blob-1", "syllabus body")

	res, err := f.svc.ExtractAssignments(f.ctx, ExtractAssignmentsRequest{CourseID: c.ID, AutoProcess: true})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)

	stored, err := f.rm.Courses().GetByID(f.ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", stored.Name)
	assert.Equal(t, "CS101", stored.Code)
	assert.Equal(t, "Spring", stored.Semester, "low-confidence semester is kept")
	assert.Equal(t, 2025, stored.Year)
	assert.True(t, stored.SyllabusProcessed)

	as, err := f.rm.Assignments().ListByCourse(f.ctx, c.ID, f.user.ID)
	require.NoError(t, err)
	require.Len(t, as, 2)

	byName := map[string]*models.Assignment{}
	for _, a := range as {
		byName[a.Name] = a
	}
	assert.Equal(t, 50.0, byName["Midterm Exam"].MaxPoints)
	assert.Equal(t, models.DefaultMaxPoints, byName["Homework"].MaxPoints)
	assert.Nil(t, byName["Homework"].DueDate)
	assert.Nil(t, byName["Homework"].Category)
}

func TestSyllabusService_EmptyAssignments(t *testing.T) {
	f := newSyllabusFixture(t)
	f.extractor.out = &models.Extraction{CourseInfo: &models.ExtractedCourseInfo{}}
	c := f.course(t, "blob-1", "a.txt")
	f.blobs.put("blob-1", "x")

	res, err := f.svc.ExtractAssignments(f.ctx, ExtractAssignmentsRequest{CourseID: c.ID, AutoProcess: true})
	require.NoError(t, err)
	assert.NotNil(t, res.Assignments)
	assert.Equal(t, 0, res.Count)

	stored, err := f.rm.Courses().GetByID(f.ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, stored.SyllabusProcessed)
	assert.Equal(t, "Untitled", stored.Name)
}

func TestSyllabusService_Failures(t *testing.T) {
	f := newSyllabusFixture(t)
	csv := f.course(t, "blob-csv", "grades.csv")
	f.blobs.put("blob-csv", "a,b,c")
	missing := f.course(t, "blob-gone", "gone.txt")

	noFile, err := f.rm.Courses().Create(f.ctx, &models.Course{UserID: f.user.ID, Name: "Manual", CreditHours: 3})
	require.NoError(t, err)

	_, otherCtx := seedUser(t, f.rm, "user_2", "", models.RoleBrother)

	tests := []struct {
		name    string
		ctx     context.Context
		course  string
		wantErr error
		msg     string
	}{
		{name: "no identity", ctx: context.Background(), course: csv.ID, wantErr: common.ErrAuthenticationRequired},
		{name: "unknown course", ctx: f.ctx, course: "nope", wantErr: common.ErrCourseNotFound},
		{name: "foreign course", ctx: otherCtx, course: csv.ID, wantErr: common.ErrCourseAccessDenied},
		{name: "no syllabus", ctx: f.ctx, course: noFile.ID, wantErr: common.ErrNoSyllabusAttached},
		{name: "missing blob", ctx: f.ctx, course: missing.ID, wantErr: common.ErrFileNotFound},
		{name: "unsupported type", ctx: f.ctx, course: csv.ID, wantErr: common.ErrUnsupportedInput, msg: "File type 'csv' is not supported"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ExtractAssignments(tt.ctx, ExtractAssignmentsRequest{CourseID: tt.course, AutoProcess: true})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}

	assert.Zero(t, f.extractor.calls)

	stored, err := f.rm.Courses().GetByID(f.ctx, csv.ID)
	require.NoError(t, err)
	assert.False(t, stored.SyllabusProcessed)
}

func TestSyllabusService_ExtractorErrorLeavesCourseIntact(t *testing.T) {
	f := newSyllabusFixture(t)
	f.extractor.err = common.ErrNoResponse
	c := f.course(t, "blob-1", "s.txt")
	f.blobs.put("blob-1", "text")

	_, err := f.svc.ExtractAssignments(f.ctx, ExtractAssignmentsRequest{CourseID: c.ID, AutoProcess: true})
	assert.ErrorIs(t, err, common.ErrExternalService)

	stored, err := f.rm.Courses().GetByID(f.ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, stored.SyllabusProcessed)

	f.extractor.err = nil
	_, err = f.svc.ExtractAssignments(f.ctx, ExtractAssignmentsRequest{CourseID: c.ID, AutoProcess: true})
	require.NoError(t, err)
}
