package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T) (*CourseService, *fakeBlobs, *models.User, context.Context) {
	t.Helper()
	rm := newRM(t)
	blobs := newFakeBlobs()
	u, ctx := seedUser(t, rm, "user_1", "", models.RoleBrother)
	return NewCourseService(rm, blobs, nopLogger), blobs, u, ctx
}

func validSyllabusRequest() CreateSyllabusRequest {
	return CreateSyllabusRequest{
		CourseName: "Intro to CS",
		CourseCode: "CS101",
		Semester:   "Fall",
		Year:       2025,
		FileID:     "blob-1",
		FileName:   "syllabus.pdf",
	}
}

func TestCourseService_GenerateUploadURL(t *testing.T) {
	svc, blobs, _, ctx := newCourseService(t)

	_, err := svc.GenerateUploadURL(context.Background())
	assert.ErrorIs(t, err, common.ErrAuthenticationRequired)

	target, err := svc.GenerateUploadURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "blob-1", target.StorageID)
	assert.Equal(t, "https://blobs.test/put/blob-1", target.UploadURL)

	blobs.putErr = &common.Error{Kind: common.ErrExternalService, Msg: "s3 down"}
	_, err = svc.GenerateUploadURL(ctx)
	assert.ErrorIs(t, err, common.ErrExternalService)
}

func TestCourseService_CreateSyllabusAndGetCourse(t *testing.T) {
	svc, _, u, ctx := newCourseService(t)

	id, err := svc.CreateSyllabus(ctx, validSyllabusRequest())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	v, err := svc.GetCourse(ctx, CourseRequest{CourseID: id})
	require.NoError(t, err)
	assert.Equal(t, u.ID, v.UserID)
	assert.Equal(t, "Intro to CS", v.Name)
	assert.Equal(t, models.DefaultCreditHours, v.CreditHours)
	assert.False(t, v.SyllabusProcessed)
	assert.NotNil(t, v.SyllabusUploadedAt)
	require.NotNil(t, v.FileURL)
	assert.Equal(t, "https://blobs.test/get/blob-1", *v.FileURL)
}

func TestCourseService_CreateSyllabusValidation(t *testing.T) {
	svc, _, _, ctx := newCourseService(t)

	req := validSyllabusRequest()
	req.FileID = ""
	_, err := svc.CreateSyllabus(ctx, req)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "fileId")

	_, err = svc.CreateSyllabus(auth.WithIdentity(context.Background(), &auth.Identity{Subject: "ghost"}), validSyllabusRequest())
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestCourseService_GetCourseAccess(t *testing.T) {
	svc, _, _, ctx := newCourseService(t)

	id, err := svc.CreateSyllabus(ctx, validSyllabusRequest())
	require.NoError(t, err)

	_, otherCtx := seedUser(t, svc.repomanager, "user_2", "", models.RoleBrother)

	_, err = svc.GetCourse(otherCtx, CourseRequest{CourseID: id})
	assert.ErrorIs(t, err, common.ErrCourseAccessDenied)
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	_, err = svc.GetCourse(ctx, CourseRequest{CourseID: "missing"})
	assert.ErrorIs(t, err, common.ErrCourseNotFound)
}

func TestCourseService_GetCourseWithoutSyllabus(t *testing.T) {
	svc, _, u, ctx := newCourseService(t)

	c, err := svc.repomanager.Courses().Create(ctx, &models.Course{UserID: u.ID, Name: "Manual", CreditHours: 3})
	require.NoError(t, err)

	_, err = svc.GetCourse(ctx, CourseRequest{CourseID: c.ID})
	assert.ErrorIs(t, err, common.ErrNoSyllabusAttached)
}

func TestCourseService_GetUserCourses(t *testing.T) {
	svc, _, u, ctx := newCourseService(t)

	first, err := svc.CreateSyllabus(ctx, validSyllabusRequest())
	require.NoError(t, err)

	_, err = svc.repomanager.Courses().Create(ctx, &models.Course{UserID: u.ID, Name: "No file", CreditHours: 3})
	require.NoError(t, err)

	req := validSyllabusRequest()
	req.FileID = "blob-2"
	second, err := svc.CreateSyllabus(ctx, req)
	require.NoError(t, err)

	list, err := svc.GetUserCourses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
	assert.Equal(t, "https://blobs.test/get/blob-2", *list[0].FileURL)
}

func TestCourseService_UpdateSyllabusInfo(t *testing.T) {
	svc, _, _, ctx := newCourseService(t)

	id, err := svc.CreateSyllabus(ctx, validSyllabusRequest())
	require.NoError(t, err)

	c, err := svc.UpdateSyllabusInfo(ctx, UpdateSyllabusInfoRequest{CourseID: id})
	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", c.Name)

	c, err = svc.UpdateSyllabusInfo(ctx, UpdateSyllabusInfoRequest{
		CourseID:    id,
		CourseCode:  ptr("CS102"),
		CreditHours: ptr(4.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", c.Name)
	assert.Equal(t, "CS102", c.Code)
	assert.Equal(t, 4.0, c.CreditHours)

	_, err = svc.UpdateSyllabusInfo(ctx, UpdateSyllabusInfoRequest{CourseID: id, CreditHours: ptr(-1.0)})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCourseService_CreateAssignmentAndList(t *testing.T) {
	svc, _, u, ctx := newCourseService(t)

	courseID, err := svc.CreateSyllabus(ctx, validSyllabusRequest())
	require.NoError(t, err)

	id, err := svc.CreateAssignment(ctx, CreateAssignmentRequest{
		CourseID: courseID,
		Name:     "Homework 1",
		Weight:   20,
		DueDate:  ptr("2025-09-30"),
	})
	require.NoError(t, err)

	list, err := svc.GetSyllabusAssignments(ctx, CourseRequest{CourseID: courseID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, u.ID, list[0].UserID)
	assert.Equal(t, models.DefaultMaxPoints, list[0].MaxPoints)

	_, err = svc.CreateAssignment(ctx, CreateAssignmentRequest{CourseID: courseID, Name: "Bad", Weight: 120})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.CreateAssignment(ctx, CreateAssignmentRequest{CourseID: courseID, Name: "Bad date", DueDate: ptr("next week")})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCourseService_RecalculateCourseGPA(t *testing.T) {
	svc, _, u, ctx := newCourseService(t)
	rm := svc.repomanager

	c := seedCourse(t, rm, u, "Fall", 2025, nil, 3)
	hw := seedAssignment(t, rm, c, "Homework", 50)
	exam := seedAssignment(t, rm, c, "Exam", 50)
	seedAssignment(t, rm, c, "Ungraded", 10)

	grades := NewGradeService(rm, "cached", nopLogger)

	out, err := svc.RecalculateCourseGPA(ctx, CourseRequest{CourseID: c.ID})
	require.NoError(t, err)
	assert.Nil(t, out.CurrentGPA, "no grades keeps the stored value")

	_, err = grades.AddGrade(ctx, AddGradeRequest{AssignmentID: hw.ID, PointsEarned: 95, MaxPoints: 100})
	require.NoError(t, err)
	_, err = grades.AddGrade(ctx, AddGradeRequest{AssignmentID: exam.ID, PointsEarned: 85, MaxPoints: 100})
	require.NoError(t, err)

	out, err = svc.RecalculateCourseGPA(ctx, CourseRequest{CourseID: c.ID})
	require.NoError(t, err)
	require.NotNil(t, out.CurrentGPA)
	assert.Equal(t, 3.7, *out.CurrentGPA)

	stored, err := rm.Courses().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.7, *stored.CurrentGPA)
}

func TestCourseService_GetFileURL(t *testing.T) {
	svc, _, _, ctx := newCourseService(t)

	_, err := svc.CreateSyllabus(ctx, validSyllabusRequest())
	require.NoError(t, err)

	url, err := svc.GetFileURL(ctx, FileRequest{FileID: "blob-1"})
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.test/get/blob-1", url)

	_, err = svc.GetFileURL(ctx, FileRequest{FileID: "blob-9"})
	assert.ErrorIs(t, err, common.ErrFileNotFound, "unattached file")

	_, err = svc.GetFileURL(ctx, FileRequest{})
	var ce *common.Error
	assert.True(t, errors.As(err, &ce))
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.GetFileURL(context.Background(), FileRequest{FileID: "blob-1"})
	assert.ErrorIs(t, err, common.ErrAuthenticationRequired)
}

func TestCourseService_GetFileURLOfAnotherUser(t *testing.T) {
	svc, _, _, ownerCtx := newCourseService(t)

	_, err := svc.CreateSyllabus(ownerCtx, validSyllabusRequest())
	require.NoError(t, err)

	_, intruderCtx := seedUser(t, svc.repomanager, "user_2", "", models.RoleBrother)

	url, err := svc.GetFileURL(intruderCtx, FileRequest{FileID: "blob-1"})
	assert.ErrorIs(t, err, common.ErrFileNotFound)
	assert.Empty(t, url)
}

func TestCourseService_CreateSyllabusWithFileOfAnotherUser(t *testing.T) {
	svc, _, _, ownerCtx := newCourseService(t)

	_, err := svc.CreateSyllabus(ownerCtx, validSyllabusRequest())
	require.NoError(t, err)

	intruder, intruderCtx := seedUser(t, svc.repomanager, "user_2", "", models.RoleBrother)

	_, err = svc.CreateSyllabus(intruderCtx, validSyllabusRequest())
	assert.ErrorIs(t, err, common.ErrFileInUse)
	assert.ErrorIs(t, err, common.ErrAccessDenied)

	cs, err := svc.repomanager.Courses().ListByUser(context.Background(), intruder.ID)
	require.NoError(t, err)
	assert.Empty(t, cs, "no course is created")

	// the owner may attach the same file again
	_, err = svc.CreateSyllabus(ownerCtx, validSyllabusRequest())
	assert.NoError(t, err)
}
