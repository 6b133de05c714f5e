package grpc

import (
	"testing"
	"time"

	pb "github.com/dmitrijs2005/chapterhub/internal/proto"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func TestToPBCourseView(t *testing.T) {
	created := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	got := toPBCourseView(&models.CourseView{
		Course: models.Course{
			ID: "c-1", UserID: "u-1", Name: "Intro", Code: "CS101", Semester: "Fall", Year: 2025,
			CreditHours: 3, SyllabusFileID: ptr("blob-1"), SyllabusFileName: ptr("s.pdf"), CreatedAt: created,
		},
		FileURL: ptr("https://blobs.test/get/blob-1"),
	})

	want := &pb.Course{
		Id: "c-1", UserId: "u-1", CourseName: "Intro", CourseCode: "CS101", Semester: "Fall", Year: 2025,
		CreditHours: 3, SyllabusFileId: ptr("blob-1"), SyllabusFileName: ptr("s.pdf"),
		CreatedAt: timestamppb.New(created), FileUrl: ptr("https://blobs.test/get/blob-1"),
	}
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("course mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, got.CurrentGpa, "unset GPA is not sent as zero")
	assert.Nil(t, got.SyllabusUploadedAt)
}

func TestUpdateSyllabusInfoRequest_KeepsUnsetFields(t *testing.T) {
	req := updateSyllabusInfoRequest(&pb.UpdateSyllabusInfoRequest{CourseId: "c-1", Year: ptr(int32(2026))})

	assert.Equal(t, "c-1", req.CourseID)
	assert.Equal(t, ptr(2026), req.Year)
	assert.Nil(t, req.CourseName)
	assert.Nil(t, req.CreditHours)
}

func TestToPBSchoolStatistics_SortedBySchool(t *testing.T) {
	got := toPBSchoolStatistics(map[string]*models.SchoolStatistics{
		"Unknown": {TotalUsers: 1},
		"MIT":     {TotalUsers: 2, TotalCourses: 3, AverageGPA: 3.5},
	})

	want := []*pb.SchoolStatistics{
		{School: "MIT", TotalUsers: 2, TotalCourses: 3, AverageGpa: 3.5},
		{School: "Unknown", TotalUsers: 1},
	}
	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("statistics mismatch (-want +got):\n%s", diff)
	}
}
