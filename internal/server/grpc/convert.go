package grpc

import (
	"maps"
	"slices"
	"time"

	pb "github.com/dmitrijs2005/chapterhub/internal/proto"
	"github.com/dmitrijs2005/chapterhub/internal/server/gpa"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil || t.IsZero() {
		return nil
	}
	return timestamppb.New(*t)
}

// requests

func fileRequest(req *pb.FileRequest) services.FileRequest {
	return services.FileRequest{FileID: req.GetFileId()}
}

func courseRequest(req *pb.CourseRequest) services.CourseRequest {
	return services.CourseRequest{CourseID: req.GetCourseId()}
}

func createSyllabusRequest(req *pb.CreateSyllabusRequest) services.CreateSyllabusRequest {
	return services.CreateSyllabusRequest{
		CourseName: req.GetCourseName(),
		CourseCode: req.GetCourseCode(),
		Semester:   req.GetSemester(),
		Year:       int(req.GetYear()),
		FileID:     req.GetFileId(),
		FileName:   req.GetFileName(),
	}
}

func updateSyllabusInfoRequest(req *pb.UpdateSyllabusInfoRequest) services.UpdateSyllabusInfoRequest {
	return services.UpdateSyllabusInfoRequest{
		CourseID:    req.GetCourseId(),
		CourseName:  req.CourseName,
		CourseCode:  req.CourseCode,
		Semester:    req.Semester,
		Year:        intPtr(req.Year),
		CreditHours: req.CreditHours,
	}
}

func createAssignmentRequest(req *pb.CreateAssignmentRequest) services.CreateAssignmentRequest {
	return services.CreateAssignmentRequest{
		CourseID:  req.GetCourseId(),
		Name:      req.GetName(),
		DueDate:   req.DueDate,
		Weight:    req.GetWeight(),
		Category:  req.Category,
		MaxPoints: req.MaxPoints,
	}
}

func extractAssignmentsRequest(req *pb.ExtractAssignmentsRequest) services.ExtractAssignmentsRequest {
	return services.ExtractAssignmentsRequest{CourseID: req.GetCourseId(), AutoProcess: req.GetAutoProcess()}
}

func addGradeRequest(req *pb.AddGradeRequest) services.AddGradeRequest {
	return services.AddGradeRequest{
		AssignmentID: req.GetAssignmentId(),
		PointsEarned: req.GetPointsEarned(),
		MaxPoints:    req.GetMaxPoints(),
	}
}

func updateProfileRequest(req *pb.UpdateProfileRequest) services.UpdateProfileRequest {
	return services.UpdateProfileRequest{School: req.School}
}

func approveUserRequest(req *pb.ApproveUserRequest) services.ApproveUserRequest {
	return services.ApproveUserRequest{UserID: req.GetUserId()}
}

func gpaFilter(req *pb.GPAFilter) gpa.Filter {
	return gpa.Filter{Semester: req.GetSemester(), Year: int(req.GetYear())}
}

func providerProfile(req *pb.CreateUserRequest) models.ProviderProfile {
	return models.ProviderProfile{
		ID:                req.GetWorkosId(),
		FirstName:         req.GetFirstName(),
		LastName:          req.GetLastName(),
		Email:             req.GetEmail(),
		EmailVerified:     req.GetEmailVerified(),
		UpdatedAt:         req.GetUpdatedAt(),
		ProfilePictureURL: req.ProfilePictureUrl,
	}
}

// responses

func toPBCourse(c *models.Course) *pb.Course {
	if c == nil {
		return nil
	}
	return &pb.Course{
		Id:                 c.ID,
		UserId:             c.UserID,
		CourseName:         c.Name,
		CourseCode:         c.Code,
		Semester:           c.Semester,
		Year:               int32(c.Year),
		CreditHours:        c.CreditHours,
		CurrentGpa:         c.CurrentGPA,
		SyllabusFileId:     c.SyllabusFileID,
		SyllabusFileName:   c.SyllabusFileName,
		SyllabusProcessed:  c.SyllabusProcessed,
		SyllabusUploadedAt: timestamp(c.SyllabusUploadedAt),
		CreatedAt:          timestamp(&c.CreatedAt),
	}
}

func toPBCourseView(v *models.CourseView) *pb.Course {
	out := toPBCourse(&v.Course)
	out.FileUrl = v.FileURL
	return out
}

func toPBAssignment(a *models.Assignment) *pb.Assignment {
	if a == nil {
		return nil
	}
	return &pb.Assignment{
		Id:        a.ID,
		CourseId:  a.CourseID,
		UserId:    a.UserID,
		Name:      a.Name,
		DueDate:   a.DueDate,
		Weight:    a.Weight,
		Category:  a.Category,
		MaxPoints: a.MaxPoints,
	}
}

func toPBExtractionResult(r *models.ExtractionResult) *pb.ExtractionResult {
	out := &pb.ExtractionResult{Count: int32(r.Count)}
	if info := r.CourseInfo; info != nil {
		out.CourseInfo = &pb.ExtractedCourseInfo{
			Name:     info.Name,
			Code:     info.Code,
			Semester: info.Semester,
			Year:     int32Ptr(info.Year),
			Confidence: &pb.Confidence{
				Name:     info.Confidence.Name,
				Code:     info.Confidence.Code,
				Semester: info.Confidence.Semester,
				Year:     info.Confidence.Year,
			},
		}
	}
	for _, a := range r.Assignments {
		out.Assignments = append(out.Assignments, &pb.ExtractedAssignment{
			Name:      a.Name,
			DueDate:   a.DueDate,
			Weight:    a.Weight,
			Category:  a.Category,
			MaxPoints: a.MaxPoints,
		})
	}
	return out
}

func toPBGrade(g *models.GradeView) *pb.Grade {
	return &pb.Grade{
		Id:           g.ID,
		AssignmentId: g.AssignmentID,
		UserId:       g.UserID,
		PointsEarned: g.PointsEarned,
		MaxPoints:    g.MaxPoints,
		Percentage:   g.Percentage,
		EnteredAt:    timestamp(&g.EnteredAt),
		Assignment:   toPBAssignment(g.Assignment),
		Course:       toPBCourse(g.Course),
	}
}

func toPBUser(u *models.User) *pb.User {
	return &pb.User{
		Id:                u.ID,
		WorkosId:          u.WorkOSID,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Email:             u.Email,
		EmailVerified:     u.EmailVerified,
		ProfilePictureUrl: u.ProfilePictureURL,
		UpdatedAt:         u.UpdatedAt,
		MemberType:        string(u.Role),
		School:            u.School,
		OrganizationIds:   u.OrganizationIDs,
		EntityIds:         u.EntityIDs,
		ApprovedBy:        u.ApprovedBy,
	}
}

// toPBSchoolStatistics flattens the per-school map, ordered by school name.
func toPBSchoolStatistics(stats map[string]*models.SchoolStatistics) []*pb.SchoolStatistics {
	out := make([]*pb.SchoolStatistics, 0, len(stats))
	for _, school := range slices.Sorted(maps.Keys(stats)) {
		st := stats[school]
		out = append(out, &pb.SchoolStatistics{
			School:       school,
			TotalUsers:   int32(st.TotalUsers),
			TotalCourses: int32(st.TotalCourses),
			AverageGpa:   st.AverageGPA,
		})
	}
	return out
}
