package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/chapterhub/internal/proto"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// courses

func (s *GRPCServer) GenerateUploadURL(ctx context.Context, req *pb.Empty) (*pb.UploadTarget, error) {
	target, err := s.courses.GenerateUploadURL(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GenerateUploadURL_FullMethodName, err)
	}
	return &pb.UploadTarget{StorageId: target.StorageID, UploadUrl: target.UploadURL}, nil
}

func (s *GRPCServer) GetFileURL(ctx context.Context, req *pb.FileRequest) (*pb.URLResponse, error) {
	url, err := s.courses.GetFileURL(ctx, fileRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetFileURL_FullMethodName, err)
	}
	return &pb.URLResponse{Url: url}, nil
}

func (s *GRPCServer) CreateSyllabus(ctx context.Context, req *pb.CreateSyllabusRequest) (*pb.IDResponse, error) {
	id, err := s.courses.CreateSyllabus(ctx, createSyllabusRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_CreateSyllabus_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) GetUserCourses(ctx context.Context, req *pb.Empty) (*pb.CoursesResponse, error) {
	cs, err := s.courses.GetUserCourses(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetUserCourses_FullMethodName, err)
	}

	var courses []*pb.Course
	for _, c := range cs {
		courses = append(courses, toPBCourseView(c))
	}
	return &pb.CoursesResponse{Courses: courses}, nil
}

func (s *GRPCServer) GetCourse(ctx context.Context, req *pb.CourseRequest) (*pb.Course, error) {
	c, err := s.courses.GetCourse(ctx, courseRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetCourse_FullMethodName, err)
	}
	return toPBCourseView(c), nil
}

func (s *GRPCServer) UpdateSyllabusInfo(ctx context.Context, req *pb.UpdateSyllabusInfoRequest) (*pb.Course, error) {
	c, err := s.courses.UpdateSyllabusInfo(ctx, updateSyllabusInfoRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_UpdateSyllabusInfo_FullMethodName, err)
	}
	return toPBCourse(c), nil
}

func (s *GRPCServer) CreateAssignment(ctx context.Context, req *pb.CreateAssignmentRequest) (*pb.IDResponse, error) {
	id, err := s.courses.CreateAssignment(ctx, createAssignmentRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_CreateAssignment_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) GetSyllabusAssignments(ctx context.Context, req *pb.CourseRequest) (*pb.AssignmentsResponse, error) {
	as, err := s.courses.GetSyllabusAssignments(ctx, courseRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetSyllabusAssignments_FullMethodName, err)
	}

	var assignments []*pb.Assignment
	for _, a := range as {
		assignments = append(assignments, toPBAssignment(a))
	}
	return &pb.AssignmentsResponse{Assignments: assignments}, nil
}

func (s *GRPCServer) ExtractAssignments(ctx context.Context, req *pb.ExtractAssignmentsRequest) (*pb.ExtractionResult, error) {
	r, err := s.syllabus.ExtractAssignments(ctx, extractAssignmentsRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_ExtractAssignments_FullMethodName, err)
	}
	return toPBExtractionResult(r), nil
}

func (s *GRPCServer) RecalculateCourseGPA(ctx context.Context, req *pb.CourseRequest) (*pb.Course, error) {
	c, err := s.courses.RecalculateCourseGPA(ctx, courseRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_RecalculateCourseGPA_FullMethodName, err)
	}
	return toPBCourse(c), nil
}

// grades

func (s *GRPCServer) AddGrade(ctx context.Context, req *pb.AddGradeRequest) (*pb.IDResponse, error) {
	id, err := s.grades.AddGrade(ctx, addGradeRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_AddGrade_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) GetUserGrades(ctx context.Context, req *pb.Empty) (*pb.GradesResponse, error) {
	gs, err := s.grades.GetUserGrades(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetUserGrades_FullMethodName, err)
	}

	var grades []*pb.Grade
	for _, g := range gs {
		grades = append(grades, toPBGrade(g))
	}
	return &pb.GradesResponse{Grades: grades}, nil
}

func (s *GRPCServer) CalculateSemesterGPA(ctx context.Context, req *pb.GPAFilter) (*pb.SemesterGPA, error) {
	r, err := s.grades.CalculateSemesterGPA(ctx, gpaFilter(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_CalculateSemesterGPA_FullMethodName, err)
	}
	return &pb.SemesterGPA{Gpa: r.GPA, TotalCredits: r.TotalCredits, Semester: r.Semester, Year: int32(r.Year)}, nil
}

func (s *GRPCServer) GetSchoolAverageGPA(ctx context.Context, req *pb.GPAFilter) (*pb.SchoolAverage, error) {
	r, err := s.grades.GetSchoolAverageGPA(ctx, gpaFilter(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetSchoolAverageGPA_FullMethodName, err)
	}
	return &pb.SchoolAverage{AverageGpa: r.AverageGPA, TotalStudents: int32(r.TotalStudents)}, nil
}

func (s *GRPCServer) GetAvailableSemesters(ctx context.Context, req *pb.Empty) (*pb.SemestersResponse, error) {
	ss, err := s.grades.GetAvailableSemesters(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetAvailableSemesters_FullMethodName, err)
	}

	var semesters []*pb.SemesterYear
	for _, sy := range ss {
		semesters = append(semesters, &pb.SemesterYear{Semester: sy.Semester, Year: int32(sy.Year)})
	}
	return &pb.SemestersResponse{Semesters: semesters}, nil
}

// users

func (s *GRPCServer) GetCurrentUser(ctx context.Context, req *pb.Empty) (*pb.User, error) {
	u, err := s.users.GetCurrentUser(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetCurrentUser_FullMethodName, err)
	}
	return toPBUser(u), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.User, error) {
	u, err := s.users.UpdateProfile(ctx, updateProfileRequest(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_UpdateProfile_FullMethodName, err)
	}
	return toPBUser(u), nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {
	u, err := s.users.CreateUser(ctx, providerProfile(req))
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_CreateUser_FullMethodName, err)
	}
	return toPBUser(u), nil
}

func (s *GRPCServer) GetAllUsers(ctx context.Context, req *pb.Empty) (*pb.UsersResponse, error) {
	us, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetAllUsers_FullMethodName, err)
	}

	var users []*pb.User
	for _, u := range us {
		users = append(users, toPBUser(u))
	}
	return &pb.UsersResponse{Users: users}, nil
}

func (s *GRPCServer) ApproveUser(ctx context.Context, req *pb.ApproveUserRequest) (*pb.ApproveResponse, error) {
	if err := s.users.ApproveUser(ctx, approveUserRequest(req)); err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_ApproveUser_FullMethodName, err)
	}
	return &pb.ApproveResponse{Approved: true}, nil
}

func (s *GRPCServer) GetSchoolStatistics(ctx context.Context, req *pb.Empty) (*pb.SchoolStatisticsResponse, error) {
	stats, err := s.users.GetSchoolStatistics(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.ChapterHub_GetSchoolStatistics_FullMethodName, err)
	}
	return &pb.SchoolStatisticsResponse{Schools: toPBSchoolStatistics(stats)}, nil
}
