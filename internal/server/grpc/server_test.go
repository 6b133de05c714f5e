package grpc

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	pb "github.com/dmitrijs2005/chapterhub/internal/proto"
	"github.com/dmitrijs2005/chapterhub/internal/server/auth"
	"github.com/dmitrijs2005/chapterhub/internal/server/config"
	"github.com/dmitrijs2005/chapterhub/internal/server/models"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chapterhub/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const testSecret = "secret"

// -------- test fakes --------

type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memBlobs) PresignPut(context.Context) (string, string, error) {
	return "blob-1", "https://blobs.test/put/blob-1", nil
}

func (m *memBlobs) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, common.ErrFileNotFound
	}
	return data, nil
}

func (m *memBlobs) PresignGet(_ context.Context, key string) (string, error) {
	return "https://blobs.test/get/" + key, nil
}

func (m *memBlobs) put(key, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = []byte(data)
}

type staticExtractor struct{}

func (staticExtractor) ExtractSyllabus(context.Context, string) (*models.Extraction, error) {
	return &models.Extraction{
		CourseInfo:  &models.ExtractedCourseInfo{Name: ptr("Intro to CS"), Confidence: models.Confidence{Name: 0.9}},
		Assignments: []models.ExtractedAssignment{{Name: "Final", Weight: 100}},
	}, nil
}

func ptr[T any](v T) *T { return &v }

// -------- harness --------

type harness struct {
	rm     *repomanager.MemoryRepositoryManager
	blobs  *memBlobs
	server *GRPCServer
	client pb.ChapterHubClient
	conn   *grpc.ClientConn
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	rm := repomanager.NewMemoryRepositoryManager()
	blobs := &memBlobs{objects: map[string][]byte{}}
	l := logging.Nop{}

	s := NewGRPCServer("bufnet", l, Services{
		Courses:  services.NewCourseService(rm, blobs, l),
		Syllabus: services.NewSyllabusService(rm, blobs, staticExtractor{}, time.Second, l),
		Grades:   services.NewGradeService(rm, config.GPAModeCached, l),
		Users:    services.NewUserService(rm, config.GPAModeCached, l),
	}, testSecret)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	return &harness{rm: rm, blobs: blobs, server: s, client: pb.NewChapterHubClient(conn), conn: conn}
}

// login stores a user and returns a context carrying a token for it.
func (h *harness) login(t *testing.T, workosID string, role models.Role) (*models.User, context.Context) {
	t.Helper()
	u, err := h.rm.Users().Upsert(context.Background(), &models.User{
		WorkOSID:  workosID,
		Email:     workosID + "@example.edu",
		UpdatedAt: "2025-09-06T02:59:32.612Z",
		Role:      role,
	})
	require.NoError(t, err)

	token, err := auth.GenerateToken(auth.Identity{Subject: workosID}, []byte(testSecret), time.Minute)
	require.NoError(t, err)

	return u, metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

// -------- tests --------

func TestServer_Ping(t *testing.T) {
	h := newHarness(t)

	out, err := h.client.Ping(context.Background(), &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", out.GetStatus())
}

func TestServer_Health(t *testing.T) {
	h := newHarness(t)

	resp, err := healthpb.NewHealthClient(h.conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: pb.ChapterHub_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestServer_Authentication(t *testing.T) {
	h := newHarness(t)
	h.login(t, "user_1", models.RoleBrother)

	expired, err := auth.GenerateToken(auth.Identity{Subject: "user_1"}, []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	valid, err := auth.GenerateToken(auth.Identity{Subject: "user_1"}, []byte(testSecret), time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name     string
		md       []string
		wantCode codes.Code
		wantMsg  string
	}{
		{"no token", nil, codes.Unauthenticated, "Unauthorized: Authentication required"},
		{"garbage token", []string{common.AccessTokenHeaderName, "not-a-jwt"}, codes.Unauthenticated, "invalid token"},
		{"expired token", []string{common.AccessTokenHeaderName, expired}, codes.Unauthenticated, "token expired"},
		{"bearer token", []string{common.AuthorizationHeaderName, "Bearer " + valid}, codes.OK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.md != nil {
				ctx = metadata.AppendToOutgoingContext(ctx, tt.md...)
			}

			out, err := h.client.GetCurrentUser(ctx, &pb.Empty{})
			assert.Equal(t, tt.wantCode, status.Code(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, status.Convert(err).Message())
			} else {
				assert.Equal(t, "user_1", out.GetWorkosId())
				assert.Equal(t, string(models.RoleBrother), out.GetMemberType())
			}
		})
	}
}

func TestServer_CourseAndGradeFlow(t *testing.T) {
	h := newHarness(t)
	_, ctx := h.login(t, "user_1", models.RoleBrother)

	target, err := h.client.GenerateUploadURL(ctx, &pb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "blob-1", target.GetStorageId())
	h.blobs.put(target.GetStorageId(), "CS101 Fall 2025")

	created, err := h.client.CreateSyllabus(ctx, &pb.CreateSyllabusRequest{
		CourseName: "Untitled", CourseCode: "CS101", Semester: "Fall", Year: 2025,
		FileId: target.GetStorageId(), FileName: "syllabus.txt",
	})
	require.NoError(t, err)

	extracted, err := h.client.ExtractAssignments(ctx, &pb.ExtractAssignmentsRequest{
		CourseId: created.GetId(), AutoProcess: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), extracted.GetCount())
	assert.Equal(t, "Intro to CS", extracted.GetCourseInfo().GetName())
	assert.Nil(t, extracted.GetCourseInfo().Code, "undetermined fields stay unset")

	course, err := h.client.GetCourse(ctx, &pb.CourseRequest{CourseId: created.GetId()})
	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", course.GetCourseName())
	assert.True(t, course.GetSyllabusProcessed())
	assert.Equal(t, "https://blobs.test/get/blob-1", course.GetFileUrl())
	assert.NotNil(t, course.GetCreatedAt())
	assert.NotNil(t, course.GetSyllabusUploadedAt())

	url, err := h.client.GetFileURL(ctx, &pb.FileRequest{FileId: "blob-1"})
	require.NoError(t, err)
	assert.Equal(t, "https://blobs.test/get/blob-1", url.GetUrl())

	list, err := h.client.GetSyllabusAssignments(ctx, &pb.CourseRequest{CourseId: created.GetId()})
	require.NoError(t, err)
	require.Len(t, list.GetAssignments(), 1)

	grade, err := h.client.AddGrade(ctx, &pb.AddGradeRequest{
		AssignmentId: list.GetAssignments()[0].GetId(), PointsEarned: 92, MaxPoints: 100,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, grade.GetId())

	recalculated, err := h.client.RecalculateCourseGPA(ctx, &pb.CourseRequest{CourseId: created.GetId()})
	require.NoError(t, err)
	require.NotNil(t, recalculated.CurrentGpa)
	assert.Equal(t, 3.7, recalculated.GetCurrentGpa())

	semester, err := h.client.CalculateSemesterGPA(ctx, &pb.GPAFilter{Semester: "Fall", Year: 2025})
	require.NoError(t, err)
	assert.Equal(t, 3.7, semester.GetGpa())
	assert.Equal(t, 3.0, semester.GetTotalCredits())
	assert.Equal(t, "Fall", semester.GetSemester())
	assert.Equal(t, int32(2025), semester.GetYear())

	semesters, err := h.client.GetAvailableSemesters(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, semesters.GetSemesters(), 1)
	assert.Equal(t, "Fall", semesters.GetSemesters()[0].GetSemester())

	grades, err := h.client.GetUserGrades(ctx, &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, grades.GetGrades(), 1)
	assert.Equal(t, "Final", grades.GetGrades()[0].GetAssignment().GetName())
	assert.Equal(t, created.GetId(), grades.GetGrades()[0].GetCourse().GetId())
}

func TestServer_GetFileURLOfAnotherUser(t *testing.T) {
	h := newHarness(t)
	_, ownerCtx := h.login(t, "owner", models.RoleBrother)
	_, intruderCtx := h.login(t, "intruder", models.RoleBrother)

	_, err := h.client.CreateSyllabus(ownerCtx, &pb.CreateSyllabusRequest{
		CourseName: "Private", Semester: "Fall", Year: 2025, FileId: "blob-1", FileName: "s.pdf",
	})
	require.NoError(t, err)

	_, err = h.client.GetFileURL(intruderCtx, &pb.FileRequest{FileId: "blob-1"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.client.CreateSyllabus(intruderCtx, &pb.CreateSyllabusRequest{
		CourseName: "Mine now", Semester: "Fall", Year: 2025, FileId: "blob-1", FileName: "s.pdf",
	})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestServer_ErrorCodes(t *testing.T) {
	h := newHarness(t)
	_, ctx := h.login(t, "user_1", models.RoleBrother)

	_, err := h.client.AddGrade(ctx, &pb.AddGradeRequest{AssignmentId: "a", PointsEarned: 1, MaxPoints: 0})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.client.AddGrade(ctx, &pb.AddGradeRequest{AssignmentId: "nope", PointsEarned: 1, MaxPoints: 10})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, "Assignment not found or access denied", status.Convert(err).Message())

	_, err = h.client.GetAllUsers(ctx, &pb.Empty{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "Admin access required", status.Convert(err).Message())
}

func TestServer_AdminFlow(t *testing.T) {
	h := newHarness(t)
	_, adminCtx := h.login(t, "admin_1", models.RoleAdmin)
	member, _ := h.login(t, "user_1", models.RoleBrother)

	users, err := h.client.GetAllUsers(adminCtx, &pb.Empty{})
	require.NoError(t, err)
	assert.Len(t, users.GetUsers(), 2)

	approved, err := h.client.ApproveUser(adminCtx, &pb.ApproveUserRequest{UserId: member.ID})
	require.NoError(t, err)
	assert.True(t, approved.GetApproved())

	stats, err := h.client.GetSchoolStatistics(adminCtx, &pb.Empty{})
	require.NoError(t, err)
	require.Len(t, stats.GetSchools(), 1)
	assert.Equal(t, services.UnknownSchool, stats.GetSchools()[0].GetSchool())
	assert.Equal(t, int32(2), stats.GetSchools()[0].GetTotalUsers())
}

func TestServer_CreateUser(t *testing.T) {
	h := newHarness(t)
	_, adminCtx := h.login(t, "admin_1", models.RoleAdmin)
	_, memberCtx := h.login(t, "user_1", models.RoleBrother)

	req := &pb.CreateUserRequest{
		WorkosId:  "user_new",
		FirstName: "Dana",
		Email:     "dana@example.edu",
		UpdatedAt: "2025-09-06T02:59:32.612Z",
	}

	_, err := h.client.CreateUser(memberCtx, req)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "Admin access required", status.Convert(err).Message())

	u, err := h.client.CreateUser(adminCtx, req)
	require.NoError(t, err)
	assert.NotEmpty(t, u.GetId())
	assert.Equal(t, "user_new", u.GetWorkosId())
	assert.Equal(t, string(models.RolePublic), u.GetMemberType())

	req.UpdatedAt = "2025-09-06"
	_, err = h.client.CreateUser(adminCtx, req)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{common.ErrAuthenticationRequired, codes.Unauthenticated},
		{common.ErrCourseAccessDenied, codes.PermissionDenied},
		{common.ErrFileInUse, codes.PermissionDenied},
		{common.ErrFileNotFound, codes.NotFound},
		{common.NewError(common.ErrUnsupportedInput, "csv"), codes.InvalidArgument},
		{common.NewError(common.ErrValidation, "bad"), codes.InvalidArgument},
		{common.ErrNoResponse, codes.Unavailable},
		{common.NewError(common.ErrMalformedResponse, "bad json"), codes.FailedPrecondition},
		{context.Canceled, codes.Internal},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, codeOf(tt.err), tt.err.Error())
	}
}

func TestToStatus_HidesInternalMessages(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop{}}

	err := s.toStatus(context.Background(), pb.ChapterHub_GetCourse_FullMethodName, assert.AnError)
	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, "internal error", status.Convert(err).Message())
}

func TestTokenFromMetadata(t *testing.T) {
	assert.Empty(t, tokenFromMetadata(context.Background()))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AuthorizationHeaderName, "Basic abc"))
	assert.Empty(t, tokenFromMetadata(ctx))

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		common.AccessTokenHeaderName, "primary",
		common.AuthorizationHeaderName, "Bearer secondary",
	))
	assert.Equal(t, "primary", tokenFromMetadata(ctx))
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, Services{}, testSecret)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, srv.Run(ctx))
}
