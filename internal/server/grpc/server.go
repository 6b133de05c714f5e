// Package grpc exposes the chapterhub services over gRPC using the
// chapterhub.v1.ChapterHub service generated into internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/chapterhub/internal/logging"
	pb "github.com/dmitrijs2005/chapterhub/internal/proto"
	"github.com/dmitrijs2005/chapterhub/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Services bundles the business services served over gRPC.
type Services struct {
	Courses  *services.CourseService
	Syllabus *services.SyllabusService
	Grades   *services.GradeService
	Users    *services.UserService
}

type GRPCServer struct {
	pb.UnimplementedChapterHubServer
	address   string
	courses   *services.CourseService
	syllabus  *services.SyllabusService
	grades    *services.GradeService
	users     *services.UserService
	health    *health.Server
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, svcs Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		courses:   svcs.Courses,
		syllabus:  svcs.Syllabus,
		grades:    svcs.Grades,
		users:     svcs.Users,
		health:    health.NewServer(),
		logger:    l.With("module", "grpc_server"),
		jwtSecret: []byte(secretKey),
	}
}

// newServer builds a grpc.Server with the app API and the health service
// registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterChapterHubServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)
	s.health.SetServingStatus(pb.ChapterHub_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
