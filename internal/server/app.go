// Package server wires configuration, storage, services and transports
// into the running chapterhub server and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/chapterhub/internal/llm"
	"github.com/dmitrijs2005/chapterhub/internal/logging"
	"github.com/dmitrijs2005/chapterhub/internal/server/config"
	"github.com/dmitrijs2005/chapterhub/internal/server/httpapi"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/chapterhub/internal/server/services"
	"github.com/dmitrijs2005/chapterhub/internal/server/storage"

	gs "github.com/dmitrijs2005/chapterhub/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	services    gs.Services
	sessions    *services.SessionService
}

// newRepositoryManager opens the configured backend and applies migrations.
func newRepositoryManager(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	if c.DatabaseDSN == config.DSNMemory {
		return repomanager.NewMemoryRepositoryManager(), nil
	}

	m, err := repomanager.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return m, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	rm, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	blobs, err := storage.NewS3Store(ctx, storage.S3Config{
		User:          c.S3RootUser,
		Password:      c.S3RootPassword,
		Bucket:        c.S3Bucket,
		Region:        c.S3Region,
		BaseEndpoint:  c.S3BaseEndpoint,
		PresignExpiry: c.PresignExpiry,
	})
	if err != nil {
		_ = rm.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	completer := llm.NewOpenAICompleter(c.OpenAIAPIKey, c.OpenAIBaseURL)
	extractor := llm.NewExtractor(completer, c.OpenAIModel, c.LLMTimeout, logger)

	us := services.NewUserService(rm, c.GPAMode, logger)
	svcs := gs.Services{
		Courses:  services.NewCourseService(rm, blobs, logger),
		Syllabus: services.NewSyllabusService(rm, blobs, extractor, c.PDFTimeout, logger),
		Grades:   services.NewGradeService(rm, c.GPAMode, logger),
		Users:    us,
	}

	return &App{
		config:      c,
		logger:      logger,
		repomanager: rm,
		services:    svcs,
		sessions:    services.NewSessionService(us, c, logger),
	}, nil
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(app.sessions, httpapi.Options{
		AllowedOrigins: app.config.CORSAllowedOrigins,
		DevSessions:    app.config.DevSessions,
	}, app.logger)

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, router, app.logger)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", err)
		cancelFunc()
	}
}

// Run starts both endpoints and blocks until a termination signal arrives
// or one of them fails.
func (app *App) Run(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "gpa_mode", app.config.GPAMode)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(context.Background(), "db close failed", "error", err)
	}
	app.logger.Info(context.Background(), "App stopped")
}
