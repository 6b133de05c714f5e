// Package repomanager provides RepositoryManager implementations for
// PostgreSQL and for process memory, wiring together repository
// constructors, transactions and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/chapterhub/internal/dbx"
	"github.com/dmitrijs2005/chapterhub/internal/server/migrations"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/courses"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/grades"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// pgRepositories binds every Postgres repository to one DBTX.
type pgRepositories struct {
	db dbx.DBTX
}

func (r pgRepositories) Users() users.Repository             { return users.NewPostgresRepository(r.db) }
func (r pgRepositories) Courses() courses.Repository         { return courses.NewPostgresRepository(r.db) }
func (r pgRepositories) Assignments() assignments.Repository { return assignments.NewPostgresRepository(r.db) }
func (r pgRepositories) Grades() grades.Repository           { return grades.NewPostgresRepository(r.db) }

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct {
	pgRepositories
	sqlDB *sql.DB
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewPostgresRepositoryManager opens dsn with the pgx driver and verifies the
// connection.
func NewPostgresRepositoryManager(ctx context.Context, dsn string) (*PostgresRepositoryManager, error) {
	db, err := sqlOpen("pgx", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewPostgresRepositoryManagerFromDB(db), nil
}

// NewPostgresRepositoryManagerFromDB wraps an already opened pool.
func NewPostgresRepositoryManagerFromDB(db *sql.DB) *PostgresRepositoryManager {
	return &PostgresRepositoryManager{pgRepositories: pgRepositories{db: db}, sqlDB: db}
}

func (m *PostgresRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return dbx.WithTx(ctx, m.sqlDB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, pgRepositories{db: tx})
	})
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.sqlDB, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Close() error {
	return m.sqlDB.Close()
}
