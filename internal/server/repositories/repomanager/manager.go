package repomanager

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/courses"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/grades"
	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/users"
)

// Repositories is one consistent set of repositories, either bound to the
// database directly or to a running transaction.
type Repositories interface {
	Users() users.Repository
	Courses() courses.Repository
	Assignments() assignments.Repository
	Grades() grades.Repository
}

// RepositoryManager vends repositories and runs groups of writes atomically.
type RepositoryManager interface {
	Repositories
	// WithTx runs fn with repositories bound to a transaction that commits
	// when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	RunMigrations(ctx context.Context) error
	Close() error
}
