package repomanager

import (
	"context"

	"github.com/dmitrijs2005/chapterhub/internal/server/repositories/memory"
)

// MemoryRepositoryManager keeps all data in process memory. Transactions
// are serialized.
type MemoryRepositoryManager struct {
	*memory.Tx
	store *memory.Store
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	s := memory.New()
	return &MemoryRepositoryManager{Tx: s.Live(), store: s}
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	return m.store.Update(func(tx *memory.Tx) error {
		return fn(ctx, tx)
	})
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Close() error { return nil }
