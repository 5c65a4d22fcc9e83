package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/potholeauth/internal/dbx"
	"github.com/dmitrijs2005/potholeauth/internal/server/repositories/users"
)

// InMemoryRepositoryManager backs every repository with process memory. The
// DB handle passed to Users is ignored; all callers share one store.
type InMemoryRepositoryManager struct {
	users *users.InMemoryRepository
}

func (m *InMemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}
