package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/potholeauth/internal/dbx"
	"github.com/dmitrijs2005/potholeauth/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DB handle and owns the
// schema lifecycle of its backend.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
}
