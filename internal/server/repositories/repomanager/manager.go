package repomanager

import (
	"context"
	"database/sql"

	"github.com/wetrippo/wishlist/internal/dbx"
	"github.com/wetrippo/wishlist/internal/server/repositories/items"
	"github.com/wetrippo/wishlist/internal/server/repositories/users"
)

// RepositoryManager builds repositories over a db handle or a transaction.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Items(db dbx.DBTX) items.Repository
}
