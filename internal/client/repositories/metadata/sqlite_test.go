package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metadata_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM metadata;
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteRepository_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(ctx, "owner_id")
	require.NoError(t, err)
	require.Nil(t, v, "absent key must read as nil without error")

	require.NoError(t, repo.Set(ctx, "owner_id", []byte("42")))

	v, err = repo.Get(ctx, "owner_id")
	require.NoError(t, err)
	require.Equal(t, []byte("42"), v)

	// upsert semantics
	require.NoError(t, repo.Set(ctx, "owner_id", []byte("43")))
	v, err = repo.Get(ctx, "owner_id")
	require.NoError(t, err)
	require.Equal(t, []byte("43"), v)

	require.NoError(t, repo.Delete(ctx, "owner_id"))
	v, err = repo.Get(ctx, "owner_id")
	require.NoError(t, err)
	require.Nil(t, v)
}
