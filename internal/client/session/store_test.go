package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wetrippo/wishlist/internal/client/repositories/metadata"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *MetadataStore {
	t.Helper()
	db, err := sql.Open("sqlite", "file:session_tests?mode=memory&cache=shared")
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
	return NewMetadataStore(metadata.NewSQLiteRepository(db))
}

func TestMetadataStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.False(t, store.IsAuthenticated(ctx))
	require.Equal(t, "", store.OwnerID(ctx))

	require.NoError(t, store.SetOwnerID(ctx, "abc"))
	require.True(t, store.IsAuthenticated(ctx))
	require.Equal(t, "abc", store.OwnerID(ctx))

	// a later sign-in replaces the value, never accumulates
	require.NoError(t, store.SetOwnerID(ctx, "42"))
	require.Equal(t, "42", store.OwnerID(ctx))

	require.NoError(t, store.Clear(ctx))
	require.False(t, store.IsAuthenticated(ctx))
	require.Equal(t, "", store.OwnerID(ctx))
}

func TestMetadataStore_NilRepositoryDegradesToAnonymous(t *testing.T) {
	ctx := context.Background()
	store := NewMetadataStore(nil)

	require.Equal(t, "", store.OwnerID(ctx))
	require.False(t, store.IsAuthenticated(ctx))
	require.NoError(t, store.SetOwnerID(ctx, "abc"))
	require.Equal(t, "", store.OwnerID(ctx), "writes are no-ops without a backing store")
	require.NoError(t, store.Clear(ctx))
}
