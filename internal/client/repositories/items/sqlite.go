package items

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wetrippo/wishlist/internal/client/models"
	"github.com/wetrippo/wishlist/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	query := `SELECT id, title, imageurl, producturl FROM items WHERE owner_id = ? ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	result := make([]models.Item, 0)
	for rows.Next() {
		item := models.Item{Source: models.SourceAPI}
		if err := rows.Scan(&item.ID, &item.Title, &item.ImageURL, &item.ProductURL); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, ownerID string, items []models.Item) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM items WHERE owner_id = ?`, ownerID); err != nil {
			return fmt.Errorf("failed to clear cached items: %w", err)
		}
		for _, item := range items {
			if err := upsert(ctx, tx, ownerID, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Upsert(ctx context.Context, ownerID string, item models.Item) error {
	return upsert(ctx, r.db, ownerID, item)
}

func (r *SQLiteRepository) Delete(ctx context.Context, ownerID string, id string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM items WHERE owner_id = ? AND id = ?`, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete cached item: %w", err)
	}
	return nil
}

func upsert(ctx context.Context, db dbx.DBTX, ownerID string, item models.Item) error {
	query := `
		INSERT INTO items (id, owner_id, title, imageurl, producturl)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id, owner_id) DO UPDATE SET
			title = excluded.title,
			imageurl = excluded.imageurl,
			producturl = excluded.producturl
	`
	if _, err := db.ExecContext(ctx, query,
		item.ID, ownerID, item.Title, item.ImageURL, item.ProductURL); err != nil {
		return fmt.Errorf("failed to upsert cached item: %w", err)
	}
	return nil
}
