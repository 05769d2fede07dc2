package items

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wetrippo/wishlist/internal/common"
	"github.com/wetrippo/wishlist/internal/dbx"
	"github.com/wetrippo/wishlist/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error) {

	query :=
		`SELECT id, owner_id, title, imageurl, producturl FROM items
		 WHERE owner_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Item, 0)
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.OwnerID, &item.Title, &item.ImageURL, &item.ProductURL); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) (*models.Item, error) {

	query :=
		`INSERT INTO items (owner_id, title, imageurl, producturl)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		item.OwnerID, item.Title, item.ImageURL, item.ProductURL).Scan(&item.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, ownerID string, upd *models.ItemUpdate) (*models.Item, error) {

	query :=
		`UPDATE items
		 SET title      = COALESCE($3, title),
		     imageurl   = COALESCE($4, imageurl),
		     producturl = COALESCE($5, producturl),
		     updated_at = now()
		 WHERE id = $1 AND owner_id = $2
		 RETURNING id, owner_id, title, imageurl, producturl
		 `

	item := &models.Item{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID, upd.Title, upd.ImageURL, upd.ProductURL).
		Scan(&item.ID, &item.OwnerID, &item.Title, &item.ImageURL, &item.ProductURL)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return item, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64, ownerID string) error {

	query := `DELETE FROM items WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}
