package items

import (
	"context"

	"github.com/wetrippo/wishlist/internal/server/models"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error)
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	// Update applies the non-nil fields of upd to the item identified by
	// (id, ownerID) and returns the updated row, or common.ErrNotFound
	// when the owner has no such item.
	Update(ctx context.Context, id int64, ownerID string, upd *models.ItemUpdate) (*models.Item, error)
	Delete(ctx context.Context, id int64, ownerID string) error
}
