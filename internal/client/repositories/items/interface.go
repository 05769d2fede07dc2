// Package items caches the last remote collection in the client's local
// database so a fresh session has warm content to show while the real list
// loads. The cache is display-only and never authoritative.
package items

import (
	"context"

	"github.com/wetrippo/wishlist/internal/client/models"
)

type Repository interface {
	// ListByOwner returns the cached collection for an owner, in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error)
	// ReplaceAll atomically swaps the cached collection for an owner.
	ReplaceAll(ctx context.Context, ownerID string, items []models.Item) error
	// Upsert inserts or replaces one cached item.
	Upsert(ctx context.Context, ownerID string, item models.Item) error
	// Delete removes one cached item; deleting an absent id is a no-op.
	Delete(ctx context.Context, ownerID string, id string) error
}
