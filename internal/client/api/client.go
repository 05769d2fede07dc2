// Package api implements the remote wishlist API client: authentication
// and owner-scoped item CRUD over the JSON-over-HTTP POST contract.
//
// The owner id is not a parameter of the item operations; it is read from
// the session store at each call boundary, keeping the persisted session
// an explicit dependency of this package only.
package api

import (
	"context"

	"github.com/wetrippo/wishlist/internal/client/models"
)

// Client is the remote API surface the rest of the client programs against.
//
// Failure semantics follow the remote contract rather than the usual
// Go convention everywhere:
//   - SignUp/SignIn propagate errors (AuthenticationError, NetworkError).
//   - List/PublicList degrade to an empty collection on any failure.
//   - Create/Update return nil on remote failure; the only returned error
//     is the common.ErrNotAuthenticated precondition.
//   - Delete returns false on remote failure, same precondition rule.
type Client interface {
	SignUp(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	SignIn(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	SignOut(ctx context.Context) error

	// List returns the current owner's collection. ok is false when the
	// remote fetch failed and the empty result is a degradation, not the
	// owner's actual (empty) collection.
	List(ctx context.Context) (items []models.Item, ok bool)
	PublicList(ctx context.Context, ownerID string) []models.Item
	Create(ctx context.Context, dto models.CreateItemDTO) (*models.Item, error)
	Update(ctx context.Context, id string, dto models.UpdateItemDTO) (*models.Item, error)
	Delete(ctx context.Context, id string) (bool, error)

	// ImageUpload returns a storage key and a presigned PUT URL for an
	// image. Errors propagate; the caller decides how to degrade.
	ImageUpload(ctx context.Context) (key, url string, err error)
}
