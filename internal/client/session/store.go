// Package session holds the current owner identifier, the single value
// whose presence is the authentication predicate for the whole client.
//
// The id is persisted in the client's local database under a fixed key, so
// a session survives restarts the way a browser session survives reloads.
// There is no token, no expiry, and no refresh: an owner id is either
// present or the client is anonymous.
package session

import (
	"context"

	"github.com/wetrippo/wishlist/internal/client/repositories/metadata"
)

// ownerIDKey is the fixed metadata key the owner id is persisted under.
const ownerIDKey = "w-o-id"

// Store reads and writes the persisted session.
type Store interface {
	// OwnerID returns the current owner id, or "" when anonymous.
	OwnerID(ctx context.Context) string
	SetOwnerID(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	// IsAuthenticated reports whether an owner id is present.
	IsAuthenticated(ctx context.Context) bool
}

// MetadataStore is the Store backed by the local metadata repository.
// A MetadataStore with a nil repository degrades to a permanent anonymous
// state: reads return "", writes do nothing. This keeps the package safe to
// use in contexts where no local database is available.
type MetadataStore struct {
	repo metadata.Repository
}

func NewMetadataStore(repo metadata.Repository) *MetadataStore {
	return &MetadataStore{repo: repo}
}

func (s *MetadataStore) OwnerID(ctx context.Context) string {
	if s.repo == nil {
		return ""
	}
	v, err := s.repo.Get(ctx, ownerIDKey)
	if err != nil {
		return ""
	}
	return string(v)
}

func (s *MetadataStore) SetOwnerID(ctx context.Context, id string) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Set(ctx, ownerIDKey, []byte(id))
}

func (s *MetadataStore) Clear(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Delete(ctx, ownerIDKey)
}

func (s *MetadataStore) IsAuthenticated(ctx context.Context) bool {
	return s.OwnerID(ctx) != ""
}
