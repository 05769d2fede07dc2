package services

import (
	"context"
	"sync"

	"github.com/wetrippo/wishlist/internal/client/api"
	"github.com/wetrippo/wishlist/internal/client/host"
	"github.com/wetrippo/wishlist/internal/client/models"
	"github.com/wetrippo/wishlist/internal/client/repositories/items"
	"github.com/wetrippo/wishlist/internal/logging"
)

// State is the wishlist view state observable by the UI layer.
type State string

const (
	StateInitializing   State = "initializing"
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateLoading        State = "loading"
	StateReady          State = "ready"
	StateEmpty          State = "empty"
	StateMutating       State = "mutating"
)

// WishlistService is the page-level controller: it owns the in-memory item
// collection, drives the loading/error/empty states, and applies optimistic
// local updates after each mutation instead of re-fetching the whole list.
//
// All operations are serialized behind one mutex. Overlapping mutations
// therefore queue rather than race; the last write wins, which resolves the
// otherwise-unspecified behavior of two mutations touching the same item.
type WishlistService struct {
	client api.Client
	auth   AuthService
	cache  items.Repository // optional; nil disables warm-start caching
	log    logging.Logger

	mu     sync.Mutex
	state  State
	items  []models.Item
	inHost bool
}

// NewWishlistService constructs the controller in its initializing state.
func NewWishlistService(client api.Client, auth AuthService, cache items.Repository, log logging.Logger) *WishlistService {
	return &WishlistService{
		client: client,
		auth:   auth,
		cache:  cache,
		log:    log,
		state:  StateInitializing,
	}
}

// Init is the mount sequence: host auto-authentication first, then the
// session check, then the initial load when authenticated. An anonymous
// outcome inside a host runtime stays silent, with no sign-in affordance.
func (s *WishlistService) Init(ctx context.Context, rt *host.Runtime) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inHost = rt != nil
	s.auth.AutoAuthenticate(ctx, rt)

	if !s.auth.IsAuthenticated(ctx) {
		s.items = nil
		s.state = StateAnonymous
		return
	}
	s.loadLocked(ctx)
}

// SignIn authenticates with manual credentials and, on success, loads the
// collection. The error is returned untouched for the sign-in form to show.
func (s *WishlistService) SignIn(ctx context.Context, creds models.Credentials) error {
	return s.authenticate(ctx, creds, s.auth.SignIn)
}

// SignUp registers a new account and, on success, loads the (empty) collection.
func (s *WishlistService) SignUp(ctx context.Context, creds models.Credentials) error {
	return s.authenticate(ctx, creds, s.auth.SignUp)
}

func (s *WishlistService) authenticate(ctx context.Context, creds models.Credentials,
	fn func(context.Context, models.Credentials) (*models.AuthResponse, error)) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAuthenticating
	if _, err := fn(ctx, creds); err != nil {
		s.state = StateAnonymous
		return err
	}
	s.loadLocked(ctx)
	return nil
}

// SignOut clears the session and the collection.
func (s *WishlistService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.auth.SignOut(ctx); err != nil {
		return err
	}
	s.items = nil
	s.state = StateAnonymous
	return nil
}

// Refresh re-fetches the collection from the remote store.
func (s *WishlistService) Refresh(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.auth.IsAuthenticated(ctx) {
		s.items = nil
		s.state = StateAnonymous
		return
	}
	s.loadLocked(ctx)
}

// loadLocked fetches the collection. Cached items load first so the view
// has warm content; a successful fetch then replaces them and refreshes
// the cache, while a degraded fetch leaves the cached collection in place.
// Callers must hold s.mu.
func (s *WishlistService) loadLocked(ctx context.Context) {
	s.state = StateLoading

	ownerID := s.auth.OwnerID(ctx)
	if s.cache != nil {
		if cached, err := s.cache.ListByOwner(ctx, ownerID); err == nil && len(cached) > 0 {
			s.items = cached
		}
	}

	fetched, ok := s.client.List(ctx)
	if !ok {
		s.log.Warn(ctx, "list fetch degraded, keeping cached collection", "cached", len(s.items))
		s.settleLocked()
		return
	}
	s.items = fetched
	s.settleLocked()

	if s.cache != nil {
		if err := s.cache.ReplaceAll(ctx, ownerID, fetched); err != nil {
			s.log.Warn(ctx, "failed to refresh item cache", "error", err)
		}
	}
}

// Add creates an item and appends the server's response to the collection.
// A nil item with nil error means the remote call failed and the collection
// is unchanged; the invoking form decides how to report it.
func (s *WishlistService) Add(ctx context.Context, dto models.CreateItemDTO) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = StateMutating

	created, err := s.client.Create(ctx, dto)
	if err != nil {
		s.state = prev
		return nil, err
	}
	if created == nil {
		s.settleLocked()
		return nil, nil
	}

	s.items = append(s.items, *created)
	s.settleLocked()
	s.cacheUpsert(ctx, *created)
	return created, nil
}

// Edit updates an item and replaces the matching collection entry by
// identifier; a non-matching id is a no-op on the collection.
func (s *WishlistService) Edit(ctx context.Context, id string, dto models.UpdateItemDTO) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = StateMutating

	updated, err := s.client.Update(ctx, id, dto)
	if err != nil {
		s.state = prev
		return nil, err
	}
	if updated == nil {
		s.settleLocked()
		return nil, nil
	}

	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
			break
		}
	}
	s.settleLocked()
	s.cacheUpsert(ctx, *updated)
	return updated, nil
}

// Remove deletes an item; on success the matching entry is dropped from the
// collection, on failure the entry stays put.
func (s *WishlistService) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.state
	s.state = StateMutating

	ok, err := s.client.Delete(ctx, id)
	if err != nil {
		s.state = prev
		return false, err
	}
	if !ok {
		s.settleLocked()
		return false, nil
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.settleLocked()
	if s.cache != nil {
		if err := s.cache.Delete(ctx, s.auth.OwnerID(ctx), id); err != nil {
			s.log.Warn(ctx, "failed to evict cached item", "id", id, "error", err)
		}
	}
	return true, nil
}

// Items returns a copy of the current collection.
func (s *WishlistService) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

// State returns the current view state.
func (s *WishlistService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ShowSignInAffordance reports whether the UI should offer manual sign-in:
// only when anonymous outside a host runtime. Inside a host runtime an
// anonymous state stays silent.
func (s *WishlistService) ShowSignInAffordance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateAnonymous && !s.inHost
}

// settleLocked recomputes the at-rest state from the collection size.
// Callers must hold s.mu.
func (s *WishlistService) settleLocked() {
	if len(s.items) == 0 {
		s.state = StateEmpty
		return
	}
	s.state = StateReady
}

func (s *WishlistService) cacheUpsert(ctx context.Context, item models.Item) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Upsert(ctx, s.auth.OwnerID(ctx), item); err != nil {
		s.log.Warn(ctx, "failed to cache item", "id", item.ID, "error", err)
	}
}
