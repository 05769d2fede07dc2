package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wetrippo/wishlist/internal/client/models"
	"github.com/wetrippo/wishlist/internal/client/session"
	"github.com/wetrippo/wishlist/internal/common"
	"github.com/wetrippo/wishlist/internal/logging"
)

const (
	signUpPath = "/wishlist-auth/sign-up"
	signInPath = "/wishlist-auth/sign-in"
	listPath   = "/wishlist/list"
	createPath = "/wishlist/create"
	updatePath = "/wishlist/update"
	deletePath = "/wishlist/delete"
	uploadPath = "/wishlist/image-upload"
)

// HTTPClient is the Client implementation over net/http.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	session session.Store
	log     logging.Logger
}

// NewHTTPClient constructs a client for the API rooted at baseURL
// (e.g. "https://api.wetrippo.com/api", no trailing slash).
func NewHTTPClient(baseURL string, session session.Store, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{},
		session: session,
		log:     log,
	}
}

// SignUp registers a new account and, on success, persists the returned
// owner id as the current session.
func (c *HTTPClient) SignUp(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	return c.authenticate(ctx, signUpPath, "Signup failed", creds)
}

// SignIn authenticates and, on success, persists the returned owner id as
// the current session.
func (c *HTTPClient) SignIn(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	return c.authenticate(ctx, signInPath, "Sign in failed", creds)
}

func (c *HTTPClient) authenticate(ctx context.Context, path, failPrefix string, creds models.Credentials) (*models.AuthResponse, error) {
	resp, err := c.postJSON(ctx, path, creds)
	if err != nil {
		c.log.Error(ctx, "auth request failed", "path", path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		authErr := &AuthenticationError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("%s: %s", failPrefix, http.StatusText(resp.StatusCode)),
		}
		// the server may explain itself in a {message} body
		var body struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
			authErr.Message = body.Message
		}
		c.log.Error(ctx, "authentication rejected", "path", path, "status", resp.StatusCode)
		return nil, authErr
	}

	var auth models.AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	if err := c.session.SetOwnerID(ctx, auth.ID); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &auth, nil
}

// SignOut clears the persisted session. No network call is made.
func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.session.Clear(ctx)
}

// List fetches the current owner's collection. Anonymous sessions and any
// remote failure both yield an empty collection; list failures are logged
// but never fatal. ok is false only when a remote fetch was attempted and
// failed, so callers can tell a degraded result from a truly empty list.
func (c *HTTPClient) List(ctx context.Context) ([]models.Item, bool) {
	ownerID := c.session.OwnerID(ctx)
	if ownerID == "" {
		return []models.Item{}, true
	}
	return c.fetchList(ctx, ownerID)
}

// PublicList fetches the collection of an explicit owner id, the shareable
// read-only view. Failures degrade to an empty collection.
func (c *HTTPClient) PublicList(ctx context.Context, ownerID string) []models.Item {
	items, _ := c.fetchList(ctx, ownerID)
	return items
}

func (c *HTTPClient) fetchList(ctx context.Context, ownerID string) ([]models.Item, bool) {
	resp, err := c.postJSON(ctx, listPath, map[string]string{"owner_id": ownerID})
	if err != nil {
		c.log.Error(ctx, "list request failed", "error", err)
		return []models.Item{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error(ctx, "list request rejected", "status", resp.StatusCode)
		return []models.Item{}, false
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error(ctx, "failed to decode list response", "error", err)
		return []models.Item{}, false
	}

	return models.NormalizeItems(recordsFrom(payload)), true
}

// Create posts a new item. Both URL naming conventions are sent so either
// remote schema variant accepts the payload. Returns the normalized created
// item, or nil when the remote call failed; callers must not assume the
// collection changed on nil.
func (c *HTTPClient) Create(ctx context.Context, dto models.CreateItemDTO) (*models.Item, error) {
	ownerID := c.session.OwnerID(ctx)
	if ownerID == "" {
		return nil, common.ErrNotAuthenticated
	}

	payload := map[string]any{
		"title":      dto.Title,
		"imageurl":   dto.ImageURL,
		"producturl": dto.ProductURL,
		"imageUrl":   dto.ImageURL,
		"productUrl": dto.ProductURL,
		"owner_id":   ownerID,
	}

	rec, ok := c.mutate(ctx, createPath, payload)
	if !ok {
		return nil, nil
	}
	item := models.NormalizeItem(rec)
	return &item, nil
}

// Update posts a partial update containing id, owner_id, and only the
// fields explicitly supplied in dto, each URL field under both of its
// names. Returns the normalized updated item, or nil on remote failure.
func (c *HTTPClient) Update(ctx context.Context, id string, dto models.UpdateItemDTO) (*models.Item, error) {
	ownerID := c.session.OwnerID(ctx)
	if ownerID == "" {
		return nil, common.ErrNotAuthenticated
	}

	payload := map[string]any{"id": id, "owner_id": ownerID}
	if dto.Title != nil {
		payload["title"] = *dto.Title
	}
	if dto.ImageURL != nil {
		payload["imageurl"] = *dto.ImageURL
		payload["imageUrl"] = *dto.ImageURL
	}
	if dto.ProductURL != nil {
		payload["producturl"] = *dto.ProductURL
		payload["productUrl"] = *dto.ProductURL
	}

	rec, ok := c.mutate(ctx, updatePath, payload)
	if !ok {
		return nil, nil
	}
	item := models.NormalizeItem(rec)
	return &item, nil
}

// Delete removes an item from the remote store. Success is the HTTP status
// alone; any response body is ignored. Returns false on any remote failure.
func (c *HTTPClient) Delete(ctx context.Context, id string) (bool, error) {
	ownerID := c.session.OwnerID(ctx)
	if ownerID == "" {
		return false, common.ErrNotAuthenticated
	}

	resp, err := c.postJSON(ctx, deletePath, map[string]string{"id": id, "owner_id": ownerID})
	if err != nil {
		c.log.Error(ctx, "delete request failed", "id", id, "error", err)
		return false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error(ctx, "delete request rejected", "id", id, "status", resp.StatusCode)
		return false, nil
	}
	return true, nil
}

// ImageUpload asks the server for a presigned image upload slot and returns
// the storage key plus the URL to PUT the bytes to. Unlike the item
// mutations this surfaces errors, since the caller needs to know whether
// the subsequent upload is worth attempting.
func (c *HTTPClient) ImageUpload(ctx context.Context) (string, string, error) {
	if c.session.OwnerID(ctx) == "" {
		return "", "", common.ErrNotAuthenticated
	}

	resp, err := c.postJSON(ctx, uploadPath, map[string]string{})
	if err != nil {
		c.log.Error(ctx, "image upload request failed", "error", err)
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error(ctx, "image upload rejected", "status", resp.StatusCode)
		return "", "", fmt.Errorf("image upload rejected: %s", http.StatusText(resp.StatusCode))
	}

	var payload struct {
		Data struct {
			Key string `json:"key"`
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", "", fmt.Errorf("failed to decode image upload response: %w", err)
	}

	return payload.Data.Key, payload.Data.URL, nil
}

// mutate posts payload and extracts the raw record from either a bare
// object or a {data: object} envelope. ok is false on any failure.
func (c *HTTPClient) mutate(ctx context.Context, path string, payload any) (models.RawRecord, bool) {
	resp, err := c.postJSON(ctx, path, payload)
	if err != nil {
		c.log.Error(ctx, "mutation request failed", "path", path, "error", err)
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error(ctx, "mutation rejected", "path", path, "status", resp.StatusCode)
		return nil, false
	}

	var payloadOut map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payloadOut); err != nil {
		c.log.Error(ctx, "failed to decode mutation response", "path", path, "error", err)
		return nil, false
	}

	if data, ok := payloadOut["data"].(map[string]any); ok {
		return models.RawRecord(data), true
	}
	return models.RawRecord(payloadOut), true
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return resp, nil
}

// recordsFrom accepts either a bare array or a {data: array} envelope and
// returns the contained raw records. Anything else yields no records.
func recordsFrom(payload any) []models.RawRecord {
	var elems []any
	switch t := payload.(type) {
	case []any:
		elems = t
	case map[string]any:
		if data, ok := t["data"].([]any); ok {
			elems = data
		}
	}

	recs := make([]models.RawRecord, 0, len(elems))
	for _, e := range elems {
		if m, ok := e.(map[string]any); ok {
			recs = append(recs, models.RawRecord(m))
		}
	}
	return recs
}
