package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/wetrippo/wishlist/internal/common"
	"github.com/wetrippo/wishlist/internal/server/models"
)

// itemID accepts both JSON numbers and numeric strings, since historical
// clients have sent either. Anything that is not a valid JSON number or a
// properly quoted numeric string is rejected.
type itemID int64

func (i *itemID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return err
		}
		s = num.String()
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*i = itemID(n)
	return nil
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type listRequest struct {
	OwnerID string `json:"owner_id"`
}

// createItemRequest accepts the URL fields under both the lowercase and the
// camelCase keys; the lowercase one wins when both are present.
type createItemRequest struct {
	OwnerID       string `json:"owner_id"`
	Title         string `json:"title"`
	ImageURL      string `json:"imageurl"`
	ImageURLAlt   string `json:"imageUrl"`
	ProductURL    string `json:"producturl"`
	ProductURLAlt string `json:"productUrl"`
}

func (r *createItemRequest) imageURL() string {
	if r.ImageURL != "" {
		return r.ImageURL
	}
	return r.ImageURLAlt
}

func (r *createItemRequest) productURL() string {
	if r.ProductURL != "" {
		return r.ProductURL
	}
	return r.ProductURLAlt
}

type updateItemRequest struct {
	ID            itemID  `json:"id"`
	OwnerID       string  `json:"owner_id"`
	Title         *string `json:"title"`
	ImageURL      *string `json:"imageurl"`
	ImageURLAlt   *string `json:"imageUrl"`
	ProductURL    *string `json:"producturl"`
	ProductURLAlt *string `json:"productUrl"`
}

func (r *updateItemRequest) imageURL() *string {
	if r.ImageURL != nil {
		return r.ImageURL
	}
	return r.ImageURLAlt
}

func (r *updateItemRequest) productURL() *string {
	if r.ProductURL != nil {
		return r.ProductURL
	}
	return r.ProductURLAlt
}

type deleteItemRequest struct {
	ID      itemID `json:"id"`
	OwnerID string `json:"owner_id"`
}

type authResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			respondError(w, http.StatusConflict, "Login already in use")
		case errors.Is(err, common.ErrUnauthorized):
			respondError(w, http.StatusBadRequest, "Login and password are required")
		default:
			s.log.Error(r.Context(), "sign-up failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, authResponse{ID: user.ID, Login: user.Login})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.users.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			respondError(w, http.StatusUnauthorized, "Invalid login or password")
			return
		}
		s.log.Error(r.Context(), "sign-in failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, authResponse{ID: user.ID, Login: user.Login})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OwnerID == "" {
		respondError(w, http.StatusBadRequest, "owner_id is required")
		return
	}

	items, err := s.items.List(r.Context(), req.OwnerID)
	if err != nil {
		s.log.Error(r.Context(), "list failed", "owner_id", req.OwnerID, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, http.StatusOK, items)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OwnerID == "" {
		respondError(w, http.StatusBadRequest, "owner_id is required")
		return
	}

	item, err := s.items.Create(r.Context(), req.OwnerID, req.Title, req.imageURL(), req.productURL())
	if err != nil {
		if errors.Is(err, common.ErrTitleRequired) {
			respondError(w, http.StatusBadRequest, "Title is required")
			return
		}
		s.log.Error(r.Context(), "create failed", "owner_id", req.OwnerID, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, http.StatusOK, item)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OwnerID == "" {
		respondError(w, http.StatusBadRequest, "owner_id is required")
		return
	}

	upd := &models.ItemUpdate{
		Title:      req.Title,
		ImageURL:   req.imageURL(),
		ProductURL: req.productURL(),
	}

	item, err := s.items.Update(r.Context(), int64(req.ID), req.OwnerID, upd)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrTitleRequired):
			respondError(w, http.StatusBadRequest, "Title is required")
		case errors.Is(err, common.ErrNotFound):
			respondError(w, http.StatusNotFound, "Item not found")
		default:
			s.log.Error(r.Context(), "update failed", "owner_id", req.OwnerID, "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondData(w, http.StatusOK, item)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req deleteItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OwnerID == "" {
		respondError(w, http.StatusBadRequest, "owner_id is required")
		return
	}

	if err := s.items.Delete(r.Context(), int64(req.ID), req.OwnerID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Item not found")
			return
		}
		s.log.Error(r.Context(), "delete failed", "owner_id", req.OwnerID, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, http.StatusOK, true)
}

func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.items.GetPresignedPutUrl(r.Context())
	if err != nil {
		s.log.Error(r.Context(), "image upload presign failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondData(w, http.StatusOK, map[string]string{"key": key, "url": url})
}
