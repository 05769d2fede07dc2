// Package models defines the client-side data model: the canonical Item
// shape the rest of the client works with, the mutation DTOs, and the
// normalizer that coerces loosely-typed remote records into Items.
package models

// Source marks where an item originated.
type Source string

const (
	// SourceLocal denotes client-only/demo data never sent to the remote store.
	SourceLocal Source = "local"
	// SourceAPI denotes items backed by the remote store, eligible for
	// edit and delete.
	SourceAPI Source = "api"
)

// Item is one wishlist entry in its canonical local shape.
type Item struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ImageURL   string `json:"imageurl"`
	ProductURL string `json:"producturl"`
	Source     Source `json:"source,omitempty"`
}

// CreateItemDTO carries the fields for a new item.
type CreateItemDTO struct {
	Title      string
	ImageURL   string
	ProductURL string
}

// UpdateItemDTO carries a partial update. Nil fields are omitted from the
// payload entirely, so the remote store only touches what was supplied.
type UpdateItemDTO struct {
	Title      *string
	ImageURL   *string
	ProductURL *string
}

// Credentials are the login/password pair for manual authentication.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AuthResponse is the payload returned by sign-in and sign-up.
type AuthResponse struct {
	ID    string `json:"id"`
	Login string `json:"login"`
}
