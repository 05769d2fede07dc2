package models

// Item is a stored wishlist entry. Field names in the JSON API use the
// historical lowercase keys (imageurl, producturl).
type Item struct {
	ID         int64  `json:"id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
	ImageURL   string `json:"imageurl"`
	ProductURL string `json:"producturl"`
}

// ItemUpdate carries a partial update. Nil fields are left unchanged.
type ItemUpdate struct {
	Title      *string
	ImageURL   *string
	ProductURL *string
}
