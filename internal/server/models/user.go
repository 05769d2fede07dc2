package models

// User is a registered wishlist owner. The ID doubles as the owner id in
// the item API and the public share link.
type User struct {
	ID           string
	Login        string
	PasswordHash []byte
}
