package domain

// User models a registered account. The password hash is opaque to every layer
// except the password hasher and is never serialised in responses.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
