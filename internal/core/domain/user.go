package domain

// User is an administrative account. The password is stored as an opaque
// hash and never serialized.
type User struct {
	ID           string `json:"id" bson:"_id"`
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"-" bson:"password_hash"`
}
