package models

// User is immutable after registration; there is no update operation.
type User struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	PublicKey string `json:"public_key"`
}
