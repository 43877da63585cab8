package dto

// UserResponse is the read-only projection of a user. The credential hash
// never leaves the service layer.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Superuser bool   `json:"superuser"`
}
