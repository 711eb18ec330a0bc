package domain

import "time"

// User represents a registered chat participant.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterUserRequest represents a registration request.
type RegisterUserRequest struct {
	Username string `json:"username"`
}
