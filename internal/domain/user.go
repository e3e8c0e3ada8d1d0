package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the claim carried by a verified bearer token.
type Identity struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// Session is what signup/login hand back to the client.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
