package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserProfile is one-to-one with a user. All fields are optional.
type UserProfile struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth,omitempty"` // YYYY-MM-DD, empty when unset
}
