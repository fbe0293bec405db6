package domain

import "time"

type User struct {
	ID           int       `db:"id" json:"id"`
	NetID        string    `db:"netid" json:"netid"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Year         int       `db:"year" json:"year"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	NetID    string `json:"netid" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Year     int    `json:"year" validate:"required,min=2020,max=2035"`
}

type LoginRequest struct {
	NetID    string `json:"netid" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
