package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required"`
	FullName     string    `json:"full_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) Actor() Actor {
	return Actor{Username: u.Username, Role: u.Role}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	Username    string `json:"username"`
	Role        string `json:"role"`
}
