package controllers

import (
	"time"

	"github.com/budgetbook/backend/internal/models"
	"github.com/google/uuid"
)

// RegisterRequest is the body for user registration. The password is
// the only place where the plain text password enters the system; it
// is hashed before the user is persisted.
type RegisterRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password"`
}

// LoginRequest is the body for user login.
type LoginRequest struct {
	Email    string `json:"email" example:"jane@example.com"`
	Password string `json:"password"`
}

// User is the API representation of a user. It never contains password
// material.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUser(model models.User) User {
	return User{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
	}
}

type UserResponse struct {
	Success bool  `json:"success"`
	Data    *User `json:"data"`
}

type UserListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Data    []User `json:"data"`
}
