package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	AccountID uuid.UUID `json:"account_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
