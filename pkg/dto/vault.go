package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateVaultEntryRequest struct {
	Site     string `json:"site"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type VaultEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Site      string    `json:"site"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateVaultEntryResponse struct {
	Entry   VaultEntryResponse `json:"entry"`
	Message string             `json:"message"`
}
