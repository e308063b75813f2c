package models

import (
	"time"

	"github.com/google/uuid"
)

// VaultEntry is a stored site credential. Password is kept in clear text.
type VaultEntry struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Site      string    `json:"site"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
