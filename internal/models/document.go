package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is the per-account save document. It mirrors the remote
// document shape {career, avatar, nickname}: the career is stored as a
// JSON blob because it is always read and replaced as a whole, a NULL blob
// means the account has no career yet.
type Document struct {
	AccountID uuid.UUID `json:"accountId" gorm:"primaryKey"`
	Career    []byte    `json:"career" gorm:"type:bytes"`
	Avatar    *string   `json:"avatar"`
	Nickname  string    `json:"nickname"`
	UpdatedAt time.Time `json:"updatedAt"`
}
