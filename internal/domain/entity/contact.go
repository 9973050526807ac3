package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a directed relation from a user to another user.
// Lists may only be shared with contacts.
type Contact struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	ContactUserID uuid.UUID `json:"contact_user_id"`
	ContactUser   *User     `json:"contact_user,omitempty"`
	Note          string    `json:"note"`
	CreatedAt     time.Time `json:"created_at"`
}
