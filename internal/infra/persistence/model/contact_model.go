package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel mirrors the 'contacts' table, unique on (user_id, contact_user_id).
type ContactModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_contact_pair"`
	ContactUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_contact_pair"`
	Note          string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time

	ContactUser *UserModel `gorm:"foreignKey:ContactUserID"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
