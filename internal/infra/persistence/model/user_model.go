package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a row of users, keyed by the identity provider's subject id.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"type:varchar(255);index"`
	Name      string    `gorm:"type:varchar(100)"`
	IsVendor  bool      `gorm:"not null;default:false"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Supplier *SupplierModel       `gorm:"foreignKey:UserID"`
	Lists    []*ShoppingListModel `gorm:"foreignKey:OwnerID"`
}

func (UserModel) TableName() string { return "users" }
