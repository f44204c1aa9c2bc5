package entity

import (
	"time"
)

const (
	CartActive    = "active"
	CartConverted = "converted"
)

// Cart rows are plain (no soft delete): a soft-deleted active cart would
// still occupy the partial unique index below.
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID uint `gorm:"uniqueIndex:idx_carts_user_active,where:status = 'active'" json:"userId"`
	User   User `json:"-"`

	Status string `gorm:"type:varchar(16);not null;default:active" json:"status"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
