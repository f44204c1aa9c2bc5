package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// preload only when the endpoint needs them
	Canteen *Canteen `gorm:"foreignKey:SellerEmail;references:Email" json:"-"`
	Carts   []Cart   `json:"-"`
	Orders  []Order  `json:"-"`
}
