package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLine is an immutable snapshot of one food item as purchased. It keeps
// its own name and price so later menu edits never touch past orders.
type OrderLine struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	// back-reference for canteen attribution in seller queries
	FoodItemID uint     `gorm:"index" json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	Name     string          `json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity int             `json:"quantity"`
	ImageURL string          `json:"imageUrl"`
}
