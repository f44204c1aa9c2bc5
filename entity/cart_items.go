package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem rows are hard-deleted so the unique (cart, food item) slot frees
// up as soon as a line is removed.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CartID uint `gorm:"uniqueIndex:idx_cart_items_cart_food" json:"cartId"`
	Cart   Cart `json:"-"`

	FoodItemID uint     `gorm:"uniqueIndex:idx_cart_items_cart_food" json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	Quantity int `json:"quantity"`
	// price captured from the food item when the line was first added
	Price decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
}
