package entity

import (
	"gorm.io/gorm"
)

type Canteen struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Location    string  `json:"location"`
	Phone       string  `json:"phone"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`

	// ownership link; matched against the authenticated account's email
	SellerEmail string `gorm:"index" json:"sellerEmail"`

	FoodItems []FoodItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"foodItems,omitempty"`
}
