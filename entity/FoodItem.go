package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string          `gorm:"not null;index" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	MealType    MealType        `gorm:"type:varchar(16);not null" json:"mealType"`
	Available   bool            `gorm:"not null;default:true" json:"available"`
	ImageURL    string          `json:"imageUrl"`

	CanteenID uint    `gorm:"index" json:"canteenId"`
	Canteen   Canteen `json:"-"`
}
