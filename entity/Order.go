package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`

	// pickup slot label as chosen at checkout, e.g. "12:00 PM - 12:30 PM"
	PickupTime    string `json:"pickupTime"`
	PaymentMethod string `gorm:"type:varchar(8)" json:"paymentMethod"`

	Lines []OrderLine `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
}
