package repository

import (
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"

	"gorm.io/gorm"
)

type CanteenRepository struct {
	DB *gorm.DB
}

func NewCanteenRepository(db *gorm.DB) *CanteenRepository {
	return &CanteenRepository{DB: db}
}

func (r *CanteenRepository) Create(c *entity.Canteen) error {
	return r.DB.Create(c).Error
}

func (r *CanteenRepository) List() ([]entity.Canteen, error) {
	var out []entity.Canteen
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *CanteenRepository) FindByID(id uint) (*entity.Canteen, error) {
	var c entity.Canteen
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CanteenRepository) FindBySellerEmail(email string) (*entity.Canteen, error) {
	var c entity.Canteen
	if err := r.DB.Where("seller_email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CanteenRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Canteen{}).Where("id = ?", id).Updates(updates).Error
}
