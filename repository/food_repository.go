package repository

import (
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"

	"gorm.io/gorm"
)

type FoodRepository struct {
	DB *gorm.DB
}

func NewFoodRepository(db *gorm.DB) *FoodRepository {
	return &FoodRepository{DB: db}
}

func (r *FoodRepository) Create(f *entity.FoodItem) error {
	return r.DB.Create(f).Error
}

func (r *FoodRepository) FindByID(id uint) (*entity.FoodItem, error) {
	var f entity.FoodItem
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) FindByCanteen(canteenID uint, mealType *entity.MealType) ([]entity.FoodItem, error) {
	db := r.DB.Where("canteen_id = ?", canteenID)
	if mealType != nil {
		db = db.Where("meal_type = ?", *mealType)
	}
	var out []entity.FoodItem
	err := db.Order("name").Find(&out).Error
	return out, err
}

func (r *FoodRepository) Search(q string, limit int) ([]entity.FoodItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []entity.FoodItem
	err := r.DB.Where("name LIKE ?", "%"+q+"%").Limit(limit).Find(&out).Error
	return out, err
}

func (r *FoodRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.FoodItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *FoodRepository) BelongsToCanteen(foodID, canteenID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.FoodItem{}).
		Where("id = ? AND canteen_id = ?", foodID, canteenID).
		Count(&cnt).Error
	return cnt > 0, err
}
