package services

import (
	"path/filepath"
	"testing"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/repository"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Canteen{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderLine{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewFoodRepository(db))
}

func newOrderService(db *gorm.DB, strict bool) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db), strict)
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Name: "Test", Role: "customer"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &u
}

func seedCanteen(t *testing.T, db *gorm.DB, name string) *entity.Canteen {
	t.Helper()
	c := entity.Canteen{Name: name, SellerEmail: name + "@canteen.test"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed canteen: %v", err)
	}
	return &c
}

func seedFood(t *testing.T, db *gorm.DB, canteenID uint, name string, price string) *entity.FoodItem {
	t.Helper()
	f := entity.FoodItem{
		Name:      name,
		Price:     decimal.RequireFromString(price),
		MealType:  entity.MealLunch,
		Available: true,
		CanteenID: canteenID,
	}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}
	return &f
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Where(query, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
