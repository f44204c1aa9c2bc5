package repository

import (
	"errors"
	"time"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetActiveCartWithItems returns the user's active cart with its lines and
// their food items, read through the given connection or transaction. A user
// without a cart gets an empty one back (not an error) so callers can always
// render something.
func (r *CartRepository) GetActiveCartWithItems(db *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := db.Where("user_id = ? AND status = ?", userID, entity.CartActive).
		Preload("Items").
		Preload("Items.FoodItem").
		Preload("Items.FoodItem.Canteen").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Status: entity.CartActive}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOrCreateActiveCart returns the user's active cart, inserting one if
// absent. The insert is an ON CONFLICT DO NOTHING against the partial unique
// index on (user_id) WHERE status='active': a lost race is a silent no-op
// rather than a unique violation, which on postgres would abort the whole
// surrounding transaction. The loser simply re-reads the winner's cart.
func (r *CartRepository) GetOrCreateActiveCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	c := entity.Cart{UserID: userID, Status: entity.CartActive}
	err := tx.Clauses(clause.OnConflict{
		Columns:     []clause.Column{{Name: "user_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{gorm.Expr("status = 'active'")}},
		DoNothing:   true,
	}).Create(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID != 0 {
		return &c, nil
	}

	var existing entity.Cart
	if err := tx.Where("user_id = ? AND status = ?", userID, entity.CartActive).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// ConvertCart flips the cart from active to converted, freeing the user's
// active slot. Zero rows affected means another checkout already claimed it.
func (r *CartRepository) ConvertCart(tx *gorm.DB, cartID uint) (int64, error) {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND status = ?", cartID, entity.CartActive).
		Update("status", entity.CartConverted)
	return res.RowsAffected, res.Error
}

// UpsertItem adds a line for the food item at quantity 1 or bumps the
// existing line by 1 in a single statement, so concurrent adds converge on
// one row with the summed quantity.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, foodItemID uint, price decimal.Decimal) (*entity.CartItem, error) {
	row := entity.CartItem{
		CartID:     cartID,
		FoodItemID: foodItemID,
		Quantity:   1,
		Price:      price,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "food_item_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}
	return r.getItem(tx, cartID, foodItemID)
}

func (r *CartRepository) getItem(tx *gorm.DB, cartID, foodItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Where("cart_id = ? AND food_item_id = ?", cartID, foodItemID).First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) GetItem(cartID, foodItemID uint) (*entity.CartItem, error) {
	return r.getItem(r.DB, cartID, foodItemID)
}

// DecrementItem lowers the line quantity by one, deleting the row when the
// quantity would drop to zero; a quantity below one is never persisted.
// The deleted flag reports which path was taken.
func (r *CartRepository) DecrementItem(tx *gorm.DB, cartID, foodItemID uint) (item *entity.CartItem, deleted bool, err error) {
	it, err := r.getItem(tx, cartID, foodItemID)
	if err != nil {
		return nil, false, err
	}

	if it.Quantity <= 1 {
		if err := tx.Delete(&entity.CartItem{}, it.ID).Error; err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	res := tx.Model(&entity.CartItem{}).
		Where("id = ? AND quantity > 1", it.ID).
		Update("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		// raced with another decrease down to one; remove the row
		if err := tx.Delete(&entity.CartItem{}, it.ID).Error; err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	it.Quantity--
	return it, false, nil
}

// RemoveItem drops the line regardless of quantity. Removing an absent line
// is a no-op, so the call is idempotent.
func (r *CartRepository) RemoveItem(tx *gorm.DB, cartID, foodItemID uint) error {
	return tx.Where("cart_id = ? AND food_item_id = ?", cartID, foodItemID).
		Delete(&entity.CartItem{}).Error
}

// ClearItems empties the cart. The cart row itself stays, ready for the
// next order.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}

// DeleteItemsByID removes exactly the given lines and no others.
func (r *CartRepository) DeleteItemsByID(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Delete(&entity.CartItem{}, ids).Error
}
