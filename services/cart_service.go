package services

import (
	"errors"
	"fmt"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartAction string

const (
	ActionAdd      CartAction = "add"
	ActionDecrease CartAction = "decrease"
	ActionRemove   CartAction = "remove"
)

// CartService owns the single-active-cart invariant and all line mutations.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr}
}

// Get returns the active cart with items and the computed subtotal.
// Side-effect free; a user without a cart gets an empty cart back.
func (s *CartService) Get(userID uint) (*entity.Cart, decimal.Decimal, error) {
	if userID == 0 {
		return nil, decimal.Zero, ErrUnauthorized
	}
	c, err := s.CartRepo.GetActiveCartWithItems(s.DB, userID)
	if err != nil {
		return nil, decimal.Zero, storeErr(err)
	}
	subtotal := decimal.Zero
	for _, it := range c.Items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return c, subtotal, nil
}

// CartMutation reports what a cart action did: the updated line, or a
// deletion acknowledgment when the line is gone.
type CartMutation struct {
	Removed bool             `json:"removed"`
	Item    *entity.CartItem `json:"item,omitempty"`
}

// Apply runs one cart action for the user's active cart.
//
//	add:      find-or-create the cart, then increment-or-insert the line,
//	          snapshotting the food's current price on first insert
//	decrease: lower quantity by one, deleting the line at zero
//	remove:   delete the line outright; absent lines are a no-op
func (s *CartService) Apply(userID, foodItemID uint, action CartAction) (*CartMutation, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	var out CartMutation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		switch action {
		case ActionAdd:
			food, err := s.FoodRepo.FindByID(foodItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: food item", ErrNotFound)
				}
				return storeErr(err)
			}

			cart, err := s.CartRepo.GetOrCreateActiveCart(tx, userID)
			if err != nil {
				return storeErr(err)
			}

			item, err := s.CartRepo.UpsertItem(tx, cart.ID, food.ID, food.Price)
			if err != nil {
				return storeErr(err)
			}
			out = CartMutation{Item: item}
			return nil

		case ActionDecrease:
			cart, err := s.activeCart(tx, userID)
			if err != nil {
				return err
			}
			item, deleted, err := s.CartRepo.DecrementItem(tx, cart.ID, foodItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: cart item", ErrNotFound)
				}
				return storeErr(err)
			}
			out = CartMutation{Removed: deleted, Item: item}
			return nil

		case ActionRemove:
			cart, err := s.activeCart(tx, userID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					// nothing to remove from; treat as done
					out = CartMutation{Removed: true}
					return nil
				}
				return err
			}
			if err := s.CartRepo.RemoveItem(tx, cart.ID, foodItemID); err != nil {
				return storeErr(err)
			}
			out = CartMutation{Removed: true}
			return nil

		default:
			return fmt.Errorf("%w: unknown cart action %q", ErrValidation, action)
		}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Clear deletes every line of the active cart. No-op without one. Exposed
// standalone and used by checkout.
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.activeCart(tx, userID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		}
		if err := s.CartRepo.ClearItems(tx, cart.ID); err != nil {
			return storeErr(err)
		}
		return nil
	})
}

func (s *CartService) activeCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND status = ?", userID, entity.CartActive).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: active cart", ErrNotFound)
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &c, nil
}
