package services

import (
	"context"
	"fmt"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/repository"

	"github.com/shopspring/decimal"
)

type FoodService struct {
	Repo   *repository.FoodRepository
	Images *ImageStore
}

func NewFoodService(repo *repository.FoodRepository, images *ImageStore) *FoodService {
	return &FoodService{Repo: repo, Images: images}
}

type CreateFoodIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	MealType    string          `json:"mealType" binding:"required"`
	Available   *bool           `json:"available"`
	ImageBase64 string          `json:"imageBase64"`
}

// Create adds a food item to the canteen. The meal type is validated against
// the closed enumeration here, at the boundary.
func (s *FoodService) Create(ctx context.Context, canteenID uint, in *CreateFoodIn) (*entity.FoodItem, error) {
	mealType, err := entity.ParseMealType(in.MealType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	imageURL := ""
	if in.ImageBase64 != "" {
		if s.Images == nil {
			return nil, fmt.Errorf("%w: image uploads are not configured", ErrValidation)
		}
		url, err := s.Images.UploadBase64(ctx, in.ImageBase64, fmt.Sprintf("food-images/%d", canteenID))
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}

	f := &entity.FoodItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		MealType:    mealType,
		Available:   available,
		ImageURL:    imageURL,
		CanteenID:   canteenID,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, storeErr(err)
	}
	return f, nil
}

// ListByCanteen lists a canteen's menu, optionally filtered by meal type.
// An unrecognized filter value is rejected, not silently matched to nothing.
func (s *FoodService) ListByCanteen(canteenID uint, mealTypeStr string) ([]entity.FoodItem, error) {
	var filter *entity.MealType
	if mealTypeStr != "" {
		mt, err := entity.ParseMealType(mealTypeStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter = &mt
	}
	out, err := s.Repo.FindByCanteen(canteenID, filter)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *FoodService) Search(q string) ([]entity.FoodItem, error) {
	out, err := s.Repo.Search(q, 50)
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

type UpdateFoodIn struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	MealType    *string          `json:"mealType"`
}

// Update edits a food item owned by the canteen. A price change only affects
// future cart adds; existing cart lines and order lines keep their snapshot.
func (s *FoodService) Update(foodID, canteenID uint, in *UpdateFoodIn) (*entity.FoodItem, error) {
	if err := s.mustOwn(foodID, canteenID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		updates["price"] = *in.Price
	}
	if in.MealType != nil {
		mt, err := entity.ParseMealType(*in.MealType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		updates["meal_type"] = mt
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(foodID, updates); err != nil {
			return nil, storeErr(err)
		}
	}

	f, err := s.Repo.FindByID(foodID)
	if err != nil {
		return nil, storeErr(err)
	}
	return f, nil
}

// SetAvailability toggles whether the item can be ordered.
func (s *FoodService) SetAvailability(foodID, canteenID uint, available bool) error {
	if err := s.mustOwn(foodID, canteenID); err != nil {
		return err
	}
	if err := s.Repo.Update(foodID, map[string]any{"available": available}); err != nil {
		return storeErr(err)
	}
	return nil
}

func (s *FoodService) mustOwn(foodID, canteenID uint) error {
	ok, err := s.Repo.BelongsToCanteen(foodID, canteenID)
	if err != nil {
		return storeErr(err)
	}
	if !ok {
		return fmt.Errorf("%w: food item", ErrNotFound)
	}
	return nil
}
