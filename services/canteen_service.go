package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/entity"
	"github.com/supunpriyanath333/JAPURA-EATS-Food-Pre-Ordering-System-For-Japura-University/repository"

	"gorm.io/gorm"
)

type CanteenService struct {
	Repo     *repository.CanteenRepository
	UserRepo *repository.UserRepository
	Images   *ImageStore
}

func NewCanteenService(repo *repository.CanteenRepository, userRepo *repository.UserRepository, images *ImageStore) *CanteenService {
	return &CanteenService{Repo: repo, UserRepo: userRepo, Images: images}
}

type CreateCanteenIn struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location"`
	Phone       string  `json:"phone"`
	Description string  `json:"description"`
	SellerEmail string  `json:"sellerEmail" binding:"required,email"`
	Rating      float64 `json:"rating"`
	ImageBase64 string  `json:"imageBase64"`
}

// Create provisions a canteen (admin action). An optional image goes through
// the object store; only the resulting URL is persisted.
func (s *CanteenService) Create(ctx context.Context, in *CreateCanteenIn) (*entity.Canteen, error) {
	imageURL := ""
	if in.ImageBase64 != "" {
		if s.Images == nil {
			return nil, fmt.Errorf("%w: image uploads are not configured", ErrValidation)
		}
		url, err := s.Images.UploadBase64(ctx, in.ImageBase64, "canteen-images")
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	c := &entity.Canteen{
		Name:        in.Name,
		Location:    in.Location,
		Phone:       in.Phone,
		Description: in.Description,
		SellerEmail: strings.ToLower(strings.TrimSpace(in.SellerEmail)),
		Rating:      in.Rating,
		ImageURL:    imageURL,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

func (s *CanteenService) List() ([]entity.Canteen, error) {
	out, err := s.Repo.List()
	if err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (s *CanteenService) Get(id uint) (*entity.Canteen, error) {
	c, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

// ForSeller resolves the canteen owned by the authenticated user. Ownership
// comes from the verified account email, never from a client-declared id.
func (s *CanteenService) ForSeller(userID uint) (*entity.Canteen, error) {
	u, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, storeErr(err)
	}
	c, err := s.Repo.FindBySellerEmail(u.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no canteen for this seller", ErrNotFound)
		}
		return nil, storeErr(err)
	}
	return c, nil
}

type UpdateCanteenIn struct {
	Description *string  `json:"description"`
	Rating      *float64 `json:"rating"`
}

// UpdateOwn lets a seller change the mutable fields of their own canteen.
func (s *CanteenService) UpdateOwn(userID uint, in *UpdateCanteenIn) (*entity.Canteen, error) {
	c, err := s.ForSeller(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Rating != nil {
		updates["rating"] = *in.Rating
	}
	if len(updates) == 0 {
		return c, nil
	}
	if err := s.Repo.Update(c.ID, updates); err != nil {
		return nil, storeErr(err)
	}
	return s.Get(c.ID)
}
