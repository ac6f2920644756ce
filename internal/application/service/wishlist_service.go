package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
)

// WishlistService manages the per-customer wishlist. Adds are set-like:
// adding a product twice leaves a single entry.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// Get returns the customer's wishlist, or an empty one when none exists yet.
func (s *WishlistService) Get(ctx context.Context, customerID uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := s.wishlistRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return emptyWishlist(customerID), nil
	}
	return wishlist, nil
}

// AddProduct adds a product snapshot to the wishlist. Adding a product that
// is already present succeeds without duplicating it.
func (s *WishlistService) AddProduct(ctx context.Context, customerID, productID uuid.UUID) (*entity.Wishlist, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	wishlist, err := s.wishlistRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		wishlist = &entity.Wishlist{
			ID:         uuid.New(),
			CustomerID: customerID,
		}
		if err := s.wishlistRepo.Create(ctx, wishlist); err != nil {
			existing, getErr := s.wishlistRepo.GetByCustomer(ctx, customerID)
			if getErr != nil || existing == nil {
				return nil, err
			}
			wishlist = existing
		}
	}

	item := &entity.WishlistItem{
		ID:         uuid.New(),
		WishlistID: wishlist.ID,
		ProductID:  product.ID,
		Name:       product.Name,
		Price:      product.Price,
	}
	if product.Thumbnail != nil {
		item.Thumbnail = *product.Thumbnail
	}
	if err := s.wishlistRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}

	return s.wishlistRepo.GetByCustomer(ctx, customerID)
}

// RemoveProduct drops a product from the wishlist. Removing an absent
// product, or removing from a customer without a wishlist, succeeds.
func (s *WishlistService) RemoveProduct(ctx context.Context, customerID, productID uuid.UUID) (*entity.Wishlist, error) {
	wishlist, err := s.wishlistRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil {
		return emptyWishlist(customerID), nil
	}

	if err := s.wishlistRepo.RemoveItem(ctx, wishlist.ID, productID); err != nil {
		return nil, err
	}
	return s.wishlistRepo.GetByCustomer(ctx, customerID)
}

func emptyWishlist(customerID uuid.UUID) *entity.Wishlist {
	return &entity.Wishlist{
		CustomerID: customerID,
		Items:      []entity.WishlistItem{},
	}
}
