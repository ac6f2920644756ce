package service

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"github.com/sokoline/soko-api/internal/domain/repository"
	"github.com/sokoline/soko-api/pkg/apperror"
)

// cartMutationRetries bounds the optimistic-concurrency retry loop. Each
// attempt re-reads the cart, reapplies the mutation and persists with a
// version compare-and-swap.
const cartMutationRetries = 3

// CartService owns the per-customer cart aggregate: it loads or lazily
// creates the cart, applies line-item mutations and persists the result with
// recomputed totals.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetCart returns the customer's cart, or a conceptual empty cart when none
// exists yet. The empty cart is not persisted.
func (s *CartService) GetCart(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return emptyCart(customerID), nil
	}
	return cart, nil
}

// AddItem resolves the product, snapshots its current prices and merges the
// requested quantity into the customer's cart.
func (s *CartService) AddItem(ctx context.Context, customerID, productID uuid.UUID, quantity int, variation *entity.Variation) (*entity.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	return s.mutate(ctx, customerID, true, func(cart *entity.Cart) error {
		return cart.AddItem(product.ID, quantity, product.Price, product.DiscountedPrice, variation)
	})
}

// UpdateItemQuantity sets the quantity of an existing line; a non-positive
// quantity removes the line.
func (s *CartService) UpdateItemQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	return s.mutate(ctx, customerID, false, func(cart *entity.Cart) error {
		return cart.UpdateItemQuantity(itemID, quantity)
	})
}

// RemoveItem removes a line from the cart. Removing an unknown item, or
// removing from a customer with no cart, succeeds without effect.
func (s *CartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return emptyCart(customerID), nil
	}

	return s.mutate(ctx, customerID, false, func(cart *entity.Cart) error {
		cart.RemoveItem(itemID)
		return nil
	})
}

// Clear empties the customer's cart. A customer without a cart gets an empty
// cart back without anything being persisted.
func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return emptyCart(customerID), nil
	}

	return s.mutate(ctx, customerID, false, func(cart *entity.Cart) error {
		cart.Clear()
		return nil
	})
}

// ApplyCoupon records an applied-coupon snapshot on the cart. Value is a
// percent for percentage coupons and a decimal amount for fixed ones.
func (s *CartService) ApplyCoupon(ctx context.Context, customerID uuid.UUID, code string, couponType enum.CouponType, value float64) (*entity.Cart, error) {
	if code == "" {
		return nil, apperror.NewRequiredFieldError("code")
	}
	if !couponType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid coupon type")
	}
	if value <= 0 {
		return nil, apperror.NewBadRequestError("Coupon value must be positive")
	}
	if couponType == enum.CouponTypePercentage && value > 100 {
		return nil, apperror.NewBadRequestError("Percentage coupon cannot exceed 100")
	}

	stored := int64(value)
	if couponType == enum.CouponTypeFixed {
		// Round the cents conversion; float arithmetic can land a hair
		// under the exact amount (10.55 * 100 == 1054.999...).
		stored = int64(math.Round(value * 100))
	}

	return s.mutate(ctx, customerID, false, func(cart *entity.Cart) error {
		cart.ApplyCoupon(code, couponType, stored)
		return nil
	})
}

// RemoveCoupon drops the applied coupon from the cart.
func (s *CartService) RemoveCoupon(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	return s.mutate(ctx, customerID, false, func(cart *entity.Cart) error {
		cart.RemoveCoupon()
		return nil
	})
}

// mutate runs the read-modify-write cycle for a cart mutation. Totals are
// recomputed by the entity on every mutation, so whatever is persisted is
// internally consistent. On a version conflict the whole cycle is retried
// against the fresh state before giving up with a 409.
func (s *CartService) mutate(ctx context.Context, customerID uuid.UUID, createIfMissing bool, fn func(*entity.Cart) error) (*entity.Cart, error) {
	for attempt := 0; attempt < cartMutationRetries; attempt++ {
		cart, err := s.loadForMutation(ctx, customerID, createIfMissing)
		if err != nil {
			return nil, err
		}

		if err := fn(cart); err != nil {
			return nil, mapCartError(err)
		}

		err = s.cartRepo.UpdateWithVersion(ctx, cart)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
	}
	return nil, apperror.NewConflictError("Cart was modified concurrently, please retry")
}

// loadForMutation returns a persisted cart for the customer, inserting an
// empty one when allowed. Concurrent lazy creation is resolved by the unique
// customer index: the loser of the race re-reads the winner's cart.
func (s *CartService) loadForMutation(ctx context.Context, customerID uuid.UUID, createIfMissing bool) (*entity.Cart, error) {
	cart, err := s.cartRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	if !createIfMissing {
		return nil, apperror.NewNotFoundError("Cart")
	}

	cart = emptyCart(customerID)
	if err := s.cartRepo.Create(ctx, cart); err != nil {
		existing, getErr := s.cartRepo.GetByCustomer(ctx, customerID)
		if getErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return cart, nil
}

func emptyCart(customerID uuid.UUID) *entity.Cart {
	return &entity.Cart{
		CustomerID: customerID,
		Items:      []entity.CartItem{},
	}
}

func mapCartError(err error) error {
	switch {
	case errors.Is(err, entity.ErrInvalidQuantity):
		return apperror.NewBadRequestError("Quantity must be at least 1")
	case errors.Is(err, entity.ErrCartItemNotFound):
		return apperror.NewNotFoundError("Cart item")
	default:
		return err
	}
}
