package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
)

// WishlistRepository defines the interface for wishlist data operations
type WishlistRepository interface {
	// GetByCustomer returns the customer's wishlist with items, or nil when
	// the customer has none yet.
	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Wishlist, error)
	Create(ctx context.Context, wishlist *entity.Wishlist) error
	// AddItem inserts an item; inserting a product already in the wishlist
	// is a no-op thanks to the unique (wishlist, product) index.
	AddItem(ctx context.Context, item *entity.WishlistItem) error
	RemoveItem(ctx context.Context, wishlistID, productID uuid.UUID) error
}
