package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
)

// ErrVersionConflict is returned by UpdateWithVersion when another mutation
// committed between the caller's read and write. The caller retries the
// whole read-modify-write cycle.
var ErrVersionConflict = errors.New("cart version conflict")

// CartRepository defines the interface for cart data operations. A cart is
// the unit of consistency: mutations persist the whole aggregate.
type CartRepository interface {
	// GetByCustomer returns the customer's cart with items, or nil when the
	// customer has none yet.
	GetByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error)
	// Create inserts a new cart. The unique customer index makes concurrent
	// lazy creation fail for all but one caller.
	Create(ctx context.Context, cart *entity.Cart) error
	// UpdateWithVersion persists the cart and its items only if the stored
	// version still matches cart.Version, then bumps the version. Returns
	// ErrVersionConflict on mismatch.
	UpdateWithVersion(ctx context.Context, cart *entity.Cart) error
	// Delete removes the customer's cart entirely.
	Delete(ctx context.Context, customerID uuid.UUID) error
}
