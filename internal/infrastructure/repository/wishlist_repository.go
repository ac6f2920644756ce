package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	domainRepo "github.com/sokoline/soko-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new wishlist repository
func NewWishlistRepository(db *gorm.DB) domainRepo.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Wishlist, error) {
	var wishlist entity.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("wishlist_items.added_at ASC")
		}).
		First(&wishlist, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepository) Create(ctx context.Context, wishlist *entity.Wishlist) error {
	return r.db.WithContext(ctx).Create(wishlist).Error
}

// AddItem relies on the unique (wishlist_id, product_id) index for set
// semantics: a duplicate insert is ignored rather than failed.
func (r *wishlistRepository) AddItem(ctx context.Context, item *entity.WishlistItem) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wishlist_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(item).Error
}

func (r *wishlistRepository) RemoveItem(ctx context.Context, wishlistID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("wishlist_id = ? AND product_id = ?", wishlistID, productID).
		Delete(&entity.WishlistItem{}).Error
}
