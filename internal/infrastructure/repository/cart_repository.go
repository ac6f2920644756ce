package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/entity"
	domainRepo "github.com/sokoline/soko-api/internal/domain/repository"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.Product").
		First(&cart, "customer_id = ?", customerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

// UpdateWithVersion persists the aggregate guarded by a compare-and-swap on
// the version column. The item collection is replaced wholesale inside the
// same transaction; partial persists cannot happen.
func (r *cartRepository) UpdateWithVersion(ctx context.Context, cart *entity.Cart) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Cart{}).
			Where("id = ? AND version = ?", cart.ID, cart.Version).
			Updates(map[string]interface{}{
				"subtotal":     cart.Subtotal,
				"coupon_code":  cart.CouponCode,
				"coupon_type":  cart.CouponType,
				"coupon_value": cart.CouponValue,
				"discount":     cart.Discount,
				"version":      gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainRepo.ErrVersionConflict
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		if len(cart.Items) > 0 {
			for i := range cart.Items {
				cart.Items[i].CartID = cart.ID
			}
			if err := tx.Omit("Product").Create(&cart.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	cart.Version++
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart entity.Cart
		err := tx.First(&cart, "customer_id = ?", customerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}
