package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wishlist is a per-customer set of product snapshots. Adding a product that
// is already present is a no-op; the (wishlist, product) pair is unique.
type Wishlist struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"customer_id"`
	Items      []WishlistItem `gorm:"foreignKey:WishlistID" json:"items"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new wishlist
func (w *Wishlist) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Wishlist model
func (Wishlist) TableName() string {
	return "wishlists"
}

// Contains reports whether the wishlist already holds the product.
func (w *Wishlist) Contains(productID uuid.UUID) bool {
	for idx := range w.Items {
		if w.Items[idx].ProductID == productID {
			return true
		}
	}
	return false
}

// WishlistItem captures a product's name, price and thumbnail as they were
// when the customer added it.
type WishlistItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	WishlistID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_product" json:"-"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_product" json:"product_id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Price      int64     `gorm:"not null" json:"-"` // Stored in cents
	Thumbnail  string    `gorm:"size:255" json:"thumbnail"`
	AddedAt    time.Time `gorm:"autoCreateTime" json:"added_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i WishlistItem) MarshalJSON() ([]byte, error) {
	type Alias WishlistItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(i),
		Price: float64(i.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new wishlist item
func (i *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WishlistItem model
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
