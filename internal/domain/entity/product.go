package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog product offered by a supplier
type Product struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SupplierID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"supplier_id"`
	CategoryID      *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Slug            string         `gorm:"size:255;unique;not null" json:"slug"`
	SKU             string         `gorm:"size:100;unique;not null" json:"sku"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	Price           int64          `gorm:"not null" json:"-"` // Stored in cents
	DiscountedPrice *int64         `json:"-"`                 // Stored in cents, nil when no discount is set
	StockQuantity   int            `gorm:"default:0" json:"stock_quantity"`
	Unit            string         `gorm:"size:20;default:'pcs'" json:"unit"`
	Thumbnail       *string        `gorm:"size:255" json:"thumbnail,omitempty"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Supplier Supplier  `gorm:"foreignKey:SupplierID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	var discounted *float64
	if p.DiscountedPrice != nil {
		d := float64(*p.DiscountedPrice) / 100
		discounted = &d
	}
	return json.Marshal(&struct {
		Alias
		Price           float64  `json:"price"`
		DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	}{
		Alias:           Alias(p),
		Price:           float64(p.Price) / 100,
		DiscountedPrice: discounted,
	})
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetPriceDecimal returns the list price as a decimal (for display)
func (p *Product) GetPriceDecimal() float64 {
	return float64(p.Price) / 100
}

// SetPriceFromDecimal sets the list price from a decimal value
func (p *Product) SetPriceFromDecimal(price float64) {
	p.Price = int64(price * 100)
}

// SetDiscountedPriceFromDecimal sets the discounted price from a decimal
// value; nil clears it.
func (p *Product) SetDiscountedPriceFromDecimal(price *float64) {
	if price == nil {
		p.DiscountedPrice = nil
		return
	}
	cents := int64(*price * 100)
	p.DiscountedPrice = &cents
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
