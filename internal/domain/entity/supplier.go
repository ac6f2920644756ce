package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a seller profile linked to a user account. Document
// verification is a linear flag flipped by admins; there is no workflow
// state machine behind it.
type Supplier struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	BusinessName string         `gorm:"size:255;not null" json:"business_name"`
	Email        string         `gorm:"size:255;not null" json:"email"`
	Phone        *string        `gorm:"size:50" json:"phone,omitempty"`
	Address      *string        `gorm:"type:text" json:"address,omitempty"`
	GSTNumber    *string        `gorm:"size:50;column:gst_number" json:"gst_number,omitempty"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Products []Product `gorm:"foreignKey:SupplierID" json:"-"`
	Orders   []Order   `gorm:"foreignKey:SupplierID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
