package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryAssociate represents a delivery rider profile managed by admins
type DeliveryAssociate struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FirstName     string         `gorm:"size:100;not null" json:"first_name"`
	LastName      string         `gorm:"size:100" json:"last_name"`
	Phone         string         `gorm:"size:50;not null" json:"phone"`
	VehicleNumber *string        `gorm:"size:50" json:"vehicle_number,omitempty"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new delivery associate
func (d *DeliveryAssociate) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DeliveryAssociate model
func (DeliveryAssociate) TableName() string {
	return "delivery_associates"
}
