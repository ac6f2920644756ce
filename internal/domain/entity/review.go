package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Review is a customer's rating of a purchased product. Reviews enter the
// system pending and become publicly visible only once an admin approves
// them; the admin may also attach a single reply.
type Review struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProductID  uuid.UUID         `gorm:"type:uuid;not null;index" json:"product_id"`
	OrderID    *uuid.UUID        `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Rating     int               `gorm:"not null" json:"rating"`
	Title      string            `gorm:"size:255" json:"title"`
	Comment    string            `gorm:"type:text" json:"comment"`
	Status     enum.ReviewStatus `gorm:"size:20;default:'pending';index" json:"status"`
	IsVisible  bool              `gorm:"default:true" json:"is_visible"`

	ReplyContent   *string    `gorm:"type:text" json:"reply_content,omitempty"`
	ReplyAdminID   *uuid.UUID `gorm:"type:uuid" json:"reply_admin_id,omitempty"`
	ReplyCreatedAt *time.Time `json:"reply_created_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Product  Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Order    *Order   `gorm:"foreignKey:OrderID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new review
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Review model
func (Review) TableName() string {
	return "reviews"
}

// SetReply attaches the admin's reply, replacing any earlier one. Leading
// and trailing whitespace is dropped; an empty reply is invalid and the
// review is left unchanged.
func (r *Review) SetReply(content string, adminID uuid.UUID) bool {
	content = strings.TrimSpace(content)
	if content == "" {
		return false
	}
	now := time.Now()
	r.ReplyContent = &content
	r.ReplyAdminID = &adminID
	r.ReplyCreatedAt = &now
	return true
}
