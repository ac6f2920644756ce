package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is a placed order. Its lines carry price snapshots locked at
// creation time; they never change when the underlying product changes.
type Order struct {
	ID                uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber       string               `gorm:"size:100;unique;not null" json:"order_number"`
	CustomerID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"customer_id"`
	SupplierID        uuid.UUID            `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Status            enum.OrderStatus     `gorm:"size:30;default:'pending'" json:"status"`
	PaymentStatus     enum.PaymentStatus   `gorm:"size:30;default:'pending'" json:"payment_status"`
	DeliveryAddress   string               `gorm:"type:text;not null" json:"delivery_address"`
	PaymentMethod     string               `gorm:"size:50;not null" json:"payment_method"`
	CouponCode        *string              `gorm:"size:100" json:"coupon_code,omitempty"`
	IsExpressDelivery bool                 `gorm:"default:false" json:"is_express_delivery"`
	Total             int64                `gorm:"default:0" json:"-"` // Stored in cents
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	DeletedAt         gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Customer      Customer             `gorm:"foreignKey:CustomerID" json:"-"`
	Supplier      Supplier             `gorm:"foreignKey:SupplierID" json:"-"`
	Items         []OrderItem          `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID" json:"status_history,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// AppendStatus sets the order status and records a history entry. The entry
// is appended only when the status differs from the most recent one, so
// repeating a status never produces consecutive duplicates. Reports whether
// an entry was appended.
func (o *Order) AppendStatus(status enum.OrderStatus, actorID uuid.UUID, actorKind enum.ActorKind, note *string) bool {
	o.Status = status
	if n := len(o.StatusHistory); n > 0 && o.StatusHistory[n-1].Status == status {
		return false
	}
	o.StatusHistory = append(o.StatusHistory, OrderStatusHistory{
		ID:        uuid.New(),
		OrderID:   o.ID,
		Status:    status,
		ActorID:   actorID,
		ActorKind: actorKind,
		Note:      note,
		CreatedAt: time.Now(),
	})
	return true
}

// OrderItem is an immutable priced line in an order. Price and
// discountedPrice are snapshots of the product at order-creation time; an
// absent discountedPrice stays absent so audit trails can tell a discount
// of zero from no discount at all.
type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	Price           int64     `gorm:"not null" json:"-"` // Stored in cents
	DiscountedPrice *int64    `json:"-"`                 // Stored in cents, nil when the product had none
	VariationName   *string   `gorm:"size:100" json:"-"`
	VariationValue  *string   `gorm:"size:100" json:"-"`
	Total           int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt       time.Time `json:"created_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	var discounted *float64
	if i.DiscountedPrice != nil {
		d := float64(*i.DiscountedPrice) / 100
		discounted = &d
	}
	return json.Marshal(&struct {
		Alias
		Price           float64    `json:"price"`
		DiscountedPrice *float64   `json:"discounted_price,omitempty"`
		Variation       *Variation `json:"variation,omitempty"`
		Total           float64    `json:"total"`
	}{
		Alias:           Alias(i),
		Price:           float64(i.Price) / 100,
		DiscountedPrice: discounted,
		Variation:       i.Variation(),
		Total:           float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// Variation returns the line's variation, or nil when it has none.
func (i *OrderItem) Variation() *Variation {
	if i.VariationName == nil && i.VariationValue == nil {
		return nil
	}
	v := Variation{}
	if i.VariationName != nil {
		v.Name = *i.VariationName
	}
	if i.VariationValue != nil {
		v.Value = *i.VariationValue
	}
	return &v
}

// SetVariation stores the optional variation on the line.
func (i *OrderItem) SetVariation(v *Variation) {
	if v == nil {
		i.VariationName = nil
		i.VariationValue = nil
		return
	}
	name, value := v.Name, v.Value
	i.VariationName = &name
	i.VariationValue = &value
}

// UnitPrice returns the effective unit price locked onto the line.
func (i *OrderItem) UnitPrice() int64 {
	if i.DiscountedPrice != nil {
		return *i.DiscountedPrice
	}
	return i.Price
}

// OrderStatusHistory is one entry in an order's append-only audit trail.
type OrderStatusHistory struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"-"`
	Status    enum.OrderStatus `gorm:"size:30;not null" json:"status"`
	ActorID   uuid.UUID        `gorm:"type:uuid;not null" json:"actor_id"`
	ActorKind enum.ActorKind   `gorm:"size:30;not null" json:"actor_kind"`
	Note      *string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new history entry
func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderStatusHistory model
func (OrderStatusHistory) TableName() string {
	return "order_status_history"
}
