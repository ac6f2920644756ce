package entity

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sokoline/soko-api/internal/domain/enum"
	"gorm.io/gorm"
)

var (
	// ErrInvalidQuantity is returned when an add operation receives a
	// non-positive quantity. Removal via zero is only valid on update.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrCartItemNotFound is returned when an update targets an item id
	// that is not in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// Variation is a named product option (e.g. size="L") distinguishing
// otherwise identical cart lines.
type Variation struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// VariationEqual reports whether two optional variations identify the same
// line: both absent, or both present with identical name and value.
func VariationEqual(a, b *Variation) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name == b.Name && a.Value == b.Value
}

// Cart is the per-customer cart aggregate. Exactly one cart exists per
// customer; it is created lazily on the first add-to-cart call.
type Cart struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"customer_id"`
	Items      []CartItem `gorm:"foreignKey:CartID" json:"items"`
	Subtotal   int64      `gorm:"default:0" json:"-"` // Stored in cents

	// Applied-coupon snapshot. The coupon catalog itself lives outside
	// this aggregate; the cart only records what was applied.
	CouponCode  *string         `gorm:"size:100" json:"coupon_code,omitempty"`
	CouponType  enum.CouponType `gorm:"size:20" json:"coupon_type,omitempty"`
	CouponValue int64           `gorm:"default:0" json:"-"`
	Discount    int64           `gorm:"default:0" json:"-"` // Stored in cents

	// Version guards the read-modify-write cycle. Mutations persist with a
	// compare-and-swap on this field and retry on mismatch.
	Version   int64     `gorm:"default:0" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c Cart) MarshalJSON() ([]byte, error) {
	type Alias Cart
	return json.Marshal(&struct {
		Alias
		Subtotal    float64  `json:"subtotal"`
		CouponValue *float64 `json:"coupon_value,omitempty"`
		Discount    float64  `json:"discount"`
	}{
		Alias:       Alias(c),
		Subtotal:    float64(c.Subtotal) / 100,
		CouponValue: c.couponValueDecimal(),
		Discount:    float64(c.Discount) / 100,
	})
}

func (c *Cart) couponValueDecimal() *float64 {
	if c.CouponCode == nil {
		return nil
	}
	v := float64(c.CouponValue)
	// Percentage values are plain percents, not cents
	if c.CouponType == enum.CouponTypeFixed {
		v /= 100
	}
	return &v
}

// BeforeCreate generates a UUID before creating a new cart
func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cart model
func (Cart) TableName() string {
	return "carts"
}

// CartItem is one line in a cart: a product (+ optional variation) with its
// quantity and the price snapshot taken when the line was first added.
type CartItem struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CartID          uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	Price           int64     `gorm:"not null" json:"-"` // Stored in cents
	DiscountedPrice *int64    `json:"-"`                 // Stored in cents, nil when the product had none
	VariationName   *string   `gorm:"size:100" json:"-"`
	VariationValue  *string   `gorm:"size:100" json:"-"`
	TotalPrice      int64     `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i CartItem) MarshalJSON() ([]byte, error) {
	type Alias CartItem
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
		TotalPrice      float64    `json:"total_price"`
	}{
		Alias:           Alias(i),
		Price:           float64(i.Price) / 100,
		DiscountedPrice: discounted,
		Variation:       i.Variation(),
		TotalPrice:      float64(i.TotalPrice) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new cart item
func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CartItem model
func (CartItem) TableName() string {
	return "cart_items"
}

// Variation returns the line's variation, or nil when it has none.
func (i *CartItem) Variation() *Variation {
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

func (i *CartItem) setVariation(v *Variation) {
	if v == nil {
		i.VariationName = nil
		i.VariationValue = nil
		return
	}
	name, value := v.Name, v.Value
	i.VariationName = &name
	i.VariationValue = &value
}

// UnitPrice returns the effective unit price: the discounted snapshot when
// present, otherwise the list price snapshot.
func (i *CartItem) UnitPrice() int64 {
	if i.DiscountedPrice != nil {
		return *i.DiscountedPrice
	}
	return i.Price
}

// AddItem merges quantity into an existing line with the same
// (product, variation) identity, or appends a new line. The unit price of an
// existing line is fixed at first add; later merges reuse the stored
// snapshot and ignore the supplied prices.
func (c *Cart) AddItem(productID uuid.UUID, quantity int, price int64, discountedPrice *int64, variation *Variation) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for idx := range c.Items {
		item := &c.Items[idx]
		if item.ProductID == productID && VariationEqual(item.Variation(), variation) {
			item.Quantity += quantity
			item.TotalPrice = int64(item.Quantity) * item.UnitPrice()
			c.RecomputeTotals()
			return nil
		}
	}

	item := CartItem{
		ID:              uuid.New(),
		CartID:          c.ID,
		ProductID:       productID,
		Quantity:        quantity,
		Price:           price,
		DiscountedPrice: discountedPrice,
	}
	item.setVariation(variation)
	item.TotalPrice = int64(quantity) * item.UnitPrice()
	c.Items = append(c.Items, item)
	c.RecomputeTotals()
	return nil
}

// UpdateItemQuantity sets the quantity of an existing line. A non-positive
// quantity removes the line entirely; that is a deletion, not an error.
func (c *Cart) UpdateItemQuantity(itemID uuid.UUID, quantity int) error {
	for idx := range c.Items {
		item := &c.Items[idx]
		if item.ID != itemID {
			continue
		}
		if quantity <= 0 {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		} else {
			item.Quantity = quantity
			item.TotalPrice = int64(quantity) * item.UnitPrice()
		}
		c.RecomputeTotals()
		return nil
	}
	return ErrCartItemNotFound
}

// RemoveItem removes the line with the given id. Removing an absent id is a
// no-op success.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			break
		}
	}
	c.RecomputeTotals()
}

// Clear empties the cart and zeroes its derived totals.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.RecomputeTotals()
}

// ApplyCoupon records an applied-coupon snapshot and recomputes the discount.
func (c *Cart) ApplyCoupon(code string, couponType enum.CouponType, value int64) {
	c.CouponCode = &code
	c.CouponType = couponType
	c.CouponValue = value
	c.RecomputeTotals()
}

// RemoveCoupon drops the applied coupon and zeroes the discount.
func (c *Cart) RemoveCoupon() {
	c.CouponCode = nil
	c.CouponType = ""
	c.CouponValue = 0
	c.RecomputeTotals()
}

// RecomputeTotals derives subtotal and discount from the item collection.
// Invariant: subtotal == sum of line totals after every mutation; callers
// never maintain it themselves.
func (c *Cart) RecomputeTotals() {
	var subtotal int64
	for idx := range c.Items {
		subtotal += c.Items[idx].TotalPrice
	}
	c.Subtotal = subtotal
	c.Discount = c.couponDiscount()
}

func (c *Cart) couponDiscount() int64 {
	if c.CouponCode == nil {
		return 0
	}
	switch c.CouponType {
	case enum.CouponTypePercentage:
		return c.Subtotal * c.CouponValue / 100
	case enum.CouponTypeFixed:
		if c.CouponValue > c.Subtotal {
			return c.Subtotal
		}
		return c.CouponValue
	}
	return 0
}

// FindItem returns the line with the given id, or nil.
func (c *Cart) FindItem(itemID uuid.UUID) *CartItem {
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			return &c.Items[idx]
		}
	}
	return nil
}
