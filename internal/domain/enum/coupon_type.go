package enum

import "database/sql/driver"

// CouponType determines how a coupon's value is applied to a cart subtotal
type CouponType string

const (
	// CouponTypePercentage takes value as a percentage of the subtotal
	CouponTypePercentage CouponType = "percentage"
	// CouponTypeFixed takes value as a fixed amount, capped at the subtotal
	CouponTypeFixed CouponType = "fixed"
)

func (t CouponType) IsValid() bool {
	return t == CouponTypePercentage || t == CouponTypeFixed
}

func (t CouponType) String() string {
	return string(t)
}

func (t CouponType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CouponType) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CouponType(v)
	case []byte:
		*t = CouponType(v)
	}
	return nil
}
