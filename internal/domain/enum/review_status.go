package enum

import "database/sql/driver"

// ReviewStatus represents the moderation state of a product review
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// IsValid reports whether the status is a member of the enumerated set.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

func (s ReviewStatus) String() string {
	return string(s)
}

func (s ReviewStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *ReviewStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ReviewStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = ReviewStatus(v)
	case []byte:
		*s = ReviewStatus(v)
	}
	return nil
}
