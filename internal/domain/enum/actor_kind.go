package enum

import "database/sql/driver"

// ActorKind identifies which kind of account performed an order status change
type ActorKind string

const (
	ActorKindCustomer          ActorKind = "customer"
	ActorKindSupplier          ActorKind = "supplier"
	ActorKindDeliveryAssociate ActorKind = "delivery_associate"
	ActorKindAdmin             ActorKind = "admin"
)

func (k ActorKind) IsValid() bool {
	switch k {
	case ActorKindCustomer, ActorKindSupplier, ActorKindDeliveryAssociate, ActorKindAdmin:
		return true
	}
	return false
}

func (k ActorKind) String() string {
	return string(k)
}

func (k ActorKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *ActorKind) Scan(value interface{}) error {
	if value == nil {
		*k = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*k = ActorKind(v)
	case []byte:
		*k = ActorKind(v)
	}
	return nil
}
