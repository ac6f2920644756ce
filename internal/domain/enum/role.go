package enum

import "database/sql/driver"

// Role represents the account role attached to a user
type Role string

const (
	RoleCustomer          Role = "customer"
	RoleSupplier          Role = "supplier"
	RoleDeliveryAssociate Role = "delivery_associate"
	RoleAdmin             Role = "admin"
	RoleSuperAdmin        Role = "superadmin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSupplier, RoleDeliveryAssociate, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// ActorKind maps a role to the actor kind recorded in order status history.
func (r Role) ActorKind() ActorKind {
	switch r {
	case RoleSupplier:
		return ActorKindSupplier
	case RoleDeliveryAssociate:
		return ActorKindDeliveryAssociate
	case RoleAdmin, RoleSuperAdmin:
		return ActorKindAdmin
	default:
		return ActorKindCustomer
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleCustomer
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	}
	return nil
}
