package entity

// OwnerType represents the kind of business that owns a subscription.
type OwnerType string

const (
	// OwnerTypeWholesaler indicates the subscription belongs to a wholesaler.
	OwnerTypeWholesaler OwnerType = "wholesaler"
	// OwnerTypeShop indicates the subscription belongs to a shop.
	OwnerTypeShop OwnerType = "shop"
)

// String returns the string representation of the OwnerType.
func (o OwnerType) String() string {
	return string(o)
}

// IsValid checks if the OwnerType is a valid value.
func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeWholesaler, OwnerTypeShop:
		return true
	default:
		return false
	}
}

// BasicPlanID returns the plan every new business of this type starts on.
func (o OwnerType) BasicPlanID() string {
	switch o {
	case OwnerTypeWholesaler:
		return "wholesaler_basic"
	case OwnerTypeShop:
		return "shop_basic"
	default:
		return ""
	}
}

// OwnerTypeForRole maps a business role to its subscription owner type.
func OwnerTypeForRole(role Role) (OwnerType, bool) {
	switch role {
	case RoleWholesaler:
		return OwnerTypeWholesaler, true
	case RoleShopkeeper:
		return OwnerTypeShop, true
	case RoleAdmin, RoleCustomer, RoleNone:
		return "", false
	default:
		return "", false
	}
}
