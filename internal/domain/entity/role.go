// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
)

// Role represents the normalized account type of a signed-in user.
type Role string

const (
	// RoleNone is the unknown role. Missing profiles, failed fetches and unrecognized values resolve to it.
	RoleNone Role = ""
	// RoleAdmin indicates a platform administrator. Admins cannot self-register.
	RoleAdmin Role = "admin"
	// RoleWholesaler indicates a wholesaler distributing inventory to shops.
	RoleWholesaler Role = "wholesaler"
	// RoleShopkeeper indicates a retail shop owner.
	RoleShopkeeper Role = "shopkeeper"
	// RoleCustomer indicates an end customer.
	RoleCustomer Role = "customer"
)

// Dashboard paths of the single-page client.
const (
	DashboardPathFallback   = "/dashboard"
	DashboardPathAdmin      = "/dashboard/admin"
	DashboardPathWholesaler = "/dashboard/wholesalers"
	DashboardPathShopkeeper = "/dashboard/shopkeepers"
	DashboardPathCustomer   = "/dashboard/customers"
)

// ParseRole normalizes a raw stored value. Anything outside the known set maps to RoleNone.
func ParseRole(raw string) Role {
	role := Role(strings.ToLower(raw))
	if !role.IsValid() {
		return RoleNone
	}

	return role
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the known account types.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleWholesaler, RoleShopkeeper, RoleCustomer:
		return true
	case RoleNone:
		return false
	default:
		return false
	}
}

// CanSelfRegister reports whether the role may be chosen on the signup form.
func (r Role) CanSelfRegister() bool {
	switch r {
	case RoleWholesaler, RoleShopkeeper, RoleCustomer:
		return true
	case RoleAdmin, RoleNone:
		return false
	default:
		return false
	}
}

// IsBusiness reports whether the role owns a business entity.
func (r Role) IsBusiness() bool {
	return r == RoleWholesaler || r == RoleShopkeeper
}

// DashboardPath returns the client route of the role's dashboard.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return DashboardPathAdmin
	case RoleWholesaler:
		return DashboardPathWholesaler
	case RoleShopkeeper:
		return DashboardPathShopkeeper
	case RoleCustomer:
		return DashboardPathCustomer
	case RoleNone:
		return DashboardPathFallback
	default:
		return DashboardPathFallback
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := ParseRole(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
