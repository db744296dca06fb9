package entity

import "strings"

// Client routes of the single-page front end.
const (
	PathHome           = "/"
	PathLogin          = "/login"
	PathRegister       = "/register"
	PathForgotPassword = "/forgot-password"
	PathUnauthorized   = "/unauthorized"
	PathDocs           = "/docs"
	PathCareers        = "/careers"
)

// GuardState is the outcome of one route guard evaluation.
type GuardState string

const (
	GuardLoading                GuardState = "loading"
	GuardUnconfigured           GuardState = "unconfigured"
	GuardUnauthenticated        GuardState = "unauthenticated"
	GuardAuthorizedNoRoleCheck  GuardState = "authorized_no_role_check"
	GuardAuthorizedRoleMismatch GuardState = "authorized_role_mismatch"
	GuardAuthorizedRoleMatch    GuardState = "authorized_role_match"
)

// Allows reports whether the protected content may be rendered.
func (s GuardState) Allows() bool {
	switch s {
	case GuardAuthorizedNoRoleCheck, GuardAuthorizedRoleMatch:
		return true
	case GuardLoading, GuardUnconfigured, GuardUnauthenticated, GuardAuthorizedRoleMismatch:
		return false
	default:
		return false
	}
}

// Terminal reports whether the evaluation has settled.
func (s GuardState) Terminal() bool {
	return s != GuardLoading
}

// GuardDecision is what a caller does with a navigation target.
// Public routes and the catch-all redirect are not guarded and carry no State.
type GuardDecision struct {
	Path     string     `json:"path"`
	State    GuardState `json:"state,omitempty"`
	Allowed  bool       `json:"allowed"`
	Redirect string     `json:"redirect,omitempty"`
	Role     Role       `json:"role,omitempty"`
}

// ClientRoute describes one navigation target.
type ClientRoute struct {
	Path         string `json:"path"`
	Protected    bool   `json:"protected"`
	AllowedRoles Roles  `json:"allowedRoles,omitempty"`
}

//nolint:gochecknoglobals
var clientRoutes = []ClientRoute{
	{Path: PathHome},
	{Path: PathLogin},
	{Path: PathRegister},
	{Path: PathForgotPassword},
	{Path: PathUnauthorized},
	{Path: PathDocs},
	{Path: PathCareers},
	{Path: DashboardPathFallback, Protected: true},
	{Path: DashboardPathAdmin, Protected: true, AllowedRoles: Roles{RoleAdmin}},
	{Path: DashboardPathWholesaler, Protected: true, AllowedRoles: Roles{RoleWholesaler}},
	{Path: DashboardPathShopkeeper, Protected: true, AllowedRoles: Roles{RoleShopkeeper}},
	{Path: DashboardPathCustomer, Protected: true, AllowedRoles: Roles{RoleCustomer}},
}

// LookupClientRoute finds the route for a path. Unknown paths report false; the caller redirects them home.
func LookupClientRoute(path string) (ClientRoute, bool) {
	normalized := "/" + strings.Trim(strings.TrimSpace(path), "/")
	for _, route := range clientRoutes {
		if route.Path == normalized {
			return route, true
		}
	}

	return ClientRoute{}, false
}
