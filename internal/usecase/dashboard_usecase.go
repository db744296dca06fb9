package usecase

import (
	"context"

	"dukasync/internal/domain/entity"
)

// DashboardShell is the read-only view model of a role's dashboard.
type DashboardShell struct {
	Role         entity.Role `json:"role"`
	Path         string      `json:"path"`
	Title        string      `json:"title"`
	Greeting     string      `json:"greeting"`
	BusinessName string      `json:"businessName,omitempty"`
	ShopName     string      `json:"shopName,omitempty"`
	County       string      `json:"county,omitempty"`
	Constituency string      `json:"constituency,omitempty"`
	Sections     []string    `json:"sections"`
}

// DashboardUsecase builds dashboard shells.
type DashboardUsecase interface {
	// Shell builds the shell of a role for an already authorized session.
	Shell(ctx context.Context, role entity.Role, session *entity.Session, profile *entity.UserProfile) (*DashboardShell, error)
}
