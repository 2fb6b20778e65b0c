package domain

import "time"

// UserRole enumerates staff roles within a company, plus the kiosk
// pseudo-role used for unattended devices.
type UserRole string

const (
	UserRoleOwner    UserRole = "OWNER"
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleManager  UserRole = "MANAGER"
	UserRoleEmployee UserRole = "EMPLOYEE"
	UserRoleKiosk    UserRole = "KIOSK"
)

// CanManageSchedule reports whether the role may edit shifts and company data.
func (r UserRole) CanManageSchedule() bool {
	switch r {
	case UserRoleOwner, UserRoleAdmin, UserRoleManager:
		return true
	}
	return false
}

// User is the domain model for a staff identity.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CompanyID    *string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
