package domain

import "time"

// CompanyPlan enumerates billing plans.
type CompanyPlan string

const (
	CompanyPlanFree CompanyPlan = "FREE"
	CompanyPlanPro  CompanyPlan = "PRO"
)

// Company is the organization a staff member belongs to. KioskCode is the
// shared secret unattended devices present at kiosk login.
type Company struct {
	ID        string
	Name      string
	Plan      CompanyPlan
	KioskCode string
	OwnerID   string
	CreatedAt time.Time
}
