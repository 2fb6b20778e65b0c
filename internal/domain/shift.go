package domain

import "time"

// Shift is a scheduled work window. Unpublished shifts are visible only to
// scheduling staff, never to the employee they belong to.
type Shift struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	StartTime   time.Time
	EndTime     time.Time
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
