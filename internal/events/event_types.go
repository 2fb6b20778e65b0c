package events

import (
	"time"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAttendanceRecorded EventType = "attendance_recorded"
	EventShiftPublished     EventType = "shift_published"
	EventCompanyOnboarded   EventType = "company_onboarded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	CompanyID string      `json:"company_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AttendanceRecordedPayload payload.
type AttendanceRecordedPayload struct {
	EmployeeID string                  `json:"employee_id"`
	Type       domain.AttendanceType   `json:"type"`
	Device     domain.AttendanceDevice `json:"device"`
}

// ShiftPublishedPayload payload.
type ShiftPublishedPayload struct {
	ShiftID    string    `json:"shift_id"`
	EmployeeID string    `json:"employee_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// CompanyOnboardedPayload payload.
type CompanyOnboardedPayload struct {
	CompanyName string             `json:"company_name"`
	OwnerID     string             `json:"owner_id"`
	Plan        domain.CompanyPlan `json:"plan"`
}
