package dto

import (
	"time"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// ShiftRequest payload for creating or updating a shift.
type ShiftRequest struct {
	EmployeeID string    `json:"employee_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// ShiftResponse is a scheduled shift.
type ShiftResponse struct {
	ID          string    `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	IsPublished bool      `json:"is_published"`
}

// FromShift maps a domain shift.
func FromShift(shift *domain.Shift) ShiftResponse {
	return ShiftResponse{
		ID:          shift.ID,
		EmployeeID:  shift.EmployeeID,
		StartTime:   shift.StartTime,
		EndTime:     shift.EndTime,
		IsPublished: shift.IsPublished,
	}
}
