package dto

import (
	"time"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// ScanRequest payload posted by the employee app after scanning a kiosk QR.
type ScanRequest struct {
	Token string `json:"token"`
}

// AttendanceResponse is a single check event.
type AttendanceResponse struct {
	ID        string                  `json:"id"`
	Type      domain.AttendanceType   `json:"type"`
	Timestamp time.Time               `json:"timestamp"`
	Device    domain.AttendanceDevice `json:"device"`
}

// FromAttendance maps a domain record.
func FromAttendance(att *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        att.ID,
		Type:      att.Type,
		Timestamp: att.Timestamp,
		Device:    att.Device,
	}
}

// QRTokenResponse is the token a kiosk display currently shows.
type QRTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
