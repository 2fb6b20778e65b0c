package domain

import "time"

// AttendanceType enumerates check events.
type AttendanceType string

const (
	AttendanceCheckIn  AttendanceType = "CHECK_IN"
	AttendanceCheckOut AttendanceType = "CHECK_OUT"
)

// AttendanceDevice enumerates where the check event originated.
type AttendanceDevice string

const (
	DeviceMobile AttendanceDevice = "MOBILE"
	DeviceKiosk  AttendanceDevice = "KIOSK"
)

// Attendance records a single check-in or check-out. For a given employee
// and day, check events alternate; the recording service enforces this.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Type       AttendanceType
	Timestamp  time.Time
	Device     AttendanceDevice
}
