package domain

import "time"

// KioskIdentity describes an unattended device that completed kiosk login
// with a company's kiosk code.
type KioskIdentity struct {
	CompanyID    string
	CompanyName  string
	DeviceLabel  string
	RegisteredAt time.Time
}
