package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ademhatay/employee-qr-track/internal/domain"
)

// ErrSessionUnreadable marks a persisted payload that exists but cannot be
// parsed into the expected shape. Callers decide whether to treat it as an
// absent session; the store never makes that choice for them.
var ErrSessionUnreadable = errors.New("session payload unreadable")

// Kind distinguishes the two independent session records.
type Kind string

const (
	KindStaff Kind = "staff"
	KindKiosk Kind = "kiosk"
)

// StaffUser is the identity cached in a staff session record.
type StaffUser struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      domain.UserRole `json:"role"`
	CompanyID *string         `json:"company_id,omitempty"`
	AvatarURL *string         `json:"avatar_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// StaffCompany is the company association cached in a staff session record.
// Its presence signals that onboarding has completed.
type StaffCompany struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Plan      domain.CompanyPlan `json:"plan"`
	KioskCode string             `json:"kiosk_code"`
	OwnerID   string             `json:"owner_id"`
	CreatedAt time.Time          `json:"created_at"`
}

// StaffSession is the persisted staff session record.
type StaffSession struct {
	IsAuthenticated bool          `json:"is_authenticated"`
	User            *StaffUser    `json:"user,omitempty"`
	Company         *StaffCompany `json:"company,omitempty"`
}

// KioskIdentity is the device identity cached in a kiosk session record.
type KioskIdentity struct {
	CompanyID    string    `json:"company_id"`
	CompanyName  string    `json:"company_name"`
	DeviceLabel  string    `json:"device_label"`
	RegisteredAt time.Time `json:"registered_at"`
}

// KioskSession is the persisted kiosk session record, independent of any
// staff session on the same device.
type KioskSession struct {
	CurrentKiosk *KioskIdentity `json:"current_kiosk,omitempty"`
}

func decodeStaff(payload []byte) (*StaffSession, error) {
	var rec StaffSession
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnreadable, err)
	}
	// User presence tracks authentication; anything else is a write from a
	// client the service does not recognise.
	if rec.IsAuthenticated && (rec.User == nil || rec.User.ID == "") {
		return nil, fmt.Errorf("%w: authenticated record without user", ErrSessionUnreadable)
	}
	if !rec.IsAuthenticated && (rec.User != nil || rec.Company != nil) {
		return nil, fmt.Errorf("%w: identity on unauthenticated record", ErrSessionUnreadable)
	}
	if rec.Company != nil && rec.Company.ID == "" {
		return nil, fmt.Errorf("%w: company without id", ErrSessionUnreadable)
	}
	return &rec, nil
}

func decodeKiosk(payload []byte) (*KioskSession, error) {
	var rec KioskSession
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnreadable, err)
	}
	if rec.CurrentKiosk != nil && rec.CurrentKiosk.CompanyID == "" {
		return nil, fmt.Errorf("%w: kiosk identity without company", ErrSessionUnreadable)
	}
	return &rec, nil
}
