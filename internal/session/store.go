package session

import (
	"context"

	"github.com/google/uuid"
)

// Store persists the two session records. Reads return (nil, nil) when no
// record exists, ErrSessionUnreadable when a record exists but is malformed,
// and the underlying error for genuine I/O failures. The store is written
// only by login, logout and onboarding flows; guard evaluation only reads.
type Store interface {
	ReadStaff(ctx context.Context, sessionID string) (*StaffSession, error)
	WriteStaff(ctx context.Context, sessionID string, rec *StaffSession) error
	DeleteStaff(ctx context.Context, sessionID string) error

	ReadKiosk(ctx context.Context, sessionID string) (*KioskSession, error)
	WriteKiosk(ctx context.Context, sessionID string, rec *KioskSession) error
	DeleteKiosk(ctx context.Context, sessionID string) error
}

// NewSessionID mints an opaque session identifier for a cookie.
func NewSessionID() string {
	return uuid.NewString()
}
