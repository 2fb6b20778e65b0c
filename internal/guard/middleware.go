package guard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ademhatay/employee-qr-track/internal/config"
	"github.com/ademhatay/employee-qr-track/internal/observability"
	"github.com/ademhatay/employee-qr-track/internal/session"
)

const (
	staffRecordKey    = "guard_staff_record"
	kioskRecordKey    = "guard_kiosk_record"
	staffSessionIDKey = "guard_staff_session_id"
	kioskSessionIDKey = "guard_kiosk_session_id"
)

// AreaPath returns the entry path for an area. Redirect targets resolve
// through this table.
func AreaPath(area Area) string {
	switch area {
	case AreaEmployeeApp:
		return "/app"
	case AreaDashboard:
		return "/dashboard"
	case AreaSchedule:
		return "/schedule"
	case AreaOnboarding:
		return "/onboarding"
	case AreaKioskDisplay:
		return "/kiosk"
	case AreaStaffLogin:
		return "/auth/login"
	case AreaStaffRegister:
		return "/auth/register"
	case AreaKioskLogin:
		return "/kiosk/login"
	}
	return "/auth/login"
}

// Middleware is the navigation controller: it loads session snapshots, asks
// the engine for a decision and enacts it, either passing the request
// through or redirecting. It never mutates session state.
type Middleware struct {
	engine  *Engine
	store   session.Store
	cfg     config.SessionConfig
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewMiddleware constructs the navigation controller.
func NewMiddleware(engine *Engine, store session.Store, cfg config.SessionConfig, logger *zap.Logger, metrics *observability.Metrics) *Middleware {
	return &Middleware{engine: engine, store: store, cfg: cfg, logger: logger, metrics: metrics}
}

// Require gates a route group behind the named area's predicate chain.
func (m *Middleware) Require(area Area) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := m.snapshot(c)
		if err != nil {
			// Store I/O failure is a genuine error, not "logged out".
			return err
		}

		decision := m.engine.Evaluate(area, snap)
		if decision.Allow {
			return c.Next()
		}

		m.metrics.RecordGuardRedirect(string(area), string(decision.Target))
		m.logger.Debug("guard redirect",
			zap.String("area", string(area)),
			zap.String("target", string(decision.Target)))
		return c.Redirect(AreaPath(decision.Target), fiber.StatusFound)
	}
}

// snapshot loads both session records for this request. An unreadable
// record is deliberately normalized to absent here, at the collaborator
// boundary: the requester is treated as logged out and recovers by logging
// in again.
func (m *Middleware) snapshot(c *fiber.Ctx) (Snapshot, error) {
	var snap Snapshot

	if sid := c.Cookies(m.cfg.StaffCookie); sid != "" {
		rec, err := m.store.ReadStaff(c.UserContext(), sid)
		switch {
		case errors.Is(err, session.ErrSessionUnreadable):
			m.logger.Warn("unreadable staff session treated as absent", zap.Error(err))
		case err != nil:
			return Snapshot{}, err
		case rec != nil:
			snap.Staff = rec
			c.Locals(staffRecordKey, rec)
			c.Locals(staffSessionIDKey, sid)
		}
	}

	if sid := c.Cookies(m.cfg.KioskCookie); sid != "" {
		rec, err := m.store.ReadKiosk(c.UserContext(), sid)
		switch {
		case errors.Is(err, session.ErrSessionUnreadable):
			m.logger.Warn("unreadable kiosk session treated as absent", zap.Error(err))
		case err != nil:
			return Snapshot{}, err
		case rec != nil:
			snap.Kiosk = rec
			c.Locals(kioskRecordKey, rec)
			c.Locals(kioskSessionIDKey, sid)
		}
	}

	return snap, nil
}

// StaffFromContext returns the staff session record the guard loaded for
// this request, if any.
func StaffFromContext(c *fiber.Ctx) (*session.StaffSession, bool) {
	rec, ok := c.Locals(staffRecordKey).(*session.StaffSession)
	return rec, ok && rec != nil
}

// KioskFromContext returns the kiosk session record the guard loaded for
// this request, if any.
func KioskFromContext(c *fiber.Ctx) (*session.KioskSession, bool) {
	rec, ok := c.Locals(kioskRecordKey).(*session.KioskSession)
	return rec, ok && rec != nil
}

// StaffSessionID returns the staff session cookie value the guard resolved.
func StaffSessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(staffSessionIDKey).(string)
	return sid
}

// KioskSessionID returns the kiosk session cookie value the guard resolved.
func KioskSessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(kioskSessionIDKey).(string)
	return sid
}
