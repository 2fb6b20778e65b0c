package guard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ademhatay/employee-qr-track/internal/domain"
	"github.com/ademhatay/employee-qr-track/internal/session"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultTable())
	require.NoError(t, err)
	return engine
}

func authenticatedStaff() *session.StaffSession {
	return &session.StaffSession{
		IsAuthenticated: true,
		User: &session.StaffUser{
			ID:        "user-1",
			Name:      "Ada",
			Email:     "ada@example.com",
			Role:      domain.UserRoleEmployee,
			CreatedAt: time.Now(),
		},
	}
}

func staffWithCompany() *session.StaffSession {
	rec := authenticatedStaff()
	rec.Company = &session.StaffCompany{
		ID:      "company-1",
		Name:    "Acme",
		Plan:    domain.CompanyPlanFree,
		OwnerID: "user-1",
	}
	return rec
}

func loggedInKiosk() *session.KioskSession {
	return &session.KioskSession{
		CurrentKiosk: &session.KioskIdentity{
			CompanyID:    "company-1",
			CompanyName:  "Acme",
			DeviceLabel:  "front-desk",
			RegisteredAt: time.Now(),
		},
	}
}

func TestEvaluateUnauthenticated(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)

	snapshots := map[string]Snapshot{
		"absent staff session": {},
		"unauthenticated record": {
			Staff: &session.StaffSession{IsAuthenticated: false},
		},
	}

	for name, snap := range snapshots {
		t.Run(name, func(t *testing.T) {
			for _, area := range []Area{AreaEmployeeApp, AreaDashboard, AreaSchedule, AreaOnboarding} {
				decision := engine.Evaluate(area, snap)
				require.False(t, decision.Allow, "area %s", area)
				require.Equal(t, AreaStaffLogin, decision.Target, "area %s", area)
			}
		})
	}
}

func TestEvaluateAuthenticatedNoCompany(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	snap := Snapshot{Staff: authenticatedStaff()}

	t.Run("company-gated areas redirect to onboarding", func(t *testing.T) {
		for _, area := range []Area{AreaDashboard, AreaSchedule} {
			decision := engine.Evaluate(area, snap)
			require.False(t, decision.Allow, "area %s", area)
			require.Equal(t, AreaOnboarding, decision.Target, "area %s", area)
		}
	})

	t.Run("employee app and onboarding proceed", func(t *testing.T) {
		for _, area := range []Area{AreaEmployeeApp, AreaOnboarding} {
			require.True(t, engine.Evaluate(area, snap).Allow, "area %s", area)
		}
	})
}

func TestEvaluateAuthenticatedWithCompany(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)
	snap := Snapshot{Staff: staffWithCompany()}

	for _, area := range []Area{AreaEmployeeApp, AreaDashboard, AreaSchedule, AreaOnboarding} {
		require.True(t, engine.Evaluate(area, snap).Allow, "area %s", area)
	}
}

func TestEvaluateKioskDisplay(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)

	t.Run("absent kiosk session redirects to kiosk login", func(t *testing.T) {
		decision := engine.Evaluate(AreaKioskDisplay, Snapshot{})
		require.False(t, decision.Allow)
		require.Equal(t, AreaKioskLogin, decision.Target)
	})

	t.Run("record without identity redirects to kiosk login", func(t *testing.T) {
		decision := engine.Evaluate(AreaKioskDisplay, Snapshot{Kiosk: &session.KioskSession{}})
		require.False(t, decision.Allow)
		require.Equal(t, AreaKioskLogin, decision.Target)
	})

	t.Run("logged-in kiosk proceeds", func(t *testing.T) {
		require.True(t, engine.Evaluate(AreaKioskDisplay, Snapshot{Kiosk: loggedInKiosk()}).Allow)
	})
}

func TestStaffAndKioskGuardsAreIndependent(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)

	t.Run("kiosk session never changes staff outcomes", func(t *testing.T) {
		for _, kiosk := range []*session.KioskSession{nil, {}, loggedInKiosk()} {
			decision := engine.Evaluate(AreaDashboard, Snapshot{Kiosk: kiosk})
			require.Equal(t, AreaStaffLogin, decision.Target)

			decision = engine.Evaluate(AreaDashboard, Snapshot{Staff: staffWithCompany(), Kiosk: kiosk})
			require.True(t, decision.Allow)
		}
	})

	t.Run("staff session never changes kiosk outcomes", func(t *testing.T) {
		for _, staff := range []*session.StaffSession{nil, authenticatedStaff(), staffWithCompany()} {
			decision := engine.Evaluate(AreaKioskDisplay, Snapshot{Staff: staff})
			require.Equal(t, AreaKioskLogin, decision.Target)

			decision = engine.Evaluate(AreaKioskDisplay, Snapshot{Staff: staff, Kiosk: loggedInKiosk()})
			require.True(t, decision.Allow)
		}
	})

	t.Run("both sessions held at once proceed everywhere", func(t *testing.T) {
		snap := Snapshot{Staff: staffWithCompany(), Kiosk: loggedInKiosk()}
		require.True(t, engine.Evaluate(AreaEmployeeApp, snap).Allow)
		require.True(t, engine.Evaluate(AreaKioskDisplay, snap).Allow)
	})
}

func TestLoginAreasAlwaysReachable(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)

	for _, area := range []Area{AreaStaffLogin, AreaStaffRegister, AreaKioskLogin} {
		require.True(t, engine.Evaluate(area, Snapshot{}).Allow, "area %s", area)
	}
}

func TestEvaluateUnknownAreaFailsClosed(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)

	decision := engine.Evaluate(Area("billing"), Snapshot{Staff: staffWithCompany()})
	require.False(t, decision.Allow)
	require.Equal(t, AreaStaffLogin, decision.Target)
}

func TestPredicatesShortCircuit(t *testing.T) {
	t.Parallel()
	engine := newEngine(t)

	// An unauthenticated requester hitting a company-gated area must land on
	// login, not onboarding: HasCompany is never consulted once
	// StaffAuthenticated has failed.
	decision := engine.Evaluate(AreaDashboard, Snapshot{})
	require.Equal(t, AreaStaffLogin, decision.Target)
}
