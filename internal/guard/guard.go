package guard

import (
	"github.com/ademhatay/employee-qr-track/internal/session"
)

// Area names a navigable surface of the application.
type Area string

const (
	AreaEmployeeApp   Area = "employee-app"
	AreaDashboard     Area = "dashboard"
	AreaSchedule      Area = "schedule"
	AreaOnboarding    Area = "onboarding"
	AreaKioskDisplay  Area = "kiosk-display"
	AreaStaffLogin    Area = "staff-login"
	AreaStaffRegister Area = "staff-register"
	AreaKioskLogin    Area = "kiosk-login"
)

// Snapshot is the session state a single evaluation sees. Either record may
// be nil, meaning that session is absent. Callers that hit an unreadable
// persisted record pass nil here; the engine itself never touches storage.
type Snapshot struct {
	Staff *session.StaffSession
	Kiosk *session.KioskSession
}

// Decision is the outcome of evaluating an area's predicate chain.
type Decision struct {
	Allow  bool
	Target Area
}

// Proceed allows entry to the requested area.
func Proceed() Decision {
	return Decision{Allow: true}
}

// RedirectTo denies entry and names where to send the requester instead.
func RedirectTo(target Area) Decision {
	return Decision{Target: target}
}

// Predicate is one link of a guard chain. Holds reads only the snapshot;
// FailTarget is where a failing requester is redirected.
type Predicate struct {
	Name       string
	Holds      func(Snapshot) bool
	FailTarget Area
}

// StaffAuthenticated requires a staff session with a completed login.
var StaffAuthenticated = Predicate{
	Name:       "staff_authenticated",
	FailTarget: AreaStaffLogin,
	Holds: func(s Snapshot) bool {
		return s.Staff != nil && s.Staff.IsAuthenticated
	},
}

// HasCompany requires the staff session to carry a company association. It
// only makes sense after StaffAuthenticated has already held.
var HasCompany = Predicate{
	Name:       "has_company",
	FailTarget: AreaOnboarding,
	Holds: func(s Snapshot) bool {
		return s.Staff != nil && s.Staff.Company != nil
	},
}

// KioskLoggedIn requires a kiosk session with a device identity.
var KioskLoggedIn = Predicate{
	Name:       "kiosk_logged_in",
	FailTarget: AreaKioskLogin,
	Holds: func(s Snapshot) bool {
		return s.Kiosk != nil && s.Kiosk.CurrentKiosk != nil
	},
}

// Engine evaluates predicate chains against session snapshots. It is pure:
// no storage access, no mutation, no errors.
type Engine struct {
	table Table
}

// NewEngine builds an engine over a classifier table. The table is checked
// for redirect cycles up front; a cyclic table is a programming defect.
func NewEngine(table Table) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Engine{table: table}, nil
}

// Evaluate runs the requested area's chain against the snapshot. Predicates
// short-circuit: the first failure names the redirect and later predicates
// are not consulted. Areas missing from the table fail closed to the staff
// login area.
func (e *Engine) Evaluate(area Area, snap Snapshot) Decision {
	chain, ok := e.table[area]
	if !ok {
		return RedirectTo(AreaStaffLogin)
	}
	for _, pred := range chain {
		if !pred.Holds(snap) {
			return RedirectTo(pred.FailTarget)
		}
	}
	return Proceed()
}
