package guard

import "fmt"

// Table maps each area to the ordered predicate chain it must satisfy.
type Table map[Area][]Predicate

// DefaultTable is the route classifier for the application. Areas that
// predicates redirect to carry empty chains, which is what keeps redirects
// from looping.
func DefaultTable() Table {
	return Table{
		AreaEmployeeApp:   {StaffAuthenticated},
		AreaDashboard:     {StaffAuthenticated, HasCompany},
		AreaSchedule:      {StaffAuthenticated, HasCompany},
		AreaOnboarding:    {StaffAuthenticated},
		AreaKioskDisplay:  {KioskLoggedIn},
		AreaStaffLogin:    {},
		AreaStaffRegister: {},
		AreaKioskLogin:    {},
	}
}

// Validate checks the table statically: every redirect target must be a
// known area, and following fail targets from any area must terminate
// rather than cycle back. This runs once at construction so a redirect loop
// can never be hit at evaluation time.
func (t Table) Validate() error {
	for area, chain := range t {
		for _, pred := range chain {
			if _, ok := t[pred.FailTarget]; !ok {
				return fmt.Errorf("guard: area %q redirects to unknown area %q", area, pred.FailTarget)
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[Area]int, len(t))

	var walk func(area Area) error
	walk = func(area Area) error {
		switch state[area] {
		case visiting:
			return fmt.Errorf("guard: redirect loop through area %q", area)
		case done:
			return nil
		}
		state[area] = visiting
		for _, pred := range t[area] {
			if pred.FailTarget == area {
				return fmt.Errorf("guard: area %q redirects to itself", area)
			}
			if err := walk(pred.FailTarget); err != nil {
				return err
			}
		}
		state[area] = done
		return nil
	}

	for area := range t {
		if err := walk(area); err != nil {
			return err
		}
	}
	return nil
}
