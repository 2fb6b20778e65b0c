package guard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTableValidates(t *testing.T) {
	t.Parallel()
	require.NoError(t, DefaultTable().Validate())
}

func TestDefaultTableRedirectTargetsAreUnguarded(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	for area, chain := range table {
		for _, pred := range chain {
			require.Empty(t, table[pred.FailTarget],
				"area %s redirects to %s, which must carry no predicates", area, pred.FailTarget)
		}
	}
}

func TestValidateRejectsSelfRedirect(t *testing.T) {
	t.Parallel()

	table := Table{
		AreaStaffLogin: {
			{Name: "self", FailTarget: AreaStaffLogin, Holds: func(Snapshot) bool { return false }},
		},
	}
	require.Error(t, table.Validate())
}

func TestValidateRejectsRedirectCycle(t *testing.T) {
	t.Parallel()

	always := func(Snapshot) bool { return false }
	table := Table{
		AreaDashboard:  {{Name: "a", FailTarget: AreaOnboarding, Holds: always}},
		AreaOnboarding: {{Name: "b", FailTarget: AreaDashboard, Holds: always}},
	}
	require.Error(t, table.Validate())
}

func TestValidateRejectsUnknownTarget(t *testing.T) {
	t.Parallel()

	table := Table{
		AreaDashboard: {{Name: "a", FailTarget: Area("missing"), Holds: func(Snapshot) bool { return false }}},
	}
	require.Error(t, table.Validate())
}

func TestNewEngineRejectsCyclicTable(t *testing.T) {
	t.Parallel()

	always := func(Snapshot) bool { return false }
	_, err := NewEngine(Table{
		AreaDashboard:  {{Name: "a", FailTarget: AreaOnboarding, Holds: always}},
		AreaOnboarding: {{Name: "b", FailTarget: AreaDashboard, Holds: always}},
	})
	require.Error(t, err)
}
