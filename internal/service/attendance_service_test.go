package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ademhatay/employee-qr-track/internal/auth"
	"github.com/ademhatay/employee-qr-track/internal/domain"
	"github.com/ademhatay/employee-qr-track/internal/events"
)

func newAttendanceFixture() (*AttendanceService, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, auth.NewQRTokenManager("test-secret", 60), events.NewInMemoryDispatcher())
	return svc, repo
}

func TestRecordScanAlternates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAttendanceFixture()

	token, _, err := svc.MintDisplayToken("company-1", "front-desk")
	require.NoError(t, err)

	first, err := svc.RecordScan(ctx, "emp-1", "company-1", token)
	require.NoError(t, err)
	require.Equal(t, domain.AttendanceCheckIn, first.Type)
	require.Equal(t, domain.DeviceMobile, first.Device)

	second, err := svc.RecordScan(ctx, "emp-1", "company-1", token)
	require.NoError(t, err)
	require.Equal(t, domain.AttendanceCheckOut, second.Type)

	third, err := svc.RecordScan(ctx, "emp-1", "company-1", token)
	require.NoError(t, err)
	require.Equal(t, domain.AttendanceCheckIn, third.Type)
}

func TestRecordScanAlternationIsPerEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAttendanceFixture()

	token, _, err := svc.MintDisplayToken("company-1", "front-desk")
	require.NoError(t, err)

	_, err = svc.RecordScan(ctx, "emp-1", "company-1", token)
	require.NoError(t, err)

	other, err := svc.RecordScan(ctx, "emp-2", "company-1", token)
	require.NoError(t, err)
	require.Equal(t, domain.AttendanceCheckIn, other.Type)
}

func TestRecordScanResetsAcrossDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAttendanceFixture()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	token, _, err := svc.MintDisplayToken("company-1", "front-desk")
	require.NoError(t, err)

	first, err := svc.RecordScan(ctx, "emp-1", "company-1", token)
	require.NoError(t, err)
	require.Equal(t, domain.AttendanceCheckIn, first.Type)

	// Yesterday's dangling check-in does not leak into the next day.
	svc.now = func() time.Time { return day.Add(24 * time.Hour) }
	next, err := svc.RecordScan(ctx, "emp-1", "company-1", token)
	require.NoError(t, err)
	require.Equal(t, domain.AttendanceCheckIn, next.Type)
}

func TestRecordScanRejectsForeignCompanyToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAttendanceFixture()

	token, _, err := svc.MintDisplayToken("company-2", "front-desk")
	require.NoError(t, err)

	_, err = svc.RecordScan(ctx, "emp-1", "company-1", token)
	require.Error(t, err)
}

func TestRecordScanRejectsGarbageToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAttendanceFixture()

	_, err := svc.RecordScan(ctx, "emp-1", "company-1", "not-a-token")
	require.Error(t, err)
}

func TestRecordKioskCheckUsesKioskDevice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAttendanceFixture()

	att, err := svc.RecordKioskCheck(ctx, "emp-1", "company-1")
	require.NoError(t, err)
	require.Equal(t, domain.DeviceKiosk, att.Device)
}

func TestDailySummary(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newAttendanceFixture()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	instants := []time.Time{base, base.Add(8 * time.Hour), base.Add(time.Hour)}
	idx := 0
	svc.now = func() time.Time {
		ts := instants[idx]
		idx++
		return ts
	}

	_, err := svc.RecordKioskCheck(ctx, "emp-1", "company-1") // 09:00 in
	require.NoError(t, err)
	_, err = svc.RecordKioskCheck(ctx, "emp-1", "company-1") // 17:00 out
	require.NoError(t, err)
	_, err = svc.RecordKioskCheck(ctx, "emp-2", "company-1") // 10:00 in
	require.NoError(t, err)

	summaries, err := svc.DailySummary(ctx, "company-1", base)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	byEmployee := map[string]EmployeeDaySummary{}
	for _, s := range summaries {
		byEmployee[s.EmployeeID] = s
	}

	emp1 := byEmployee["emp-1"]
	require.Equal(t, 2, emp1.Events)
	require.Equal(t, base, *emp1.FirstIn)
	require.Equal(t, base.Add(8*time.Hour), *emp1.LastOut)

	emp2 := byEmployee["emp-2"]
	require.Equal(t, 1, emp2.Events)
	require.Nil(t, emp2.LastOut)
}

func TestDailySummaryPagesThroughBusyDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newAttendanceFixture()

	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	total := summaryPageSize*2 + 7
	for i := 0; i < total; i++ {
		err := repo.Create(ctx, &domain.Attendance{
			EmployeeID: "emp-1",
			CompanyID:  "company-1",
			Type:       domain.AttendanceCheckIn,
			Timestamp:  base.Add(time.Duration(i) * time.Second),
			Device:     domain.DeviceKiosk,
		})
		require.NoError(t, err)
	}

	summaries, err := svc.DailySummary(ctx, "company-1", base)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, total, summaries[0].Events)
}
