package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ademhatay/employee-qr-track/internal/auth"
	"github.com/ademhatay/employee-qr-track/internal/domain"
	"github.com/ademhatay/employee-qr-track/internal/events"
	"github.com/ademhatay/employee-qr-track/internal/repository"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// AttendanceService records check events and serves attendance queries. The
// alternation invariant (check-out only after a check-in, per employee per
// day) lives here, not in the guard.
type AttendanceService struct {
	attendance repository.AttendanceRepository
	qrTokens   *auth.QRTokenManager
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewAttendanceService builds the service.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, qrTokens *auth.QRTokenManager, dispatcher events.Dispatcher) *AttendanceService {
	return &AttendanceService{
		attendance: attendanceRepo,
		qrTokens:   qrTokens,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// MintDisplayToken issues the QR token a kiosk display currently shows.
func (s *AttendanceService) MintDisplayToken(companyID, deviceLabel string) (string, time.Time, error) {
	return s.qrTokens.MintKioskToken(companyID, deviceLabel)
}

// RecordScan validates a token scanned by the employee app and records the
// next check event for the employee. The token must belong to the
// employee's own company.
func (s *AttendanceService) RecordScan(ctx context.Context, employeeID, companyID, tokenStr string) (*domain.Attendance, error) {
	claims, err := s.qrTokens.ParseKioskToken(tokenStr)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid or expired QR token", nil)
	}
	if claims.CompanyID != companyID {
		return nil, apperrors.NewForbidden("QR token belongs to another company")
	}
	return s.record(ctx, employeeID, companyID, domain.DeviceMobile)
}

// RecordKioskCheck records a check event initiated at the kiosk itself
// (employee identified by badge or PIN on the device).
func (s *AttendanceService) RecordKioskCheck(ctx context.Context, employeeID, companyID string) (*domain.Attendance, error) {
	return s.record(ctx, employeeID, companyID, domain.DeviceKiosk)
}

func (s *AttendanceService) record(ctx context.Context, employeeID, companyID string, device domain.AttendanceDevice) (*domain.Attendance, error) {
	now := s.now()

	next := domain.AttendanceCheckIn
	latest, err := s.attendance.LatestForEmployeeOnDay(ctx, employeeID, now)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}
	if latest != nil && latest.Type == domain.AttendanceCheckIn {
		next = domain.AttendanceCheckOut
	}

	att := &domain.Attendance{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Type:       next,
		Timestamp:  now,
		Device:     device,
	}
	if err := s.attendance.Create(ctx, att); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAttendanceRecorded,
			CompanyID: companyID,
			Timestamp: now,
			Payload: events.AttendanceRecordedPayload{
				EmployeeID: employeeID,
				Type:       att.Type,
				Device:     device,
			},
		})
	}
	return att, nil
}

// History lists an employee's check events, newest first.
func (s *AttendanceService) History(ctx context.Context, employeeID, companyID string, from, to *time.Time, limit, offset int) ([]domain.Attendance, error) {
	return s.attendance.List(ctx, repository.AttendanceFilter{
		CompanyID:  companyID,
		EmployeeID: &employeeID,
		From:       from,
		To:         to,
		Limit:      limit,
		Offset:     offset,
	})
}

// EmployeeDaySummary aggregates one employee's presence for a day.
type EmployeeDaySummary struct {
	EmployeeID string
	FirstIn    *time.Time
	LastOut    *time.Time
	Events     int
}

// summaryPageSize bounds each repository read while DailySummary pages
// through a day's events.
const summaryPageSize = 500

// DailySummary aggregates a company's check events for the day containing
// the given instant, keyed by employee. Events are read in pages so a busy
// day is never truncated.
func (s *AttendanceService) DailySummary(ctx context.Context, companyID string, day time.Time) ([]EmployeeDaySummary, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var records []domain.Attendance
	for offset := 0; ; offset += summaryPageSize {
		page, err := s.attendance.List(ctx, repository.AttendanceFilter{
			CompanyID: companyID,
			From:      &dayStart,
			To:        &dayEnd,
			Limit:     summaryPageSize,
			Offset:    offset,
		})
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		if len(page) < summaryPageSize {
			break
		}
	}

	byEmployee := make(map[string]*EmployeeDaySummary)
	order := []string{}
	for _, rec := range records {
		summary, ok := byEmployee[rec.EmployeeID]
		if !ok {
			summary = &EmployeeDaySummary{EmployeeID: rec.EmployeeID}
			byEmployee[rec.EmployeeID] = summary
			order = append(order, rec.EmployeeID)
		}
		summary.Events++
		ts := rec.Timestamp
		switch rec.Type {
		case domain.AttendanceCheckIn:
			if summary.FirstIn == nil || ts.Before(*summary.FirstIn) {
				summary.FirstIn = &ts
			}
		case domain.AttendanceCheckOut:
			if summary.LastOut == nil || ts.After(*summary.LastOut) {
				summary.LastOut = &ts
			}
		}
	}

	result := make([]EmployeeDaySummary, 0, len(order))
	for _, id := range order {
		result = append(result, *byEmployee[id])
	}
	return result, nil
}
