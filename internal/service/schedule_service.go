package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ademhatay/employee-qr-track/internal/domain"
	"github.com/ademhatay/employee-qr-track/internal/events"
	"github.com/ademhatay/employee-qr-track/internal/repository"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// ScheduleService manages shift planning. Only owners, admins and managers
// may edit; employees only ever see published shifts.
type ScheduleService struct {
	shifts     repository.ShiftRepository
	dispatcher events.Dispatcher
}

// NewScheduleService builds the service.
func NewScheduleService(shiftRepo repository.ShiftRepository, dispatcher events.Dispatcher) *ScheduleService {
	return &ScheduleService{shifts: shiftRepo, dispatcher: dispatcher}
}

// ShiftInput carries the editable shift fields.
type ShiftInput struct {
	EmployeeID string
	StartTime  time.Time
	EndTime    time.Time
}

func validateShiftWindow(in ShiftInput) error {
	if in.EmployeeID == "" {
		return apperrors.NewValidationError("employee_id required", nil)
	}
	if !in.EndTime.After(in.StartTime) {
		return apperrors.NewValidationError("end_time must be after start_time", nil)
	}
	return nil
}

func requireScheduler(role domain.UserRole) error {
	if !role.CanManageSchedule() {
		return apperrors.NewForbidden("scheduling role required")
	}
	return nil
}

// CreateShift creates an unpublished shift.
func (s *ScheduleService) CreateShift(ctx context.Context, actorRole domain.UserRole, companyID string, in ShiftInput) (*domain.Shift, error) {
	if err := requireScheduler(actorRole); err != nil {
		return nil, err
	}
	if err := validateShiftWindow(in); err != nil {
		return nil, err
	}

	shift := &domain.Shift{
		EmployeeID: in.EmployeeID,
		CompanyID:  companyID,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, apperrors.MapError(err)
	}
	return shift, nil
}

// UpdateShift edits an existing shift's window or assignee.
func (s *ScheduleService) UpdateShift(ctx context.Context, actorRole domain.UserRole, companyID, shiftID string, in ShiftInput) (*domain.Shift, error) {
	if err := requireScheduler(actorRole); err != nil {
		return nil, err
	}
	if err := validateShiftWindow(in); err != nil {
		return nil, err
	}

	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if shift.CompanyID != companyID {
		return nil, apperrors.NewNotFound("shift", map[string]any{"shift_id": shiftID})
	}

	shift.EmployeeID = in.EmployeeID
	shift.StartTime = in.StartTime
	shift.EndTime = in.EndTime
	if err := s.shifts.Update(ctx, shift); err != nil {
		return nil, apperrors.MapError(err)
	}
	return shift, nil
}

// PublishShift makes a shift visible to its employee.
func (s *ScheduleService) PublishShift(ctx context.Context, actorRole domain.UserRole, companyID, shiftID string) (*domain.Shift, error) {
	if err := requireScheduler(actorRole); err != nil {
		return nil, err
	}

	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if shift.CompanyID != companyID {
		return nil, apperrors.NewNotFound("shift", map[string]any{"shift_id": shiftID})
	}
	if shift.IsPublished {
		return shift, nil
	}

	shift.IsPublished = true
	if err := s.shifts.Update(ctx, shift); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventShiftPublished,
			CompanyID: companyID,
			Timestamp: time.Now(),
			Payload: events.ShiftPublishedPayload{
				ShiftID:    shift.ID,
				EmployeeID: shift.EmployeeID,
				StartTime:  shift.StartTime,
				EndTime:    shift.EndTime,
			},
		})
	}
	return shift, nil
}

// ListShifts returns shifts for the company. Non-scheduling roles are
// restricted to their own published shifts regardless of the filter.
func (s *ScheduleService) ListShifts(ctx context.Context, actorRole domain.UserRole, actorID, companyID string, filter repository.ShiftFilter) ([]domain.Shift, error) {
	filter.CompanyID = companyID
	if !actorRole.CanManageSchedule() {
		filter.EmployeeID = &actorID
		filter.PublishedOnly = true
	}
	return s.shifts.List(ctx, filter)
}
