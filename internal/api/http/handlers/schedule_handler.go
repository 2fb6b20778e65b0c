package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ademhatay/employee-qr-track/internal/api/dto"
	"github.com/ademhatay/employee-qr-track/internal/repository"
	"github.com/ademhatay/employee-qr-track/internal/service"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// ScheduleHandler exposes shift planning for managers and the published
// schedule for employees.
type ScheduleHandler struct {
	schedule *service.ScheduleService
}

// NewScheduleHandler constructs handler.
func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedule: scheduleService}
}

// List handles GET /schedule.
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.Company == nil {
		return apperrors.NewForbidden("company required")
	}

	filter := repository.ShiftFilter{
		CompanyID: rec.Company.ID,
		Limit:     100,
	}
	if raw := c.Query("employee_id"); raw != "" {
		filter.EmployeeID = &raw
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return apperrors.NewValidationError("invalid from timestamp", nil)
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return apperrors.NewValidationError("invalid to timestamp", nil)
		}
		filter.To = &to
	}

	shifts, err := h.schedule.ListShifts(c.UserContext(), rec.User.Role, rec.User.ID, rec.Company.ID, filter)
	if err != nil {
		return err
	}

	responses := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		responses = append(responses, dto.FromShift(&shifts[i]))
	}
	return c.JSON(fiber.Map{"data": responses})
}

// Create handles POST /schedule.
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.Company == nil {
		return apperrors.NewForbidden("company required")
	}

	var req dto.ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	shift, err := h.schedule.CreateShift(c.UserContext(), rec.User.Role, rec.Company.ID, service.ShiftInput{
		EmployeeID: req.EmployeeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.FromShift(shift)})
}

// Update handles PUT /schedule/:id.
func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.Company == nil {
		return apperrors.NewForbidden("company required")
	}

	var req dto.ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body", nil)
	}

	shift, err := h.schedule.UpdateShift(c.UserContext(), rec.User.Role, rec.Company.ID, c.Params("id"), service.ShiftInput{
		EmployeeID: req.EmployeeID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromShift(shift)})
}

// Publish handles POST /schedule/:id/publish.
func (h *ScheduleHandler) Publish(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.Company == nil {
		return apperrors.NewForbidden("company required")
	}

	shift, err := h.schedule.PublishShift(c.UserContext(), rec.User.Role, rec.Company.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromShift(shift)})
}
