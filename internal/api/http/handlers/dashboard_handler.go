package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ademhatay/employee-qr-track/internal/service"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// DashboardHandler serves the company dashboard: today's overview and
// per-day reports. The guard guarantees an authenticated staff session with
// a company before any of these run.
type DashboardHandler struct {
	attendance *service.AttendanceService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(attendanceService *service.AttendanceService) *DashboardHandler {
	return &DashboardHandler{attendance: attendanceService}
}

// Overview handles GET /dashboard.
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.Company == nil {
		return apperrors.NewForbidden("company required")
	}

	summaries, err := h.attendance.DailySummary(c.UserContext(), rec.Company.ID, time.Now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"company": fiber.Map{"id": rec.Company.ID, "name": rec.Company.Name},
			"today":   summaryResponses(summaries),
		},
	})
}

// Reports handles GET /dashboard/reports?day=2006-01-02.
func (h *DashboardHandler) Reports(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.Company == nil {
		return apperrors.NewForbidden("company required")
	}

	day := time.Now()
	if raw := c.Query("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return apperrors.NewValidationError("invalid day, expected YYYY-MM-DD", nil)
		}
		day = parsed
	}

	summaries, err := h.attendance.DailySummary(c.UserContext(), rec.Company.ID, day)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"day":       day.Format("2006-01-02"),
			"employees": summaryResponses(summaries),
		},
	})
}

func summaryResponses(summaries []service.EmployeeDaySummary) []fiber.Map {
	result := make([]fiber.Map, 0, len(summaries))
	for _, s := range summaries {
		entry := fiber.Map{
			"employee_id": s.EmployeeID,
			"events":      s.Events,
		}
		if s.FirstIn != nil {
			entry["first_in"] = s.FirstIn
		}
		if s.LastOut != nil {
			entry["last_out"] = s.LastOut
		}
		result = append(result, entry)
	}
	return result
}
