package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ademhatay/employee-qr-track/internal/api/dto"
	"github.com/ademhatay/employee-qr-track/internal/guard"
	"github.com/ademhatay/employee-qr-track/internal/service"
	"github.com/ademhatay/employee-qr-track/internal/session"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// AppHandler serves the employee-app surface: home, scan, history, profile.
// The guard has already verified staff authentication for every route here;
// company membership is checked per endpoint where it matters.
type AppHandler struct {
	attendance *service.AttendanceService
}

// NewAppHandler constructs handler.
func NewAppHandler(attendanceService *service.AttendanceService) *AppHandler {
	return &AppHandler{attendance: attendanceService}
}

func staffRecord(c *fiber.Ctx) (*session.StaffSession, error) {
	rec, ok := guard.StaffFromContext(c)
	if !ok || rec.User == nil {
		return nil, apperrors.NewUnauthorized("staff login required")
	}
	return rec, nil
}

// Home handles GET /app.
func (h *AppHandler) Home(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":        rec.User,
			"has_company": rec.Company != nil,
		},
	})
}

// Scan handles POST /app/scan: the employee posts a QR token scanned off a
// kiosk display and the next check event is recorded.
func (h *AppHandler) Scan(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.User.CompanyID == nil {
		return apperrors.NewConflict("join a company before checking in", nil)
	}

	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Token == "" {
		return apperrors.NewValidationError("token required", nil)
	}

	att, err := h.attendance.RecordScan(c.UserContext(), rec.User.ID, *rec.User.CompanyID, req.Token)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.FromAttendance(att)})
}

// History handles GET /app/history. Optional from/to query params are
// RFC 3339 timestamps; the default window is the last 30 days.
func (h *AppHandler) History(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	if rec.User.CompanyID == nil {
		return c.JSON(fiber.Map{"data": []dto.AttendanceResponse{}})
	}

	from, to, err := parseRange(c)
	if err != nil {
		return err
	}

	records, err := h.attendance.History(c.UserContext(), rec.User.ID, *rec.User.CompanyID, from, to, 100, 0)
	if err != nil {
		return err
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, dto.FromAttendance(&records[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// Profile handles GET /app/profile.
func (h *AppHandler) Profile(c *fiber.Ctx) error {
	rec, err := staffRecord(c)
	if err != nil {
		return err
	}
	resp := fiber.Map{"user": rec.User}
	if rec.Company != nil {
		resp["company"] = fiber.Map{
			"id":   rec.Company.ID,
			"name": rec.Company.Name,
			"plan": rec.Company.Plan,
		}
	}
	return c.JSON(fiber.Map{"data": resp})
}

func parseRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid from timestamp", nil)
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid to timestamp", nil)
		}
		to = parsed
	}
	return &from, &to, nil
}
