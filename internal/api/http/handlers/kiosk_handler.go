package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ademhatay/employee-qr-track/internal/api/dto"
	"github.com/ademhatay/employee-qr-track/internal/config"
	"github.com/ademhatay/employee-qr-track/internal/guard"
	"github.com/ademhatay/employee-qr-track/internal/service"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// KioskHandler exposes the unattended-device surface: kiosk login and the
// rotating QR display.
type KioskHandler struct {
	auth       *service.AuthService
	attendance *service.AttendanceService
	cfg        config.SessionConfig
}

// NewKioskHandler constructs handler.
func NewKioskHandler(authService *service.AuthService, attendanceService *service.AttendanceService, cfg config.SessionConfig) *KioskHandler {
	return &KioskHandler{auth: authService, attendance: attendanceService, cfg: cfg}
}

// LoginPage handles GET /kiosk/login. Always reachable.
func (h *KioskHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "kiosk-login"})
}

// Login handles POST /kiosk/login.
func (h *KioskHandler) Login(c *fiber.Ctx) error {
	var req dto.KioskLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.KioskCode == "" {
		return apperrors.NewValidationError("kiosk_code required", nil)
	}

	sessionID, identity, err := h.auth.LoginKiosk(c.UserContext(), req.KioskCode, req.DeviceLabel)
	if err != nil {
		return err
	}

	setSessionCookie(c, h.cfg.KioskCookie, sessionID, h.cfg.KioskTTL())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"company_id":   identity.CompanyID,
			"company_name": identity.CompanyName,
			"device_label": identity.DeviceLabel,
		},
	})
}

// Logout handles POST /kiosk/logout.
func (h *KioskHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies(h.cfg.KioskCookie); sid != "" {
		if err := h.auth.LogoutKiosk(c.UserContext(), sid); err != nil {
			return err
		}
	}
	clearSessionCookie(c, h.cfg.KioskCookie)
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// Display handles GET /kiosk: the guarded kiosk display, returning the
// QR token the device should currently show.
func (h *KioskHandler) Display(c *fiber.Ctx) error {
	rec, ok := guard.KioskFromContext(c)
	if !ok || rec.CurrentKiosk == nil {
		return apperrors.NewUnauthorized("kiosk login required")
	}

	token, expiresAt, err := h.attendance.MintDisplayToken(rec.CurrentKiosk.CompanyID, rec.CurrentKiosk.DeviceLabel)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"company_name": rec.CurrentKiosk.CompanyName,
			"device_label": rec.CurrentKiosk.DeviceLabel,
			"qr":           dto.QRTokenResponse{Token: token, ExpiresAt: expiresAt},
		},
	})
}

// Token handles GET /kiosk/token: the display polls this to rotate its QR
// code as tokens expire.
func (h *KioskHandler) Token(c *fiber.Ctx) error {
	rec, ok := guard.KioskFromContext(c)
	if !ok || rec.CurrentKiosk == nil {
		return apperrors.NewUnauthorized("kiosk login required")
	}

	token, expiresAt, err := h.attendance.MintDisplayToken(rec.CurrentKiosk.CompanyID, rec.CurrentKiosk.DeviceLabel)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.QRTokenResponse{Token: token, ExpiresAt: expiresAt}})
}
