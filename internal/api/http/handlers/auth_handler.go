package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ademhatay/employee-qr-track/internal/api/dto"
	"github.com/ademhatay/employee-qr-track/internal/config"
	"github.com/ademhatay/employee-qr-track/internal/domain"
	"github.com/ademhatay/employee-qr-track/internal/guard"
	"github.com/ademhatay/employee-qr-track/internal/service"
	apperrors "github.com/ademhatay/employee-qr-track/pkg/util"
)

// AuthHandler exposes staff registration, login and onboarding endpoints.
type AuthHandler struct {
	auth *service.AuthService
	cfg  config.SessionConfig
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: authService, cfg: cfg}
}

// LoginPage handles GET /auth/login. Always reachable.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "staff-login"})
}

// RegisterPage handles GET /auth/register. Always reachable.
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"area": "staff-register"})
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.StaffRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}

	user, sessionID, err := h.auth.RegisterStaff(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	setSessionCookie(c, h.cfg.StaffCookie, sessionID, h.cfg.StaffTTL())
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"user": userResponse(user)},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, sessionID, err := h.auth.LoginStaff(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setSessionCookie(c, h.cfg.StaffCookie, sessionID, h.cfg.StaffTTL())
	return c.JSON(fiber.Map{
		"data": fiber.Map{"user": userResponse(user)},
	})
}

// Logout handles POST /auth/logout. It destroys the session record and
// clears the cookie; logging out is allowed from any state.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies(h.cfg.StaffCookie); sid != "" {
		if err := h.auth.LogoutStaff(c.UserContext(), sid); err != nil {
			return err
		}
	}
	clearSessionCookie(c, h.cfg.StaffCookie)
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}

// OnboardingPage handles GET /onboarding. The guard has already verified
// the requester is authenticated.
func (h *AuthHandler) OnboardingPage(c *fiber.Ctx) error {
	rec, _ := guard.StaffFromContext(c)
	completed := rec != nil && rec.Company != nil
	return c.JSON(fiber.Map{
		"area":      "onboarding",
		"completed": completed,
	})
}

// CompleteOnboarding handles POST /onboarding.
func (h *AuthHandler) CompleteOnboarding(c *fiber.Ctx) error {
	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	company, err := h.auth.CompleteOnboarding(c.UserContext(), guard.StaffSessionID(c), req.CompanyName)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"company": companyResponse(company)},
	})
}

func userResponse(user *domain.User) fiber.Map {
	resp := fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
	if user.CompanyID != nil {
		resp["company_id"] = *user.CompanyID
	}
	if user.AvatarURL != nil {
		resp["avatar_url"] = *user.AvatarURL
	}
	return resp
}

func companyResponse(company *domain.Company) fiber.Map {
	return fiber.Map{
		"id":         company.ID,
		"name":       company.Name,
		"plan":       company.Plan,
		"kiosk_code": company.KioskCode,
		"owner_id":   company.OwnerID,
	}
}
