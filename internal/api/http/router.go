package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ademhatay/employee-qr-track/internal/api/http/handlers"
	"github.com/ademhatay/employee-qr-track/internal/guard"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Kiosk     *handlers.KioskHandler
	App       *handlers.AppHandler
	Dashboard *handlers.DashboardHandler
	Schedule  *handlers.ScheduleHandler
	Guard     *guard.Middleware
}

// RegisterRoutes wires HTTP routes. Every navigable area is mounted behind
// the guard middleware for that area; the login and register routes stay
// unguarded so a redirect target is always reachable.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Get("/login", cfg.Auth.LoginPage)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/register", cfg.Auth.RegisterPage)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/logout", cfg.Auth.Logout)

	onboarding := app.Group("/onboarding", cfg.Guard.Require(guard.AreaOnboarding))
	onboarding.Get("/", cfg.Auth.OnboardingPage)
	onboarding.Post("/", cfg.Auth.CompleteOnboarding)

	appGroup := app.Group("/app", cfg.Guard.Require(guard.AreaEmployeeApp))
	appGroup.Get("/", cfg.App.Home)
	appGroup.Post("/scan", cfg.App.Scan)
	appGroup.Get("/history", cfg.App.History)
	appGroup.Get("/profile", cfg.App.Profile)

	dashboard := app.Group("/dashboard", cfg.Guard.Require(guard.AreaDashboard))
	dashboard.Get("/", cfg.Dashboard.Overview)
	dashboard.Get("/reports", cfg.Dashboard.Reports)

	schedule := app.Group("/schedule", cfg.Guard.Require(guard.AreaSchedule))
	schedule.Get("/", cfg.Schedule.List)
	schedule.Post("/", cfg.Schedule.Create)
	schedule.Put("/:id", cfg.Schedule.Update)
	schedule.Post("/:id/publish", cfg.Schedule.Publish)

	kioskGroup := app.Group("/kiosk")
	kioskGroup.Get("/login", cfg.Kiosk.LoginPage)
	kioskGroup.Post("/login", cfg.Kiosk.Login)
	kioskGroup.Post("/logout", cfg.Kiosk.Logout)

	kioskDisplay := kioskGroup.Group("", cfg.Guard.Require(guard.AreaKioskDisplay))
	kioskDisplay.Get("/", cfg.Kiosk.Display)
	kioskDisplay.Get("/token", cfg.Kiosk.Token)
}
