package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ademhatay/employee-qr-track/internal/api/http"
	"github.com/ademhatay/employee-qr-track/internal/api/http/handlers"
	"github.com/ademhatay/employee-qr-track/internal/auth"
	"github.com/ademhatay/employee-qr-track/internal/config"
	"github.com/ademhatay/employee-qr-track/internal/events"
	"github.com/ademhatay/employee-qr-track/internal/guard"
	"github.com/ademhatay/employee-qr-track/internal/observability"
	"github.com/ademhatay/employee-qr-track/internal/persistence"
	"github.com/ademhatay/employee-qr-track/internal/repository"
	"github.com/ademhatay/employee-qr-track/internal/service"
	"github.com/ademhatay/employee-qr-track/internal/session"
	"github.com/ademhatay/employee-qr-track/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	companyRepo := repository.NewCompanyRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	sessionStore := session.NewRedisStore(redis.Client, cfg.Session.StaffTTL(), cfg.Session.KioskTTL())
	dispatcher := events.NewInMemoryDispatcher()
	qrTokens := auth.NewQRTokenManager(cfg.Auth.QRTokenSecret, cfg.Auth.QRTokenTTLSeconds)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		CompanyRepo:  companyRepo,
		EmployeeRepo: employeeRepo,
		Sessions:     sessionStore,
		Dispatcher:   dispatcher,
	})
	attendanceService := service.NewAttendanceService(attendanceRepo, qrTokens, dispatcher)
	scheduleService := service.NewScheduleService(shiftRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	engine, err := guard.NewEngine(guard.DefaultTable())
	if err != nil {
		logger.Fatal("invalid guard route table", zap.Error(err))
	}
	guardMiddleware := guard.NewMiddleware(engine, sessionStore, cfg.Session, logger, metrics)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService, cfg.Session)
	kioskHandler := handlers.NewKioskHandler(authService, attendanceService, cfg.Session)
	appHandler := handlers.NewAppHandler(attendanceService)
	dashboardHandler := handlers.NewDashboardHandler(attendanceService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    healthHandler,
		Auth:      authHandler,
		Kiosk:     kioskHandler,
		App:       appHandler,
		Dashboard: dashboardHandler,
		Schedule:  scheduleHandler,
		Guard:     guardMiddleware,
	})

	worker.StartNotificationWorker(notificationService)

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
