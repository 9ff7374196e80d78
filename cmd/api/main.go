package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/mindconnect/mind-service/internal/api/http"
	"github.com/mindconnect/mind-service/internal/api/http/handlers"
	"github.com/mindconnect/mind-service/internal/auth"
	"github.com/mindconnect/mind-service/internal/config"
	"github.com/mindconnect/mind-service/internal/domain"
	"github.com/mindconnect/mind-service/internal/events"
	"github.com/mindconnect/mind-service/internal/observability"
	"github.com/mindconnect/mind-service/internal/persistence"
	"github.com/mindconnect/mind-service/internal/repository"
	"github.com/mindconnect/mind-service/internal/service"
	"github.com/mindconnect/mind-service/internal/worker"
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

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	therapistRepo := repository.NewTherapistRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	journalRepo := repository.NewJournalRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	motivationRepo := repository.NewMotivationRepository(pool)

	// Registration cannot fall back without the USER role; refuse to start
	// on a broken catalog rather than fail per-request.
	if pool != nil {
		if _, err := roleRepo.GetByName(ctx, domain.DefaultRoleName); err != nil {
			logger.Fatal("role catalog is missing the default role", zap.Error(err))
		}
	}

	if cfg.App.SeedDemoData && pool != nil {
		if err := persistence.SeedDemoData(ctx, therapistRepo, motivationRepo, cfg.Auth.BcryptCost, logger); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService, logger)

	loginLimiter := service.NewRedisLoginLimiter(redis.Client, cfg.Auth.LoginWindow(), cfg.Auth.LoginMaxAttempts)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:      userRepo,
		TherapistRepo: therapistRepo,
		RoleRepo:      roleRepo,
		LoginLimiter:  loginLimiter,
		Dispatcher:    dispatcher,
		Logger:        logger,
	})
	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	therapistService := service.NewTherapistService(therapistRepo, cfg.Auth.BcryptCost)
	journalService := service.NewJournalService(journalRepo, dispatcher)
	sessionService := service.NewSessionService(sessionRepo, userRepo, therapistRepo, dispatcher)
	motivationService := service.NewMotivationService(motivationRepo)

	authFilter := auth.NewMiddleware(
		authService.TokenCodec(),
		authService.Resolver(),
		cfg.Auth.BypassPathPrefixes,
		logger,
	)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:        handlers.NewAuthHandler(authService),
		Users:       handlers.NewUsersHandler(userService),
		Therapists:  handlers.NewTherapistsHandler(therapistService),
		Journals:    handlers.NewJournalsHandler(journalService),
		Sessions:    handlers.NewSessionsHandler(sessionService),
		Motivations: handlers.NewMotivationsHandler(motivationService),
		AuthFilter:  authFilter,
	})

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
