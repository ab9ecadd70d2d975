package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ad-platform/internal/api/http"
	"github.com/spec-kit/ad-platform/internal/api/http/handlers"
	"github.com/spec-kit/ad-platform/internal/auth"
	"github.com/spec-kit/ad-platform/internal/config"
	"github.com/spec-kit/ad-platform/internal/events"
	"github.com/spec-kit/ad-platform/internal/observability"
	"github.com/spec-kit/ad-platform/internal/persistence"
	"github.com/spec-kit/ad-platform/internal/repository"
	"github.com/spec-kit/ad-platform/internal/service"
	"github.com/spec-kit/ad-platform/internal/worker"
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
	publisherRepo := repository.NewPublisherRepository(pool)
	advertiserRepo := repository.NewAdvertiserRepository(pool)
	campaignRepo := repository.NewCampaignRepository(pool)
	siteRepo := repository.NewSiteRepository(pool)
	zoneRepo := repository.NewAdZoneRepository(pool)
	ownerStore := repository.NewOwnershipRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:       userRepo,
		PublisherRepo:  publisherRepo,
		AdvertiserRepo: advertiserRepo,
		Dispatcher:     dispatcher,
	})
	accountService := service.NewAccountService(userRepo, publisherRepo, advertiserRepo)
	campaignService := service.NewCampaignService(campaignRepo, advertiserRepo, dispatcher)
	inventoryService := service.NewInventoryService(siteRepo, zoneRepo, publisherRepo, dispatcher)

	auditService := service.NewAuditService(dispatcher, redis.Client, logger, cfg.Audit)
	worker.StartAuditWorker(auditService)

	policyMode, err := auth.ParsePolicyMode(cfg.Auth.PolicyMode)
	if err != nil {
		logger.Fatal("invalid policy mode", zap.Error(err))
	}
	policyTable := auth.DefaultPolicy()
	if cfg.Auth.PolicyFile != "" {
		policyTable, err = auth.LoadPolicyFile(cfg.Auth.PolicyFile)
		if err != nil {
			logger.Fatal("failed to load policy file", zap.Error(err))
		}
	}
	policy := auth.NewEndpointPolicy(policyTable, policyMode)
	gate := auth.NewGate(authService.TokenService(), policy)
	logger.Info("authorization gate ready", zap.String("policy_mode", string(gate.Policy().Mode())))
	resolver := auth.NewOwnershipResolver(ownerStore)
	authMiddleware := auth.NewMiddleware(gate, resolver, dispatcher, metrics, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService)
	accountsHandler := handlers.NewAccountsHandler(accountService)
	campaignsHandler := handlers.NewCampaignsHandler(campaignService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     healthHandler,
		Auth:       authHandler,
		Accounts:   accountsHandler,
		Campaigns:  campaignsHandler,
		Inventory:  inventoryHandler,
		Middleware: authMiddleware,
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
