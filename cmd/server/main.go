package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/kernel808/banknet/internal/adapter/http/controller"
	"github.com/kernel808/banknet/internal/adapter/http/router"
	"github.com/kernel808/banknet/internal/adapter/repository/memory"
	"github.com/kernel808/banknet/internal/adapter/repository/postgres"
	"github.com/kernel808/banknet/internal/adapter/repository/repo_interfaces"
	"github.com/kernel808/banknet/internal/config"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/services"
	"github.com/kernel808/banknet/internal/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", err)
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	transferRepo, userRepo, closeDB, err := buildStorage(ctx, cfg.DB)
	if err != nil {
		logger.Fatal("initialise storage", err)
	}
	defer closeDB()

	riskScorer := services.NewRiskService()
	transferService := services.NewTransferService(transferRepo, riskScorer)
	authService := services.NewAuthService(
		userRepo,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenExpiry,
		cfg.Auth.DefaultAdminUser,
		cfg.Auth.DefaultAdminPass,
	)
	rateService := services.NewRateService(memory.NewRateRepository())
	bankService := services.NewParticipantBankService(memory.NewParticipantBankRepository())
	documentService := services.NewDocumentService()

	if err := authService.EnsureDefaultAdmin(ctx); err != nil {
		logger.Fatal("seed default admin", err)
	}

	authController := controller.NewAuthController(authService)
	handler := router.New(
		authService,
		strings.Split(cfg.HTTP.CORSOrigins, ","),
		[]router.PublicRouteRegistrar{authController},
		[]router.RouteRegistrar{
			authController,
			controller.NewTransferController(transferService),
			controller.NewRateController(rateService),
			controller.NewParticipantBankController(bankService),
			controller.NewAnalyticsController(transferService, riskScorer),
			controller.NewDocumentController(transferService, documentService),
		},
	)

	if cfg.Workers.AutoProgression {
		worker := workers.NewProgressionWorker(transferService, cfg.Workers.SweepInterval)
		if err := worker.Start(ctx); err != nil {
			logger.Fatal("start auto-progression worker", err)
		}
		defer worker.Stop()
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", logger.Fields{"port": cfg.HTTP.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", err, nil)
	}
}

// buildStorage wires the persistence backend selected by configuration.
// The in-memory driver keeps the simulation runnable without a database.
func buildStorage(ctx context.Context, cfg config.DB) (repo_interfaces.TransferRepository, repo_interfaces.UserRepository, func(), error) {
	switch cfg.Driver {
	case "memory":
		logger.Info("using in-memory storage", nil)
		return memory.NewTransferRepository(), memory.NewUserRepository(), func() {}, nil
	case "postgres":
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}

		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}

		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			_ = db.Close()
			return nil, nil, nil, err
		}

		logger.Info("connected to postgres", nil)
		return postgres.NewTransferRepository(db), postgres.NewUserRepository(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, nil, errors.New("unknown storage driver: " + cfg.Driver)
	}
}
