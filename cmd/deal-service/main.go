package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dangol-v2/deal-service/internal/app/background"
	"github.com/dangol-v2/deal-service/internal/app/setup"
	"github.com/dangol-v2/deal-service/internal/config"
	"github.com/dangol-v2/deal-service/internal/delivery/http/handler"
	"github.com/dangol-v2/deal-service/internal/infrastructure/migrate"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v\n", err)
	}
	defer deps.Publisher.Close()

	setupLogger(deps.Config.LogConfig)

	// AutoMigrate keeps sqlite in shape; postgres gets versioned migrations.
	if deps.Config.DealDB.Driver == "postgres" {
		if err := migrate.RunMigrations(deps.DB, deps.Config.DealDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v\n", err)
		}
	}

	useCases := setup.InitializeUseCases(deps)

	tasks := background.NewBackgroundTasks(useCases.NotificationUsecase, deps.Subscriber)
	tasks.StartAll(context.Background())

	ping := func() error {
		sqlDB, err := deps.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}

	router := handler.SetupRouter(
		deps.Config.Env,
		ping,
		handler.NewMerchantHandler(useCases.MerchantUsecase),
		handler.NewDealHandler(useCases.DealUsecase),
		handler.NewClaimHandler(useCases.ClaimUsecase),
		handler.NewSubscriptionHandler(useCases.SubscriptionUsecase),
		handler.NewNotificationHandler(useCases.NotificationUsecase),
	)

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "text" {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
