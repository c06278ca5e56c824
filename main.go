package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder-yr/taste-link/config"
	"github.com/coder-yr/taste-link/database"
	"github.com/coder-yr/taste-link/logging"
	"github.com/coder-yr/taste-link/marketplace"
	"github.com/coder-yr/taste-link/notify"
	"github.com/coder-yr/taste-link/web"
	"github.com/coder-yr/taste-link/web/handlers"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with sample data")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Catalog
	var (
		catalog database.Catalog
		db      *gorm.DB
		health  func() error
	)
	switch cfg.App.DataSource {
	case config.DataSourcePostgres:
		db, err = database.Initialize(&cfg.Database, logger)
		if err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer database.Close(db)

		if err := database.CheckConnection(db); err != nil {
			logger.Fatal("Database connection check failed", zap.Error(err))
		}

		if *migrate {
			if err := database.AutoMigrate(db, logger); err != nil {
				logger.Fatal("Failed to migrate database", zap.Error(err))
			}
		}
		if *seed {
			if err := database.SeedData(db, logger); err != nil {
				logger.Fatal("Failed to seed database", zap.Error(err))
			}
		}

		catalog = database.NewGormCatalog(db)
		health = func() error { return database.CheckConnection(db) }
	default:
		if *migrate || *seed {
			logger.Warn("-migrate and -seed need DATA_SOURCE=postgres; ignoring")
		}
		catalog = database.NewMemoryCatalog()
	}

	// Join submitter
	var submitter marketplace.Submitter
	switch cfg.Join.Submitter {
	case config.SubmitterDatabase:
		submitter = catalog.(*database.GormCatalog)
	case config.SubmitterRedis:
		client, err := database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer client.Close()
		submitter = database.NewRedisSubmitter(client, cfg.Redis.JoinStream)
	default:
		submitter = marketplace.SimulatedSubmitter{Delay: cfg.Join.SubmitDelay}
	}
	logger.Info("Catalog ready",
		zap.String("data_source", cfg.App.DataSource),
		zap.String("join_submitter", cfg.Join.Submitter))

	modals := marketplace.NewModalRegistry(submitter, cfg.Join.SuccessCloseDelay, cfg.Join.IdleTTL)
	hub := notify.NewHub(logger)

	// Create and start web server
	server := web.NewServer(handlers.Deps{
		Catalog: catalog,
		Modals:  modals,
		Hub:     hub,
		Logger:  logger,
		Join:    cfg.Join,
		Health:  health,
	}, cfg.App.IsProduction())

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go sweepVisitorState(sweepCtx, modals, hub, cfg.Join.IdleTTL, logger)

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
}

// sweepVisitorState drops the join modals and toast queues of visitors
// that went away
func sweepVisitorState(ctx context.Context, modals *marketplace.ModalRegistry, hub *notify.Hub, idleTTL time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := modals.Sweep(); n > 0 {
				logger.Debug("Swept idle join modals", zap.Int("removed", n), zap.Int("remaining", modals.Len()))
			}
			if n := hub.Sweep(idleTTL); n > 0 {
				logger.Debug("Swept unread toasts", zap.Int("removed", n), zap.Int("remaining", hub.PendingCount()))
			}
		}
	}
}

func showHelp() {
	fmt.Print(`
TrustedMarket Server

Usage:
  go run main.go [options]

Options:
  -migrate  Run GORM AutoMigrate on startup (DATA_SOURCE=postgres)
  -seed     Seed database with the marketplace records (DATA_SOURCE=postgres)
  -help     Show this help message

Examples:
  # Serve the in-memory catalog
  go run main.go

  # Serve from PostgreSQL, creating and seeding tables first
  DATA_SOURCE=postgres go run main.go -migrate -seed

  # Persist join requests in PostgreSQL
  DATA_SOURCE=postgres JOIN_SUBMITTER=database go run main.go

  # Publish join requests to a Redis stream
  JOIN_SUBMITTER=redis REDIS_ADDR=localhost:6379 go run main.go

For full migration control, use:
  go run cmd/migrate/main.go

For full seed control, use:
  go run cmd/seed/main.go
` + "\n")
}
