package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/coder-yr/taste-link/config"
	"github.com/coder-yr/taste-link/database"
	"github.com/coder-yr/taste-link/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Define flags
	force := flag.Bool("force", false, "Force re-seed even if data exists")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌱 Starting Database Seeding Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()
	fmt.Printf("📊 Database: %s@%s:%s/%s\n\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Check connection
	if err := database.CheckConnection(db); err != nil {
		logger.Fatal("Database connection check failed", zap.Error(err))
	}

	// Run seed
	if *force {
		fmt.Println("⚠️  Force flag enabled. Clearing existing data...")
		// Clear data in reverse dependency order
		for _, table := range database.SeededTables() {
			if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				logger.Warn("Could not clear table", zap.String("table", table), zap.Error(err))
			} else {
				logger.Info("Cleared table", zap.String("table", table))
			}
		}
		fmt.Println()
	}

	// Seed data
	if err := database.SeedData(db, logger); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	// Show statistics
	fmt.Println("\n📊 Database Statistics:")
	showTableStats(db)

	fmt.Println("\n✨ Seeding completed successfully!")
	fmt.Println("\n📝 Next Steps:")
	fmt.Println("1. Run the application:")
	fmt.Println("   DATA_SOURCE=postgres go run main.go")
}

func showHelp() {
	fmt.Println("Database Seeding Tool")
	fmt.Println("====================")
	fmt.Println("\nUsage:")
	fmt.Println("  go run cmd/seed/main.go [flags]")
	fmt.Println("\nFlags:")
	fmt.Println("  -force    Force re-seed by clearing existing data")
	fmt.Println("  -help     Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Seed empty database")
	fmt.Println("  go run cmd/seed/main.go")
	fmt.Println("\n  # Force re-seed (clear and re-insert data)")
	fmt.Println("  go run cmd/seed/main.go -force")
}

func showTableStats(db *gorm.DB) {
	for _, table := range database.SeededTables() {
		var count int64
		db.Table(table).Count(&count)
		fmt.Printf("  %-25s: %d rows\n", table, count)
	}
}
