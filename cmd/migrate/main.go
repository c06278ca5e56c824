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
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all marketplace tables before migration")
		help = flag.Bool("help", false, "Show help")
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

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("❌ Failed to initialize database", zap.Error(err))
	}
	defer database.Close(db)

	// Check connection
	if err := database.CheckConnection(db); err != nil {
		logger.Warn("⚠️  Connection check failed", zap.Error(err))
	}

	// Drop tables if requested
	if *drop {
		fmt.Println("⚠️  Dropping all marketplace tables...")
		dropAllTables(db, logger)
		fmt.Println("✅ All tables dropped")
	}

	// Run AutoMigrate
	fmt.Println("🔄 Running GORM AutoMigrate...")
	if err := database.AutoMigrate(db, logger); err != nil {
		logger.Fatal("❌ Failed to run migration", zap.Error(err))
	}

	fmt.Println("✅ Migration completed successfully!")
	showTableStats(db)
}

func dropAllTables(db *gorm.DB, logger *zap.Logger) {
	for _, table := range database.SeededTables() {
		fmt.Printf("  Dropping table: %s\n", table)
		if err := db.Migrator().DropTable(table); err != nil {
			logger.Warn("Failed to drop table", zap.String("table", table), zap.Error(err))
		}
	}
}

func showTableStats(db *gorm.DB) {
	for _, table := range database.SeededTables() {
		exists := db.Migrator().HasTable(table)
		fmt.Printf("  %-20s: %v\n", table, exists)
	}
}

func showHelp() {
	fmt.Print(`
Database Migration Tool for TrustedMarket

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop     Drop all tables before migration (WARNING: Data loss!)
  -help     Show this help message

Examples:
  # Run migration (create/update tables)
  go run cmd/migrate/main.go

  # Drop all tables and recreate
  go run cmd/migrate/main.go -drop

Environment:
  Requires .env file or environment variables for database configuration:
  - DB_HOST
  - DB_PORT
  - DB_USER
  - DB_PASSWORD
  - DB_NAME
` + "\n")
}
