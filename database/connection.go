package database

import (
	"fmt"
	"time"

	"github.com/coder-yr/taste-link/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes how Open configures GORM
type Options struct {
	// DisableQueryLog keeps queries out of the debug recorder
	DisableQueryLog bool
	// Recorder receives executed queries; defaults to SQLLogger
	Recorder *QueryRecorder
}

// Initialize opens the PostgreSQL catalog database
func Initialize(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	return Open(postgres.Open(cfg.GetDSN()), log, Options{})
}

// Open opens a database through the given dialector with the app's GORM
// settings and connection pool.
func Open(dialector gorm.Dialector, log *zap.Logger, opts Options) (*gorm.DB, error) {
	var gormLogger logger.Interface
	if opts.DisableQueryLog {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		recorder := opts.Recorder
		if recorder == nil {
			recorder = SQLLogger
		}
		gormLogger = &RecordingLogger{
			Interface: logger.Default.LogMode(logger.Warn),
			Recorder:  recorder,
		}
	}

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
		QueryFields: true,
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("Database connection established", zap.String("dialect", dialector.Name()))
	return db, nil
}

// CheckConnection pings the database
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close closes the database connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
