package database

import (
	"fmt"

	"github.com/coder-yr/taste-link/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates every marketplace table
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Starting GORM AutoMigrate...")

	for _, model := range models.AllModels() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	if db.Dialector.Name() == "postgres" {
		createForeignKeys(db, log)
		createIndexes(db, log)
	}

	log.Info("GORM AutoMigrate completed successfully")
	return nil
}

// createForeignKeys adds constraints GORM cannot infer because the models
// carry no association fields
func createForeignKeys(db *gorm.DB, log *zap.Logger) {
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
	}{
		{"join_requests", "fk_join_requests_campaign", "campaign_id", "group_buys", "id"},
	}

	for _, fk := range foreignKeys {
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s) ON DELETE CASCADE",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)
		if err := db.Exec(query).Error; err != nil {
			log.Warn("Failed to create foreign key", zap.String("name", fk.name), zap.Error(err))
			continue
		}
		log.Info("Created foreign key", zap.String("name", fk.name))
	}
}

func createIndexes(db *gorm.DB, log *zap.Logger) {
	indexes := []struct {
		name  string
		query string
	}{
		{"idx_group_buys_board_position", "CREATE INDEX IF NOT EXISTS idx_group_buys_board_position ON group_buys(board, position)"},
		{"idx_suppliers_name_lower", "CREATE INDEX IF NOT EXISTS idx_suppliers_name_lower ON suppliers(LOWER(name))"},
		{"idx_join_requests_submitted", "CREATE INDEX IF NOT EXISTS idx_join_requests_submitted ON join_requests(submitted_at)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			log.Warn("Failed to create index", zap.String("name", idx.name), zap.Error(err))
		}
	}
}
