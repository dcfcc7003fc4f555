package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/talentflow-hq/talentflow/internal/models"
)

// Connect opens the embedded store and migrates the entity tables. The
// returned handle is passed explicitly to everything that needs it; there is
// no package-level singleton.
func Connect(path string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	logger.Info("database connection established", zap.String("path", path))

	// Migration: creates the entity tables and secondary indexes.
	if err := db.AutoMigrate(
		&models.Job{},
		&models.Candidate{},
		&models.Assessment{},
		&models.AssessmentResponse{},
	); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
