package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/diewo77/go-documents/internal/config"
	"github.com/diewo77/go-documents/internal/models"
)

// Connect opens the configured database. Postgres connections are retried
// to give the server time to start.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	switch cfg.Driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DSN()), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
		}
		return db, nil
	case "postgres", "":
		var db *gorm.DB
		var err error
		for i := 0; i < 5; i++ {
			db, err = gorm.Open(postgres.Open(cfg.DSN()), gcfg)
			if err == nil {
				return db, nil
			}
			log.Warn("database not ready, retrying", zap.Int("attempt", i+1), zap.Error(err))
			time.Sleep(2 * time.Second)
		}
		return nil, fmt.Errorf("connect postgres %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.Driver)
}

// Migrate creates or updates the document tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.CompanySettings{},
		&models.Client{},
		&models.Document{},
		&models.DocumentItem{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
