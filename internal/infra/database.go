package infra

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/TarekElTayeh/bistroAR/internal/model"
)

// NewDatabase opens (creating if needed) the SQLite database and runs
// AutoMigrate so a fresh file bootstraps the full schema. SQLite allows one
// writer; the connection pool is pinned accordingly.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.Visit{},
		&model.VisitItem{},
		&model.Client{},
		&model.Invoice{},
		&model.InvoiceItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}
	return db, nil
}
