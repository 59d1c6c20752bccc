package db

import (
	"log"
	"time"

	"github.com/fitreni/coach-scheduler/internal/config"
	"github.com/fitreni/coach-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Studio{},
		&models.Coach{},
		&models.Service{},
		&models.AvailabilityWindow{},
		&models.BlockedRange{},
		&models.Client{},
		&models.Booking{},
		&models.Product{},
		&models.ShippingMethod{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContentBlock{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE studios
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, cfg.DefaultTimezone)

	return db
}
