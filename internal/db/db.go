package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/config"
	"github.com/edbarbearia/barbershop-api/internal/models"
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
		&models.User{},
		&models.Group{},
		&models.Permission{},
		&models.PasswordReset{},
		&models.ServiceCategory{},
		&models.Service{},
		&models.Barber{},
		&models.AvailabilityRule{},
		&models.AvailabilityException{},
		&models.Booking{},
		&models.ProductCategory{},
		&models.Product{},
		&models.Course{},
		&models.EstablishmentSettings{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
