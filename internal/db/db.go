package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AutoServeHQ/service-scheduler/internal/config"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.TimeSlot{},
		&models.Appointment{},
		&models.AppointmentModification{},
		&models.Notification{},
		&models.TimeLog{},
		&models.PartRequest{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}
