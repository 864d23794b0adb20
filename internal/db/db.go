package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/lily-salon/internal/config"
	"github.com/BruksfildServices01/lily-salon/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	gormCfg := &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), gormCfg)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AuditLog{},
	)
}
