package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"photo-organiser/models"
)

// InitGormDB initializes and returns a GORM database instance
func InitGormDB(dataSourceName string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	// enable write-ahead logging for better concurrency
	if err := db.Exec("PRAGMA journal_mode=WAL;").Error; err != nil {
		log.Printf("warning: failed to set WAL mode: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys=ON;").Error; err != nil {
		log.Printf("warning: failed to enable foreign keys: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("GORM Database initialized successfully at", dataSourceName)
	return db, nil
}

// AutoMigrateModels migrates the full schema, including the forward-compatible
// review and export tables that have no writers yet
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Person{},
		&models.Photo{},
		&models.Face{},
		&models.ProcessingLog{},
		&models.ReviewDecision{},
		&models.ExportJob{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	log.Println("GORM AutoMigrate completed successfully.")
	return nil
}

// DropAllTables drops every table owned by this schema. Used by
// init-db --force only.
func DropAllTables(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&models.ExportJob{},
		&models.ReviewDecision{},
		&models.ProcessingLog{},
		&models.Face{},
		&models.Photo{},
		&models.Person{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	log.Println("All database tables dropped")
	return nil
}

// CheckConnection verifies that the database answers a trivial query
func CheckConnection(db *gorm.DB) error {
	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil {
		return fmt.Errorf("database connection check failed: %w", err)
	}
	return nil
}
