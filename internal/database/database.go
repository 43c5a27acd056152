package database

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ducminh2107/QL-DoAn-sub001/internal/models"
)

// DB is the global database instance
var DB *gorm.DB

// InitDB initializes the database connection and performs migrations
func InitDB() (*gorm.DB, error) {
	// Get database connection parameters from environment variables
	host := getEnv("DB_HOST", "")
	port := getEnv("DB_PORT", "")
	user := getEnv("DB_USER", "")
	password := getEnv("DB_PASSWORD", "")
	dbname := getEnv("DB_NAME", "")
	sslmode := getEnv("DB_SSLMODE", "disable")

	// Validate required environment variables
	if host == "" || port == "" || user == "" || password == "" || dbname == "" {
		return nil, fmt.Errorf("missing required database environment variables. Please check your .env file")
	}

	// Create DSN string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode)

	// Configure GORM logger
	gormLogger := logger.New(
		logrus.New(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	// Open database connection
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   gormLogger,
		DisableForeignKeyConstraintWhenMigrating: true, // Disable FK constraints during migration to avoid order issues
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Create public schema if it doesn't exist
	err = db.Exec("CREATE SCHEMA IF NOT EXISTS public").Error
	if err != nil {
		return nil, fmt.Errorf("failed to create public schema: %w", err)
	}

	// Set search_path to public
	err = db.Exec("SET search_path TO public").Error
	if err != nil {
		return nil, fmt.Errorf("failed to set search_path: %w", err)
	}

	// Enable UUID extension
	err = db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\" SCHEMA public").Error
	if err != nil {
		return nil, fmt.Errorf("failed to enable UUID extension: %w", err)
	}

	// Auto migrate the schema
	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Major{},
		&models.TopicCategory{},
		&models.Semester{},
		&models.RegistrationPeriod{},
		&models.Topic{},
		&models.TopicMember{},
		&models.Council{},
		&models.CouncilMember{},
		&models.Rubric{},
		&models.Notification{},
		&models.SystemSetting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Migration: partial unique index on live membership records.
	// A student may hold at most one pending/approved record per topic; rejected
	// records stay behind for feedback and must not block re-registration.
	var liveMemberIndexExists bool
	err = db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM pg_indexes
			WHERE schemaname = 'public'
			AND tablename = 'topic_members'
			AND indexname = 'idx_topic_members_live_unique'
		)
	`).Scan(&liveMemberIndexExists).Error
	if err != nil {
		logrus.Warnf("Failed to check if live member unique index exists: %v", err)
	} else if !liveMemberIndexExists {
		logrus.Info("Creating partial unique index on topic_members (topic_id, student_id)...")
		err = db.Exec(`
			CREATE UNIQUE INDEX IF NOT EXISTS idx_topic_members_live_unique
			ON topic_members(topic_id, student_id)
			WHERE status IN ('pending', 'approved')
		`).Error
		if err != nil {
			logrus.Warnf("Failed to create live member unique index: %v", err)
		} else {
			logrus.Info("Successfully created partial unique index on topic_members")
		}
	}

	// Migration: one seat per teacher per council
	var councilSeatIndexExists bool
	err = db.Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM pg_indexes
			WHERE schemaname = 'public'
			AND tablename = 'council_members'
			AND indexname = 'idx_council_members_seat_unique'
		)
	`).Scan(&councilSeatIndexExists).Error
	if err != nil {
		logrus.Warnf("Failed to check if council seat unique index exists: %v", err)
	} else if !councilSeatIndexExists {
		logrus.Info("Creating unique index on council_members (council_id, user_id)...")
		err = db.Exec(`
			CREATE UNIQUE INDEX IF NOT EXISTS idx_council_members_seat_unique
			ON council_members(council_id, user_id)
		`).Error
		if err != nil {
			logrus.Warnf("Failed to create council seat unique index: %v", err)
		} else {
			logrus.Info("Successfully created unique index on council_members")
		}
	}

	// Migration: seed default system settings if they don't exist
	defaultSettings := []struct {
		key   string
		value string
	}{
		{models.SettingDefaultMaxMembers, "3"},
		{models.SettingAllowProposals, "true"},
	}

	for _, settingData := range defaultSettings {
		var settingExists bool
		err = db.Raw(`
			SELECT EXISTS (
				SELECT 1
				FROM system_settings
				WHERE key = ?
			)
		`, settingData.key).Scan(&settingExists).Error
		if err != nil {
			logrus.Warnf("Failed to check if %s setting exists: %v", settingData.key, err)
			continue
		}
		if !settingExists {
			logrus.Infof("Creating default setting '%s'...", settingData.key)
			setting := &models.SystemSetting{
				Key:   settingData.key,
				Value: settingData.value,
			}
			if err := db.Create(setting).Error; err != nil {
				logrus.Warnf("Failed to create %s setting: %v", settingData.key, err)
			} else {
				logrus.Infof("Successfully created %s setting", settingData.key)
			}
		}
	}

	// Set global DB instance
	DB = db

	logrus.Info("Database connection established and migrations completed")
	return db, nil
}

// GetDB returns the global database instance
func GetDB() *gorm.DB {
	return DB
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
