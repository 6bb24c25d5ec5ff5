package database

import (
	"contact-service/internal/model"
	"contact-service/pkg/config"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath selects a private in-memory SQLite database
const MemoryPath = ":memory:"

// InitDB opens the configured database, applies pool settings and runs migrations
func InitDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	logLevel := gormLogLevel(cfg)

	var (
		conn *gorm.DB
		err  error
	)
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		conn, err = OpenPostgres(cfg.Database.GetDSN(), logLevel)
	default:
		conn, err = OpenSQLite(cfg.Database.Path, logLevel)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == config.DriverPostgres {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	start := time.Now()
	log.Info("Starting database migration...")
	if err := Migrate(conn); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return nil, err
	}
	log.Info("Database migration completed successfully",
		zap.Duration("duration", time.Since(start)))

	return conn, nil
}

// OpenPostgres connects to PostgreSQL
func OpenPostgres(dsn string, level logger.LogLevel) (*gorm.DB, error) {
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	conn, err := gorm.Open(postgres.New(pgConfig), gormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return conn, nil
}

// OpenSQLite opens a SQLite database file, creating its directory if needed.
// MemoryPath opens a private in-memory database pinned to one connection.
func OpenSQLite(path string, level logger.LogLevel) (*gorm.DB, error) {
	dsn := path
	memory := path == MemoryPath
	if memory {
		dsn = "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := gorm.Open(sqlite.Open(dsn), gormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	// SQLite serializes writers; one connection also keeps a memory database alive.
	sqlDB.SetMaxOpenConns(1)
	return conn, nil
}

// Migrate creates or updates the contact, preference and note tables
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&model.Contact{},
		&model.PreferenceRecord{},
		&model.Note{},
	); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	return nil
}

func gormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(level),
		// Maps unique violations to gorm.ErrDuplicatedKey for both drivers
		TranslateError: true,
	}
}

func gormLogLevel(cfg *config.Config) logger.LogLevel {
	logLevel := logger.Error
	if cfg.Server.Env == "development" {
		logLevel = logger.Warn
	}

	// Override log level if explicitly set in config
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = logger.Silent
	case "error":
		logLevel = logger.Error
	case "warn":
		logLevel = logger.Warn
	case "info":
		logLevel = logger.Info
	}
	return logLevel
}
