package database

import (
	"contact-service/internal/model"
	"contact-service/pkg/config"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

func TestInitDBCreatesSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "contacts.sqlite3")
	cfg := &config.Config{
		Server:   config.ServerConfig{Env: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: path, LogLevel: "silent"},
	}

	conn, err := InitDB(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	assert.FileExists(t, path)

	for _, table := range []string{"contacts", "preferences", "notes"} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}
}

func TestSeed(t *testing.T) {
	conn, err := OpenSQLite(MemoryPath, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))

	n, err := Seed(conn, false, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, len(sampleContacts), n)

	// A second run without reset leaves the table alone.
	n, err = Seed(conn, false, zap.NewNop())
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = Seed(conn, true, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, len(sampleContacts), n)

	var count int64
	require.NoError(t, conn.Model(&model.Contact{}).Count(&count).Error)
	assert.Equal(t, int64(len(sampleContacts)), count)

	var bob model.Contact
	require.NoError(t, conn.Where("email = ?", "bob.williams@example.com").First(&bob).Error)
	assert.Nil(t, bob.Phone)
	require.NotNil(t, bob.Company)
	assert.Equal(t, "Umbrella", *bob.Company)
}

func TestGormLogLevel(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Env: "production"}}
	assert.Equal(t, logger.Error, gormLogLevel(cfg))

	cfg.Server.Env = "development"
	assert.Equal(t, logger.Warn, gormLogLevel(cfg))

	cfg.Database.LogLevel = "info"
	assert.Equal(t, logger.Info, gormLogLevel(cfg))
}
