package store

import (
	"contact-service/pkg/database"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// stepClock returns strictly increasing timestamps, one second apart
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// newTestDB opens a migrated in-memory database stamping rows from a stepClock
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn := newRealClockDB(t)
	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	conn.Config.NowFunc = clock.Now
	return conn
}

// newRealClockDB opens a migrated in-memory database using gorm's own clock
func newRealClockDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := database.OpenSQLite(database.MemoryPath, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(conn))

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func strPtr(s string) *string {
	return &s
}
