package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/time"
)

var testDBCounter atomic.Int64

// TestDBManager provides an isolated, migrated in-memory sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager opens a fresh in-memory database and migrates it.
// The database is closed when the test finishes.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	// Each test gets its own named shared-cache database; it lives as long as its single connection
	config := &Config{
		Driver:        DriverSQLite,
		Path:          fmt.Sprintf("file:paybot_test_%d?mode=memory&cache=shared", testDBCounter.Add(1)),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// UnitOfWork returns a unit of work bound to the test database
func (m *TestDBManager) UnitOfWork() persistence.UnitOfWork {
	return m.Manager.CreateUnitOfWork()
}

// CreateTestAccount inserts an account row directly
func (m *TestDBManager) CreateTestAccount(t *testing.T, userID int64, language string, balance int64) {
	t.Helper()

	now := m.TimeProvider.Now()
	account := model.Account{
		UserID:       userID,
		Language:     language,
		RegisteredAt: now,
		Balance:      balance,
		UpdatedAt:    now,
	}
	if err := m.Manager.DB().Create(&account).Error; err != nil {
		t.Fatalf("Failed to create test account: %v", err)
	}
}

// AccountBalance reads the balance column directly
func (m *TestDBManager) AccountBalance(t *testing.T, userID int64) int64 {
	t.Helper()

	var account model.Account
	if err := m.Manager.DB().Where("user_id = ?", userID).Take(&account).Error; err != nil {
		t.Fatalf("Failed to read test account: %v", err)
	}
	return account.Balance
}
