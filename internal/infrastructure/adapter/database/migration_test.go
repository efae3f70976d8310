package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh database ends at the current version and reruns are no-ops", func(t *testing.T) {
		testDB := NewTestDBManager(t, logger.NewNoopLogger())
		mgr := testDB.Manager.MigrationManager()

		version, err := mgr.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)

		require.NoError(t, mgr.MigrateAll(ctx))

		var count int64
		require.NoError(t, testDB.Manager.DB().Model(&model.MigrationVersion{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)

		db := testDB.Manager.DB()
		for _, table := range []string{"accounts", "account_entitlements", "invoices"} {
			assert.True(t, db.Migrator().HasTable(table), table)
		}
		assert.True(t, db.Migrator().HasIndex(&model.Invoice{}, "idx_invoices_status_updated"))
	})

	t.Run("Upgrade from 1.0.0 backfills the applied flag", func(t *testing.T) {
		testDB := NewTestDBManager(t, logger.NewNoopLogger())
		db := testDB.Manager.DB()
		now := time.Now().UTC()

		require.NoError(t, db.Where("1 = 1").Delete(&model.MigrationVersion{}).Error)
		require.NoError(t, db.Create(&model.MigrationVersion{Version: "1.0.0", AppliedAt: now.Add(-time.Hour)}).Error)
		require.NoError(t, db.Create(&model.Invoice{
			InvoiceID: "legacy",
			UserID:    42,
			Asset:     "TON",
			Amount:    "0.1",
			Credits:   1,
			Status:    string(entity.InvoiceStatusPaid),
			CreatedAt: now,
			UpdatedAt: now,
		}).Error)

		require.NoError(t, testDB.Manager.MigrationManager().MigrateAll(ctx))

		var invoice model.Invoice
		require.NoError(t, db.Where("invoice_id = ?", "legacy").Take(&invoice).Error)
		assert.True(t, invoice.Applied)

		version, err := testDB.Manager.MigrationManager().GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)
	})
}

func TestPromoteAdmins(t *testing.T) {
	ctx := context.Background()
	testDB := NewTestDBManager(t, logger.NewNoopLogger())
	testDB.CreateTestAccount(t, 1, "en", 0)
	testDB.CreateTestAccount(t, 2, "ru", 0)
	accounts := testDB.UnitOfWork().GetAccountRepository(ctx)

	promoted, err := migration.PromoteAdmins(ctx, accounts, []int64{1, 3}, testDB.Logger)
	require.NoError(t, err)
	assert.Equal(t, 1, promoted)

	admin, err := accounts.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	regular, err := accounts.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, regular.IsAdmin)
}
