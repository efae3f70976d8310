package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and storage settings
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates PostgreSQL partial indexes for the reconciliation queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	indexes := []struct {
		name string
		sql  string
	}{
		{
			// Unapplied invoices are the only ones the engine can still credit
			name: "idx_invoices_unapplied",
			sql: `CREATE INDEX IF NOT EXISTS idx_invoices_unapplied
				ON invoices (invoice_id) WHERE applied = false`,
		},
		{
			name: "idx_invoices_purgeable",
			sql: `CREATE INDEX IF NOT EXISTS idx_invoices_purgeable
				ON invoices (updated_at) WHERE applied = true OR status IN ('expired', 'unknown')`,
		},
	}

	for _, idx := range indexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Balance and status updates rewrite rows in place; leave room for HOT updates
	tweaks := []string{
		`ALTER TABLE accounts SET (fillfactor = 90)`,
		`ALTER TABLE invoices SET (fillfactor = 90)`,
	}
	for _, stmt := range tweaks {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply performance tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}
}
