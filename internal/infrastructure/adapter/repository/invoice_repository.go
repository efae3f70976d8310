package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvoiceRepository implements the InvoiceRepository interface using GORM
type InvoiceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewInvoiceRepository creates a new InvoiceRepository instance
func NewInvoiceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts an invoice entity to its database model
func (r *InvoiceRepository) entityToModel(invoice *entity.Invoice) *model.Invoice {
	return &model.Invoice{
		InvoiceID:   invoice.InvoiceID,
		UserID:      invoice.UserID,
		Asset:       invoice.Asset,
		Amount:      invoice.Amount,
		Credits:     invoice.Credits,
		Entitlement: invoice.Entitlement,
		PayURL:      invoice.PayURL,
		Status:      string(invoice.Status),
		Applied:     invoice.Applied,
		AppliedAt:   invoice.AppliedAt,
		CreatedAt:   invoice.CreatedAt,
		UpdatedAt:   invoice.UpdatedAt,
	}
}

// modelToEntity converts an invoice model to an entity
func (r *InvoiceRepository) modelToEntity(m *model.Invoice) (*entity.Invoice, error) {
	status, err := entity.ParseInvoiceStatus(m.Status)
	if err != nil {
		r.logger.Error("Stored invoice has an invalid status", map[string]any{
			"invoice_id": m.InvoiceID,
			"status":     m.Status,
		})
		return nil, fmt.Errorf("%w: invoice %s has status %q", errs.ErrInternalServer, m.InvoiceID, m.Status)
	}

	invoice := &entity.Invoice{
		InvoiceID:   m.InvoiceID,
		UserID:      m.UserID,
		Asset:       m.Asset,
		Amount:      m.Amount,
		Credits:     m.Credits,
		Entitlement: m.Entitlement,
		PayURL:      m.PayURL,
		Status:      status,
		Applied:     m.Applied,
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
	if m.AppliedAt != nil {
		appliedAt := m.AppliedAt.UTC()
		invoice.AppliedAt = &appliedAt
	}
	return invoice, nil
}

// handleDatabaseError standardizes database error handling
func (r *InvoiceRepository) handleDatabaseError(operation string, err error, invoiceID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrInvoiceNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"invoice_id": invoiceID,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}

// RecordPending stores a freshly issued invoice; an existing invoice ID is left untouched
func (r *InvoiceRepository) RecordPending(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := r.entityToModel(invoice)
	invoiceModel.Status = string(entity.InvoiceStatusPending)
	invoiceModel.Applied = false
	invoiceModel.AppliedAt = nil
	if invoiceModel.UpdatedAt.IsZero() {
		invoiceModel.UpdatedAt = r.timeProvider.Now()
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "invoice_id"}}, DoNothing: true}).
		Create(invoiceModel)
	if result.Error != nil {
		return r.handleDatabaseError("recording invoice", result.Error, invoice.InvoiceID)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Invoice already tracked", map[string]any{
			"invoice_id": invoice.InvoiceID,
			"user_id":    invoice.UserID,
		})
	}
	return nil
}

// GetByInvoiceID resolves a tracked invoice
func (r *InvoiceRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	var invoiceModel model.Invoice
	result := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceID).Take(&invoiceModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting invoice", result.Error, invoiceID)
	}
	return r.modelToEntity(&invoiceModel)
}

// LatestForUser returns the most recently created invoice of the user
func (r *InvoiceRepository) LatestForUser(ctx context.Context, userID int64) (*entity.Invoice, error) {
	var invoiceModel model.Invoice
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("invoice_id DESC").
		Take(&invoiceModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting latest invoice", result.Error, "")
	}
	return r.modelToEntity(&invoiceModel)
}

// MarkStatus records the last status reported by the processor
func (r *InvoiceRepository) MarkStatus(ctx context.Context, invoiceID string, status entity.InvoiceStatus) error {
	if _, err := entity.ParseInvoiceStatus(string(status)); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("invoice_id = ?", invoiceID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating invoice status", result.Error, invoiceID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrInvoiceNotFound
	}
	return nil
}

// MarkApplied flips the applied flag only if nobody has flipped it yet.
// Under concurrent callers exactly one observes success.
func (r *InvoiceRepository) MarkApplied(ctx context.Context, invoiceID string) error {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("invoice_id = ? AND applied = ?", invoiceID, false).
		Updates(map[string]any{
			"applied":    true,
			"applied_at": now,
			"updated_at": now,
		})
	if result.Error != nil {
		return r.handleDatabaseError("applying invoice", result.Error, invoiceID)
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Invoice{}).
		Where("invoice_id = ?", invoiceID).
		Count(&count).Error; err != nil {
		return r.handleDatabaseError("checking invoice", err, invoiceID)
	}
	if count == 0 {
		return errs.ErrInvoiceNotFound
	}
	return errs.ErrInvoiceAlreadyApplied
}

// PurgeTerminalBefore deletes applied, expired and unknown invoices not touched since cutoff
func (r *InvoiceRepository) PurgeTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Where("applied = ? OR status IN ?", true, []string{
			string(entity.InvoiceStatusExpired),
			string(entity.InvoiceStatusUnknown),
		}).
		Delete(&model.Invoice{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("purging invoices", result.Error, "")
	}
	return result.RowsAffected, nil
}
