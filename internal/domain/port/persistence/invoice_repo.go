package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
)

// InvoiceRepository tracks invoices issued to users and guards their credit
type InvoiceRepository interface {
	// RecordPending stores a freshly issued invoice. Recording the same invoice ID twice is a no-op.
	RecordPending(ctx context.Context, invoice *entity.Invoice) error

	// GetByInvoiceID resolves a tracked invoice
	//
	// Possible errors:
	// - ErrInvoiceNotFound: the invoice was never tracked by this instance
	GetByInvoiceID(ctx context.Context, invoiceID string) (*entity.Invoice, error)

	// LatestForUser returns the user's invoice with the greatest created_at,
	// ties broken by the greatest invoice ID
	//
	// Possible errors:
	// - ErrInvoiceNotFound: the user has no invoices
	LatestForUser(ctx context.Context, userID int64) (*entity.Invoice, error)

	// MarkStatus records the last status reported by the processor
	//
	// Possible errors:
	// - ErrInvoiceNotFound: the invoice was never tracked
	MarkStatus(ctx context.Context, invoiceID string, status entity.InvoiceStatus) error

	// MarkApplied is the compare-and-set that serializes credit application per invoice
	//
	// Possible errors:
	// - ErrInvoiceAlreadyApplied: another execution already claimed the credit
	// - ErrInvoiceNotFound: the invoice was never tracked
	MarkApplied(ctx context.Context, invoiceID string) error

	// PurgeTerminalBefore deletes applied, expired and unknown invoices last updated before cutoff
	PurgeTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
