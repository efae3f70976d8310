package usecase

import (
	"context"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
)

// WebhookEvent is a decoded, validated processor callback
type WebhookEvent struct {
	UpdateID   int64
	UpdateType string
	Invoice    entity.ProcessorInvoice
}

// ReconciliationUseCase defines the payment operations exposed to the chat and webhook layers
type ReconciliationUseCase interface {
	// RequestInvoice issues an invoice for the user and starts tracking it
	RequestInvoice(ctx context.Context, userID int64) (*entity.InvoiceLink, error)

	// HandleWebhookEvent applies a pushed payment update
	HandleWebhookEvent(ctx context.Context, event WebhookEvent) (entity.Outcome, error)

	// HandleManualCheck pulls the processor's view of the user's latest invoice and applies it
	HandleManualCheck(ctx context.Context, userID int64) (entity.CheckResult, error)
}
