package reconciliation

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
)

// UpdateTypeInvoicePaid is the only webhook update type that carries a payment
const UpdateTypeInvoicePaid = "invoice_paid"

// HandleWebhookEvent applies a pushed processor update.
// Rejected, duplicate and untracked events return a nil error so the caller can acknowledge them.
func (s *Service) HandleWebhookEvent(ctx context.Context, event usecase.WebhookEvent) (entity.Outcome, error) {
	if event.UpdateType != "" && event.UpdateType != UpdateTypeInvoicePaid {
		s.logger.Debug("Ignoring webhook update", map[string]any{
			"update_id":   event.UpdateID,
			"update_type": event.UpdateType,
		})
		s.metrics.ReconciliationOutcome(string(entity.SourceWebhook), string(entity.OutcomeIgnored))
		return entity.OutcomeIgnored, nil
	}

	if strings.TrimSpace(event.Invoice.InvoiceID) == "" {
		s.reject(fmt.Errorf("%w: update %d has no invoice id", errs.ErrMalformedEvent, event.UpdateID),
			string(entity.SourceWebhook))
		return entity.OutcomeRejected, nil
	}

	return s.reconcile(ctx, event.Invoice.Signal(entity.SourceWebhook))
}
