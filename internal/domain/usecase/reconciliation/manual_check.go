package reconciliation

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
)

// HandleManualCheck asks the processor for the user's most recent invoice
// and runs its status through the same transition as a webhook.
func (s *Service) HandleManualCheck(ctx context.Context, userID int64) (entity.CheckResult, error) {
	if userID <= 0 {
		return "", errs.ErrInvalidUserID
	}

	callCtx, cancel := s.withProcessorTimeout(ctx)
	start := s.timeProvider.Now()
	listed, err := s.processor.ListInvoices(callCtx)
	cancel()
	if err = s.observeProcessorCall("getInvoices", start, err); err != nil {
		s.logger.Warn("Listing invoices failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return "", err
	}

	latest, found := entity.LatestForPayload(listed, entity.PayloadForUser(userID))
	if !found {
		return s.checkTracked(ctx, userID)
	}

	outcome, err := s.reconcile(ctx, latest.Signal(entity.SourceManualCheck))
	if err != nil {
		return "", err
	}

	switch outcome {
	case entity.OutcomeApplied, entity.OutcomeDuplicate:
		return entity.CheckPaid, nil
	case entity.OutcomeUntracked:
		// Purged after it was credited, or never issued by this bot
		if entity.StatusFromProcessor(latest.Status) == entity.InvoiceStatusPaid {
			s.logger.Info("Processor reports a paid invoice the tracker no longer holds", map[string]any{
				"user_id":    userID,
				"invoice_id": latest.InvoiceID,
			})
			return entity.CheckUnmatched, nil
		}
		return entity.CheckNotPaid, nil
	default:
		s.logger.Debug("Manual check found no confirmed payment", map[string]any{
			"user_id":    userID,
			"invoice_id": latest.InvoiceID,
			"status":     latest.Status,
			"outcome":    string(outcome),
		})
		return entity.CheckNotPaid, nil
	}
}

// checkTracked answers from the tracker when the processor listing has nothing for the user
func (s *Service) checkTracked(ctx context.Context, userID int64) (entity.CheckResult, error) {
	tracked, err := s.uow.GetInvoiceRepository(ctx).LatestForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrInvoiceNotFound) {
			return entity.CheckNoInvoice, nil
		}
		return "", err
	}
	if tracked.Applied {
		return entity.CheckPaid, nil
	}
	return entity.CheckNotPaid, nil
}
