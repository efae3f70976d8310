package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
)

// reconcile drives one invoice through pending -> paid -> applied.
// Push and pull signals take the same route.
func (s *Service) reconcile(ctx context.Context, sig entity.PaymentSignal) (outcome entity.Outcome, err error) {
	source := string(sig.Source)
	s.metrics.SignalReceived(source)
	defer func() {
		s.metrics.ReconciliationOutcome(source, string(outcome))
	}()

	invoices := s.uow.GetInvoiceRepository(ctx)
	tracked, err := invoices.GetByInvoiceID(ctx, sig.InvoiceID)
	if err != nil {
		if errors.Is(err, errs.ErrInvoiceNotFound) {
			s.logger.Warn("Discarding signal for untracked invoice", map[string]any{
				"invoice_id": sig.InvoiceID,
				"payload":    sig.Payload,
				"status":     string(sig.Status),
				"source":     source,
			})
			return entity.OutcomeUntracked, nil
		}
		return entity.OutcomeFailed, err
	}

	if violation := crossCheck(tracked, sig); violation != nil {
		s.reject(violation, source)
		return entity.OutcomeRejected, nil
	}

	if tracked.Applied {
		s.logger.Debug("Invoice already applied, ignoring signal", map[string]any{
			"invoice_id": tracked.InvoiceID,
			"user_id":    tracked.UserID,
			"source":     source,
		})
		return entity.OutcomeDuplicate, nil
	}

	if tracked.Status.IsTerminal() {
		return s.holdTerminal(tracked, sig), nil
	}

	if sig.Status != entity.InvoiceStatusPaid {
		return s.updateStatus(ctx, tracked, sig)
	}

	return s.applyPaid(ctx, tracked, sig)
}

// holdTerminal keeps an expired or unknown invoice where it is.
// A paid report for such an invoice is never credited.
func (s *Service) holdTerminal(tracked *entity.Invoice, sig entity.PaymentSignal) entity.Outcome {
	if sig.Status != entity.InvoiceStatusPaid {
		s.logger.Debug("Invoice is terminal, ignoring status report", map[string]any{
			"invoice_id": tracked.InvoiceID,
			"user_id":    tracked.UserID,
			"status":     string(tracked.Status),
			"reported":   string(sig.Status),
			"source":     string(sig.Source),
		})
		return entity.OutcomeUnchanged
	}

	s.reject(errs.NewInvariantViolationError(tracked.InvoiceID, tracked.UserID, sig.Payload,
		errs.ReasonTerminalInvoice, fmt.Sprintf("paid reported for %s invoice", tracked.Status)), string(sig.Source))
	return entity.OutcomeRejected
}

// crossCheck compares the signal with the tracked invoice it claims to describe
func crossCheck(tracked *entity.Invoice, sig entity.PaymentSignal) error {
	if sig.Payload != entity.PayloadForUser(tracked.UserID) {
		return errs.NewInvariantViolationError(tracked.InvoiceID, tracked.UserID, sig.Payload,
			errs.ReasonPayloadMismatch, "payload does not match tracked user")
	}

	if sig.Asset != "" && !strings.EqualFold(sig.Asset, tracked.Asset) {
		return errs.NewInvariantViolationError(tracked.InvoiceID, tracked.UserID, sig.Payload,
			errs.ReasonAssetMismatch, fmt.Sprintf("tracked %s, reported %s", tracked.Asset, sig.Asset))
	}

	same, err := entity.SameAmount(tracked.Amount, sig.Amount)
	if err != nil {
		return errs.NewInvariantViolationError(tracked.InvoiceID, tracked.UserID, sig.Payload,
			errs.ReasonMalformedEvent, err.Error())
	}
	if !same {
		return errs.NewInvariantViolationError(tracked.InvoiceID, tracked.UserID, sig.Payload,
			errs.ReasonAmountMismatch, fmt.Sprintf("tracked %s, reported %s", tracked.Amount, sig.Amount))
	}

	return nil
}

// reject logs and counts a signal the engine refuses to act on
func (s *Service) reject(violation error, source string) {
	fields := errs.LogFields(violation)
	fields["source"] = source

	reason := errs.ReasonMalformedEvent
	var detailed *errs.InvariantViolationError
	if errors.As(violation, &detailed) {
		reason = detailed.Reason
	}

	s.metrics.InvariantViolation(reason)
	s.logger.Error("Discarding payment signal that contradicts tracked invoice", fields)
}

// updateStatus records a non-paid status without crediting anything
func (s *Service) updateStatus(ctx context.Context, tracked *entity.Invoice, sig entity.PaymentSignal) (entity.Outcome, error) {
	if sig.Status == tracked.Status {
		return entity.OutcomeUnchanged, nil
	}

	// The processor never takes a payment back; a stale pull must not regress paid
	if tracked.Status == entity.InvoiceStatusPaid {
		s.logger.Warn("Ignoring status regression for paid invoice", map[string]any{
			"invoice_id": tracked.InvoiceID,
			"user_id":    tracked.UserID,
			"reported":   string(sig.Status),
			"source":     string(sig.Source),
		})
		return entity.OutcomeUnchanged, nil
	}

	if err := s.uow.GetInvoiceRepository(ctx).MarkStatus(ctx, tracked.InvoiceID, sig.Status); err != nil {
		return entity.OutcomeFailed, err
	}

	s.logger.Info("Invoice status updated", map[string]any{
		"invoice_id": tracked.InvoiceID,
		"user_id":    tracked.UserID,
		"from":       string(tracked.Status),
		"to":         string(sig.Status),
		"source":     string(sig.Source),
	})
	return entity.OutcomeStatusUpdated, nil
}

// applyPaid claims the invoice and credits the account in one store transaction.
// The claim is rolled back with the credit, so an invoice is applied only if its credit committed.
func (s *Service) applyPaid(ctx context.Context, tracked *entity.Invoice, sig entity.PaymentSignal) (entity.Outcome, error) {
	if tracked.Status != entity.InvoiceStatusPaid {
		if err := s.uow.GetInvoiceRepository(ctx).MarkStatus(ctx, tracked.InvoiceID, entity.InvoiceStatusPaid); err != nil {
			return entity.OutcomeFailed, err
		}
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return entity.OutcomeFailed, errs.NewCreditError(tracked.InvoiceID, tracked.UserID, tracked.Credits,
			fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error()))
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Warn("Rollback after failed credit did not complete", map[string]any{
					"invoice_id": tracked.InvoiceID,
					"error":      rbErr.Error(),
				})
			}
		}
	}()

	if err := s.uow.GetInvoiceRepository(txCtx).MarkApplied(txCtx, tracked.InvoiceID); err != nil {
		if errors.Is(err, errs.ErrInvoiceAlreadyApplied) {
			s.logger.Info("Concurrent signal already applied invoice", map[string]any{
				"invoice_id": tracked.InvoiceID,
				"user_id":    tracked.UserID,
				"source":     string(sig.Source),
			})
			return entity.OutcomeDuplicate, nil
		}
		return entity.OutcomeFailed, err
	}

	accounts := s.uow.GetAccountRepository(txCtx)
	if err := accounts.IncrementBalance(txCtx, tracked.UserID, tracked.Credits); err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			s.reject(errs.NewInvariantViolationError(tracked.InvoiceID, tracked.UserID, sig.Payload,
				errs.ReasonAccountMissing, "paid invoice references a missing account"), string(sig.Source))
			return entity.OutcomeRejected, nil
		}
		return s.creditFailed(tracked, err)
	}
	if tracked.Entitlement != "" {
		if err := accounts.AddEntitlements(txCtx, tracked.UserID, tracked.Entitlement); err != nil {
			return s.creditFailed(tracked, err)
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return s.creditFailed(tracked, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error()))
	}
	committed = true

	s.metrics.CreditApplied(tracked.Asset, tracked.Credits)
	s.logger.Info("Invoice applied", map[string]any{
		"invoice_id":  tracked.InvoiceID,
		"user_id":     tracked.UserID,
		"credits":     tracked.Credits,
		"entitlement": tracked.Entitlement,
		"source":      string(sig.Source),
	})

	s.notifyPaid(ctx, tracked.UserID)
	return entity.OutcomeApplied, nil
}

// creditFailed reports a credit that did not commit; the invoice stays paid but unapplied
func (s *Service) creditFailed(tracked *entity.Invoice, err error) (entity.Outcome, error) {
	creditErr := errs.NewCreditError(tracked.InvoiceID, tracked.UserID, tracked.Credits, err)
	s.logger.Error("Credit not applied, invoice left for a later signal", errs.LogFields(creditErr))
	return entity.OutcomeFailed, creditErr
}

// notifyPaid tells the user about the credit. Failures are logged and counted only.
func (s *Service) notifyPaid(ctx context.Context, userID int64) {
	lang := entity.DefaultLanguage
	if account, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, userID); err == nil {
		lang = account.Language
	}

	if err := s.notifier.Notify(ctx, userID, s.paidMessage(lang)); err != nil {
		s.metrics.NotificationFailed()
		s.logger.Warn("Payment notification not delivered", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
