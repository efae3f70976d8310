package reconciliation

import (
	"context"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
)

// RequestInvoice issues an invoice for a registered user and starts tracking it.
// The processor call is bounded by the configured timeout and never retried here.
func (s *Service) RequestInvoice(ctx context.Context, userID int64) (*entity.InvoiceLink, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}

	// Credits can only land on an existing account
	if _, err := s.uow.GetAccountRepository(ctx).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	price := s.opts.Price
	req := gateway.InvoiceRequest{
		Asset:       price.Asset,
		Amount:      entity.FormatAmount(price.Amount),
		Payload:     entity.PayloadForUser(userID),
		Description: s.opts.Description,
	}

	callCtx, cancel := s.withProcessorTimeout(ctx)
	start := s.timeProvider.Now()
	issued, err := s.processor.CreateInvoice(callCtx, req)
	cancel()
	if err = s.observeProcessorCall("createInvoice", start, err); err != nil {
		s.logger.Warn("Invoice creation failed", map[string]any{
			"user_id": userID,
			"asset":   req.Asset,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return nil, err
	}

	invoice, err := entity.NewPendingInvoice(issued.InvoiceID, userID, price, issued.PayURL, issued.CreatedAt, s.timeProvider)
	if err != nil {
		s.logger.Error("Processor returned an unusable invoice", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := s.uow.GetInvoiceRepository(ctx).RecordPending(ctx, invoice); err != nil {
		s.logger.Error("Failed to track issued invoice", map[string]any{
			"user_id":    userID,
			"invoice_id": invoice.InvoiceID,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Invoice issued", map[string]any{
		"user_id":    userID,
		"invoice_id": invoice.InvoiceID,
		"asset":      invoice.Asset,
		"amount":     invoice.Amount,
	})

	return &entity.InvoiceLink{
		InvoiceID: invoice.InvoiceID,
		PayURL:    invoice.PayURL,
		Asset:     invoice.Asset,
		Amount:    invoice.Amount,
	}, nil
}
