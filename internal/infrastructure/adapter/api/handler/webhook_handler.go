package handler

import (
	"errors"
	"io"
	"net/http"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/cryptopay"
	"github.com/gin-gonic/gin"
)

// MaxWebhookBody caps the size of a processor delivery
const MaxWebhookBody = 1 << 20

// WebhookHandler receives payment processor deliveries
type WebhookHandler struct {
	payments usecase.ReconciliationUseCase
	verifier *cryptopay.Verifier
	metrics  coreport.Metrics
	logger   coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(
	payments usecase.ReconciliationUseCase,
	verifier *cryptopay.Verifier,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		payments: payments,
		verifier: verifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// HandleUpdate handles POST deliveries on the webhook path.
// Anything the engine discarded is acknowledged with 200 so the processor stops redelivering;
// transient faults answer 503 so it tries again.
func (h *WebhookHandler) HandleUpdate(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := coreport.RequestIDFromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBody))
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrMalformedEvent),
			Message: "Request body too large",
		})
		return
	}

	if !h.verifier.Verify(body, c.GetHeader(cryptopay.SignatureHeader)) {
		h.metrics.InvariantViolation(errs.ReasonBadSignature)
		h.logger.Warn("Rejected webhook with invalid signature", map[string]any{
			"request_id": requestID,
			"client_ip":  c.ClientIP(),
		})
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    errs.ErrorCode(errs.ErrInvalidSignature),
			Message: "Invalid signature",
		})
		return
	}

	var event usecase.WebhookEvent
	update, err := cryptopay.ParseUpdate(body)
	if err == nil {
		event, err = update.Event()
	}
	if err != nil {
		h.metrics.InvariantViolation(errs.ReasonMalformedEvent)
		h.logger.Error("Rejected malformed webhook", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
			"error_code": errs.ErrorCode(err),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Malformed update",
		})
		return
	}

	outcome, err := h.payments.HandleWebhookEvent(ctx, event)
	if err != nil {
		fields := errs.LogFields(err)
		fields["request_id"] = requestID
		fields["update_id"] = event.UpdateID

		status := http.StatusInternalServerError
		if errs.IsTransient(err) {
			status = http.StatusServiceUnavailable
		} else if errors.Is(err, errs.ErrInvalidUserID) {
			status = http.StatusBadRequest
		}
		h.logger.Warn("Webhook update not applied", fields)
		c.JSON(status, dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: "Update not applied",
		})
		return
	}

	c.JSON(http.StatusOK, dto.WebhookAck{OK: true, Outcome: string(outcome)})
}
