package reconciliation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
)

// DefaultProcessorTimeout bounds every outbound processor call when none is configured
const DefaultProcessorTimeout = 10 * time.Second

// Options configures what an invoice costs and how the engine talks to the user
type Options struct {
	Price            entity.Price
	Description      string
	ProcessorTimeout time.Duration
	// PaidMessages holds the confirmation text per language; DefaultLanguage is the fallback
	PaidMessages map[entity.Language]string
}

// Service is the reconciliation engine. It turns webhook pushes and manual
// pulls into exactly-once account credits.
type Service struct {
	uow          persistence.UnitOfWork
	processor    gateway.PaymentProcessor
	notifier     gateway.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	opts         Options
}

var _ usecase.ReconciliationUseCase = (*Service)(nil)

// NewService creates a new reconciliation engine
func NewService(
	uow persistence.UnitOfWork,
	processor gateway.PaymentProcessor,
	notifier gateway.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	opts Options,
) *Service {
	if opts.ProcessorTimeout <= 0 {
		opts.ProcessorTimeout = DefaultProcessorTimeout
	}
	return &Service{
		uow:          uow,
		processor:    processor,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		opts:         opts,
	}
}

// withProcessorTimeout derives the bounded context used for processor calls
func (s *Service) withProcessorTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return s.timeProvider.WithTimeout(ctx, coreport.Duration(s.opts.ProcessorTimeout))
}

// observeProcessorCall records latency and normalizes deadline errors to a transient fault
func (s *Service) observeProcessorCall(method string, start time.Time, err error) error {
	s.metrics.ProcessorCall(method, s.timeProvider.Since(start).Std(), err)
	if err == nil {
		return nil
	}
	if errs.IsTransient(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s timed out", errs.ErrProcessorUnavailable, method)
	}
	return fmt.Errorf("%w: %s: %s", errs.ErrProcessorUnavailable, method, err.Error())
}

// paidMessage picks the confirmation text for the user's language
func (s *Service) paidMessage(lang entity.Language) string {
	if msg, ok := s.opts.PaidMessages[lang]; ok && msg != "" {
		return msg
	}
	return s.opts.PaidMessages[entity.DefaultLanguage]
}
