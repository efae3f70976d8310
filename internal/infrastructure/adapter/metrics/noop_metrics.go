package metrics

import (
	"time"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
)

// NoopMetrics discards every observation; used when metrics are disabled
type NoopMetrics struct{}

var _ coreport.Metrics = NoopMetrics{}

func NewNoopMetrics() NoopMetrics { return NoopMetrics{} }

func (NoopMetrics) SignalReceived(string) {}
func (NoopMetrics) ReconciliationOutcome(string, string) {}
func (NoopMetrics) InvariantViolation(string) {}
func (NoopMetrics) CreditApplied(string, int64) {}
func (NoopMetrics) NotificationFailed() {}
func (NoopMetrics) ProcessorCall(string, time.Duration, error) {}
func (NoopMetrics) InvoicesPurged(int64) {}
