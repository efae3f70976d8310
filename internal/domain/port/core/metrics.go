package core

import "time"

// Metrics records reconciliation health signals
type Metrics interface {
	// SignalReceived counts a payment signal entering the engine
	SignalReceived(source string)
	// ReconciliationOutcome counts what the engine did with a signal
	ReconciliationOutcome(source, outcome string)
	// InvariantViolation counts a discarded event that contradicted tracked state
	InvariantViolation(reason string)
	// CreditApplied counts balance credited by paid invoices
	CreditApplied(asset string, credits int64)
	// NotificationFailed counts best-effort notifications that were lost
	NotificationFailed()
	// ProcessorCall observes an outbound payment processor call
	ProcessorCall(method string, elapsed time.Duration, err error)
	// InvoicesPurged counts invoices removed by the retention janitor
	InvoicesPurged(count int64)
}
