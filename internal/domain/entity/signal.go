package entity

import (
	"strconv"
	"time"
)

// SignalSource tells which delivery path produced a payment signal
type SignalSource string

const (
	SourceWebhook     SignalSource = "webhook"
	SourceManualCheck SignalSource = "manual_check"
)

// PaymentSignal is the normalized form of a processor status report.
// Both the webhook push and the manual pull produce one of these.
type PaymentSignal struct {
	Source    SignalSource
	InvoiceID string
	Payload   string // user ID as the processor echoes it back
	Status    InvoiceStatus
	Amount    string
	Asset     string
	PaidAt    *time.Time
}

// ProcessorInvoice is an invoice as the payment processor describes it
type ProcessorInvoice struct {
	InvoiceID string
	Status    string
	Asset     string
	Amount    string
	PayURL    string
	Payload   string
	CreatedAt time.Time
	PaidAt    *time.Time
}

// Signal converts a processor invoice into a payment signal
func (p ProcessorInvoice) Signal(source SignalSource) PaymentSignal {
	return PaymentSignal{
		Source:    source,
		InvoiceID: p.InvoiceID,
		Payload:   p.Payload,
		Status:    StatusFromProcessor(p.Status),
		Amount:    p.Amount,
		Asset:     p.Asset,
		PaidAt:    p.PaidAt,
	}
}

// IsNewerThan orders invoices by creation time, breaking ties by invoice ID
func (p ProcessorInvoice) IsNewerThan(other ProcessorInvoice) bool {
	if !p.CreatedAt.Equal(other.CreatedAt) {
		return p.CreatedAt.After(other.CreatedAt)
	}
	return p.InvoiceID > other.InvoiceID
}

// PayloadForUser is the invoice payload that identifies a user
func PayloadForUser(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// LatestForPayload picks the most recently created invoice carrying payload.
// Ties on created_at go to the lexically greatest invoice ID.
func LatestForPayload(invoices []ProcessorInvoice, payload string) (ProcessorInvoice, bool) {
	var (
		latest ProcessorInvoice
		found  bool
	)
	for _, inv := range invoices {
		if inv.Payload != payload {
			continue
		}
		if !found || inv.IsNewerThan(latest) {
			latest = inv
			found = true
		}
	}
	return latest, found
}

// Outcome is what the reconciliation engine did with a signal
type Outcome string

const (
	OutcomeApplied       Outcome = "applied"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeStatusUpdated Outcome = "status_updated"
	OutcomeUnchanged     Outcome = "unchanged"
	OutcomeUntracked     Outcome = "untracked"
	OutcomeRejected      Outcome = "rejected"
	OutcomeIgnored       Outcome = "ignored"
	OutcomeFailed        Outcome = "failed"
)

// CheckResult is the answer to a manual payment check
type CheckResult string

const (
	CheckPaid      CheckResult = "paid"
	CheckNotPaid   CheckResult = "not_paid"
	CheckNoInvoice CheckResult = "no_invoice"
	CheckUnmatched CheckResult = "unmatched" // processor says paid, tracker has no record
)

// InvoiceLink is returned to the chat layer after an invoice was issued
type InvoiceLink struct {
	InvoiceID string
	PayURL    string
	Asset     string
	Amount    string
}
