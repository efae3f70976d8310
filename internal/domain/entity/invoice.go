package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
)

// InvoiceStatus is the last status the processor reported for an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusExpired InvoiceStatus = "expired"
	InvoiceStatusUnknown InvoiceStatus = "unknown"
)

// ParseInvoiceStatus validates a stored status value
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	switch status := InvoiceStatus(s); status {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusExpired, InvoiceStatusUnknown:
		return status, nil
	default:
		return "", errs.ErrInvalidInvoiceStatus
	}
}

// StatusFromProcessor maps a processor status string onto the invoice lifecycle.
// "active" is the processor's name for an unpaid open invoice.
func StatusFromProcessor(s string) InvoiceStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active", "pending":
		return InvoiceStatusPending
	case "paid":
		return InvoiceStatusPaid
	case "expired":
		return InvoiceStatusExpired
	default:
		return InvoiceStatusUnknown
	}
}

// IsTerminal reports whether no further status change is expected without a credit
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusExpired || s == InvoiceStatusUnknown
}

// Invoice correlates a processor invoice with the user who requested it
type Invoice struct {
	InvoiceID   string
	UserID      int64
	Asset       string
	Amount      string // decimal string exactly as issued
	Credits     int64  // balance increment applied when paid
	Entitlement string // optional good granted when paid
	PayURL      string
	Status      InvoiceStatus
	Applied     bool
	AppliedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPendingInvoice creates the tracker record for a freshly issued invoice
func NewPendingInvoice(invoiceID string, userID int64, price Price, payURL string, createdAt time.Time, timeProvider coreport.TimeProvider) (*Invoice, error) {
	if userID <= 0 {
		return nil, errs.ErrInvalidUserID
	}
	if strings.TrimSpace(invoiceID) == "" {
		return nil, fmt.Errorf("%w: empty invoice id", errs.ErrMalformedEvent)
	}
	if createdAt.IsZero() {
		createdAt = timeProvider.Now()
	}

	return &Invoice{
		InvoiceID:   invoiceID,
		UserID:      userID,
		Asset:       price.Asset,
		Amount:      FormatAmount(price.Amount),
		Credits:     price.Credits,
		Entitlement: price.Entitlement,
		PayURL:      payURL,
		Status:      InvoiceStatusPending,
		CreatedAt:   createdAt.UTC(),
		UpdatedAt:   timeProvider.Now().UTC(),
	}, nil
}
