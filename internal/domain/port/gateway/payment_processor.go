package gateway

import (
	"context"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
)

// InvoiceRequest describes an invoice to issue
type InvoiceRequest struct {
	Asset       string
	Amount      string
	Payload     string
	Description string
}

// PaymentProcessor is the external crypto payment API.
// Implementations must honor ctx deadlines and never retry invoice creation on their own.
type PaymentProcessor interface {
	// CreateInvoice issues a new invoice
	//
	// Possible errors:
	// - ErrProcessorUnavailable: timeout or network failure
	// - ErrProcessorRejected: the API answered with an error
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*entity.ProcessorInvoice, error)

	// ListInvoices returns the invoices known to the processor for this app
	ListInvoices(ctx context.Context) ([]entity.ProcessorInvoice, error)
}
