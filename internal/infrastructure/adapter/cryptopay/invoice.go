package cryptopay

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
)

// Invoice is an invoice object as the Crypto Pay API returns it
type Invoice struct {
	InvoiceID     int64      `json:"invoice_id"`
	Hash          string     `json:"hash,omitempty"`
	Status        string     `json:"status"`
	Asset         string     `json:"asset"`
	Amount        string     `json:"amount"`
	PayURL        string     `json:"pay_url,omitempty"`
	BotInvoiceURL string     `json:"bot_invoice_url,omitempty"`
	Description   string     `json:"description,omitempty"`
	Payload       string     `json:"payload,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// ToEntity converts the wire invoice into the processor-neutral form
func (i Invoice) ToEntity() (entity.ProcessorInvoice, error) {
	if i.InvoiceID <= 0 {
		return entity.ProcessorInvoice{}, fmt.Errorf("%w: invoice id %d", errs.ErrMalformedEvent, i.InvoiceID)
	}

	payURL := i.BotInvoiceURL
	if payURL == "" {
		payURL = i.PayURL
	}

	converted := entity.ProcessorInvoice{
		InvoiceID: strconv.FormatInt(i.InvoiceID, 10),
		Status:    strings.ToLower(i.Status),
		Asset:     strings.ToUpper(i.Asset),
		Amount:    i.Amount,
		PayURL:    payURL,
		Payload:   i.Payload,
		CreatedAt: i.CreatedAt.UTC(),
	}
	if i.PaidAt != nil {
		paidAt := i.PaidAt.UTC()
		converted.PaidAt = &paidAt
	}
	return converted, nil
}
