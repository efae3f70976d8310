package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatestForPayload(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	t3 := t1.Add(2 * time.Minute)

	t.Run("Greatest created_at among matching payloads", func(t *testing.T) {
		invoices := []ProcessorInvoice{
			{InvoiceID: "1", Payload: "42", CreatedAt: t1},
			{InvoiceID: "3", Payload: "42", CreatedAt: t3},
			{InvoiceID: "2", Payload: "42", CreatedAt: t2},
			{InvoiceID: "9", Payload: "7", CreatedAt: t3.Add(time.Hour)},
		}

		latest, found := LatestForPayload(invoices, "42")
		assert.True(t, found)
		assert.Equal(t, "3", latest.InvoiceID)
	})

	t.Run("Tie goes to the greatest invoice ID", func(t *testing.T) {
		invoices := []ProcessorInvoice{
			{InvoiceID: "b", Payload: "42", CreatedAt: t1},
			{InvoiceID: "c", Payload: "42", CreatedAt: t1},
			{InvoiceID: "a", Payload: "42", CreatedAt: t1},
		}

		latest, found := LatestForPayload(invoices, "42")
		assert.True(t, found)
		assert.Equal(t, "c", latest.InvoiceID)
	})

	t.Run("No match", func(t *testing.T) {
		_, found := LatestForPayload([]ProcessorInvoice{{InvoiceID: "1", Payload: "8"}}, "7")
		assert.False(t, found)

		_, found = LatestForPayload(nil, "7")
		assert.False(t, found)
	})
}

func TestProcessorInvoiceIsNewerThan(t *testing.T) {
	t1 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	a := ProcessorInvoice{InvoiceID: "a", CreatedAt: t1}
	b := ProcessorInvoice{InvoiceID: "b", CreatedAt: t1}
	c := ProcessorInvoice{InvoiceID: "a", CreatedAt: t1.Add(time.Second)}

	assert.True(t, b.IsNewerThan(a))
	assert.False(t, a.IsNewerThan(b))
	assert.False(t, a.IsNewerThan(a))
	assert.True(t, c.IsNewerThan(b))
}

func TestProcessorInvoiceSignal(t *testing.T) {
	paidAt := time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)
	inv := ProcessorInvoice{
		InvoiceID: "inv-1",
		Status:    "paid",
		Asset:     "TON",
		Amount:    "0.1",
		Payload:   PayloadForUser(42),
		PaidAt:    &paidAt,
	}

	sig := inv.Signal(SourceWebhook)

	assert.Equal(t, SourceWebhook, sig.Source)
	assert.Equal(t, "inv-1", sig.InvoiceID)
	assert.Equal(t, "42", sig.Payload)
	assert.Equal(t, InvoiceStatusPaid, sig.Status)
	assert.Equal(t, &paidAt, sig.PaidAt)
}
