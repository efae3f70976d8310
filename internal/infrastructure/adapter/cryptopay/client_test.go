package cryptopay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.Client(), Config{Token: "123:abc", BaseURL: server.URL}, logger.NewNoopLogger())
}

func TestCreateInvoice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/createInvoice", r.URL.Path)
		assert.Equal(t, "123:abc", r.Header.Get(tokenHeader))

		var params map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "TON", params["asset"])
		assert.Equal(t, "0.1", params["amount"])
		assert.Equal(t, "42", params["payload"])

		_, _ = io.WriteString(w, `{"ok":true,"result":{"invoice_id":1001,"status":"active","asset":"TON","amount":"0.1",`+
			`"bot_invoice_url":"https://t.me/CryptoTestnetBot?start=IVabc","payload":"42","created_at":"2024-05-01T12:00:00.000Z"}}`)
	})

	invoice, err := client.CreateInvoice(context.Background(), gateway.InvoiceRequest{
		Asset:   "TON",
		Amount:  "0.1",
		Payload: "42",
	})

	require.NoError(t, err)
	assert.Equal(t, "1001", invoice.InvoiceID)
	assert.Equal(t, "active", invoice.Status)
	assert.Equal(t, "https://t.me/CryptoTestnetBot?start=IVabc", invoice.PayURL)
	assert.Equal(t, "42", invoice.Payload)
	assert.True(t, invoice.CreatedAt.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
	assert.Nil(t, invoice.PaidAt)
}

func TestCreateInvoiceAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"ok":false,"error":{"code":400,"name":"AMOUNT_TOO_SMALL"}}`)
	})

	_, err := client.CreateInvoice(context.Background(), gateway.InvoiceRequest{Asset: "TON", Amount: "0.0001"})

	var apiErr *errs.ProcessorError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, methodCreateInvoice, apiErr.Method)
	assert.Equal(t, "AMOUNT_TOO_SMALL", apiErr.Name)
	assert.ErrorIs(t, err, errs.ErrProcessorRejected)
	assert.True(t, errs.IsTransient(err))
}

func TestCreateInvoiceTimeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.CreateInvoice(ctx, gateway.InvoiceRequest{Asset: "TON", Amount: "0.1"})

	assert.ErrorIs(t, err, errs.ErrProcessorUnavailable)
	assert.Contains(t, err.Error(), "timed out")
}

func TestServerErrorIsUnavailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListInvoices(context.Background())

	assert.ErrorIs(t, err, errs.ErrProcessorUnavailable)
}

func TestListInvoices(t *testing.T) {
	tests := []struct {
		name   string
		result string
	}{
		{
			name: "Items object",
			result: `{"items":[` +
				`{"invoice_id":1,"status":"paid","asset":"ton","amount":"0.1","payload":"42","created_at":"2024-05-01T12:00:00Z","paid_at":"2024-05-01T12:01:00Z"},` +
				`{"invoice_id":0,"status":"active"},` +
				`{"invoice_id":2,"status":"active","asset":"TON","amount":"0.1","payload":"7","created_at":"2024-05-01T12:02:00Z"}]}`,
		},
		{
			name: "Bare array",
			result: `[` +
				`{"invoice_id":1,"status":"paid","asset":"ton","amount":"0.1","payload":"42","created_at":"2024-05-01T12:00:00Z","paid_at":"2024-05-01T12:01:00Z"},` +
				`{"invoice_id":2,"status":"active","asset":"TON","amount":"0.1","payload":"7","created_at":"2024-05-01T12:02:00Z"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/getInvoices", r.URL.Path)
				var params map[string]int
				require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
				assert.Equal(t, defaultListCount, params["count"])
				_, _ = io.WriteString(w, `{"ok":true,"result":`+tt.result+`}`)
			})

			invoices, err := client.ListInvoices(context.Background())

			require.NoError(t, err)
			require.Len(t, invoices, 2)
			assert.Equal(t, "1", invoices[0].InvoiceID)
			assert.Equal(t, "TON", invoices[0].Asset)
			assert.Equal(t, "paid", invoices[0].Status)
			require.NotNil(t, invoices[0].PaidAt)
			assert.Equal(t, "7", invoices[1].Payload)
		})
	}
}

func TestBaseURLFor(t *testing.T) {
	assert.Equal(t, MainNetURL, BaseURLFor("MAINNET"))
	assert.Equal(t, TestNetURL, BaseURLFor("testnet"))
	assert.Equal(t, TestNetURL, BaseURLFor(""))
}
