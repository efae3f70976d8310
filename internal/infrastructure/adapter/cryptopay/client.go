package cryptopay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
)

// API endpoints per network
const (
	MainNetURL = "https://pay.crypt.bot/api"
	TestNetURL = "https://testnet-pay.crypt.bot/api"
)

const (
	methodCreateInvoice = "createInvoice"
	methodGetInvoices   = "getInvoices"

	tokenHeader = "Crypto-Pay-API-Token"

	defaultListCount = 100
)

// Config configures the Crypto Pay API client
type Config struct {
	Token     string
	Network   string // "mainnet" or "testnet"
	BaseURL   string // overrides Network when set
	ListCount int
}

// BaseURLFor resolves the API endpoint for a network name
func BaseURLFor(network string) string {
	if strings.EqualFold(strings.TrimSpace(network), "mainnet") {
		return MainNetURL
	}
	return TestNetURL
}

// Client is a minimal Crypto Pay API client
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	listCount  int
	logger     coreport.Logger
}

var _ gateway.PaymentProcessor = (*Client)(nil)

// NewClient constructs a new Crypto Pay client. Callers bound each call with the context deadline.
func NewClient(httpClient *http.Client, cfg Config, logger coreport.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = BaseURLFor(cfg.Network)
	}
	listCount := cfg.ListCount
	if listCount <= 0 {
		listCount = defaultListCount
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      cfg.Token,
		listCount:  listCount,
		logger:     logger,
	}
}

// apiResponse is the envelope around every API result
type apiResponse struct {
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
	Error  *apiError       `json:"error,omitempty"`
}

type apiError struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

type createInvoiceParams struct {
	Asset       string `json:"asset"`
	Amount      string `json:"amount"`
	Payload     string `json:"payload,omitempty"`
	Description string `json:"description,omitempty"`
}

type getInvoicesParams struct {
	Count int `json:"count"`
}

// CreateInvoice issues a new invoice. It is never retried here; a timeout may
// leave an invoice on the processor side that the bot does not track.
func (c *Client) CreateInvoice(ctx context.Context, req gateway.InvoiceRequest) (*entity.ProcessorInvoice, error) {
	params := createInvoiceParams{
		Asset:       req.Asset,
		Amount:      req.Amount,
		Payload:     req.Payload,
		Description: req.Description,
	}

	var inv Invoice
	if err := c.call(ctx, methodCreateInvoice, params, &inv); err != nil {
		return nil, err
	}

	converted, err := inv.ToEntity()
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

// ListInvoices returns the most recent invoices of the app
func (c *Client) ListInvoices(ctx context.Context) ([]entity.ProcessorInvoice, error) {
	var raw json.RawMessage
	if err := c.call(ctx, methodGetInvoices, getInvoicesParams{Count: c.listCount}, &raw); err != nil {
		return nil, err
	}

	items, err := decodeInvoiceList(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", errs.ErrProcessorUnavailable, methodGetInvoices, err.Error())
	}

	result := make([]entity.ProcessorInvoice, 0, len(items))
	for _, item := range items {
		converted, err := item.ToEntity()
		if err != nil {
			c.logger.Warn("Skipping undecodable processor invoice", map[string]any{
				"invoice_id": item.InvoiceID,
				"error":      err.Error(),
			})
			continue
		}
		result = append(result, converted)
	}
	return result, nil
}

// decodeInvoiceList accepts both {"items": [...]} and a bare array
func decodeInvoiceList(raw json.RawMessage) ([]Invoice, error) {
	var wrapped struct {
		Items []Invoice `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		return wrapped.Items, nil
	}

	var items []Invoice
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// call performs one API method and decodes its result into out
func (c *Client) call(ctx context.Context, method string, params any, out any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(tokenHeader, c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s timed out", errs.ErrProcessorUnavailable, method)
		}
		return fmt.Errorf("%w: %s: %s", errs.ErrProcessorUnavailable, method, err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("%w: %s: reading response: %s", errs.ErrProcessorUnavailable, method, err.Error())
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s: unexpected status %s", errs.ErrProcessorUnavailable, method, resp.Status)
	}

	var envelope apiResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("%w: %s: decoding response: %s", errs.ErrProcessorUnavailable, method, err.Error())
	}
	if !envelope.OK {
		apiErr := &errs.ProcessorError{Method: method, Code: resp.StatusCode}
		if envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Name = envelope.Error.Name
		}
		c.logger.Warn("Payment processor rejected request", apiErr.LogFields())
		return apiErr
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("%w: %s: decoding result: %s", errs.ErrProcessorUnavailable, method, err.Error())
	}

	c.logger.Debug("Payment processor call succeeded", map[string]any{
		"method": method,
		"status": resp.StatusCode,
	})
	return nil
}
