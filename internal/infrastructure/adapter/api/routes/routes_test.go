package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/cryptopay"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/paybot/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/paybot/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	apiToken    = "123:abc"
	webhookPath = "/crypto-secret-path"
)

const paidUpdate = `{"update_id":77,"update_type":"invoice_paid","request_date":"2024-05-01T12:01:00.000Z",` +
	`"payload":{"invoice_id":1001,"status":"paid","asset":"TON","amount":"0.1","payload":"42",` +
	`"created_at":"2024-05-01T12:00:00.000Z","paid_at":"2024-05-01T12:01:00.000Z"}}`

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

type fixture struct {
	engine   *gin.Engine
	payments *usecasemocks.MockReconciliationUseCase
	metrics  *coremocks.MockMetrics
	verifier *cryptopay.Verifier
}

func newFixture(t *testing.T, pingErr error) *fixture {
	gin.SetMode(gin.TestMode)

	f := &fixture{
		engine:   gin.New(),
		payments: usecasemocks.NewMockReconciliationUseCase(t),
		metrics:  coremocks.NewMockMetrics(t),
		verifier: cryptopay.NewVerifier(apiToken),
	}
	log := logger.NewNoopLogger()

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "paybot_test_total", Help: "test"}))

	routes.SetupMiddlewares(f.engine, log)
	routes.SetupRoutes(f.engine, webhookPath,
		handler.NewWebhookHandler(f.payments, f.verifier, f.metrics, log),
		handler.NewHealthHandler(fakePinger{err: pingErr}, 0, log),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	return f
}

func (f *fixture) post(body string, signature string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, webhookPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(cryptopay.SignatureHeader, signature)
	}
	for k, values := range header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) postSigned(body string) *httptest.ResponseRecorder {
	return f.post(body, f.verifier.Sign([]byte(body)), nil)
}

func TestWebhookAppliesSignedUpdate(t *testing.T) {
	f := newFixture(t, nil)
	f.payments.EXPECT().HandleWebhookEvent(mock.Anything, mock.MatchedBy(func(e usecase.WebhookEvent) bool {
		return e.UpdateID == 77 &&
			e.UpdateType == "invoice_paid" &&
			e.Invoice.InvoiceID == "1001" &&
			e.Invoice.Payload == "42" &&
			e.Invoice.Status == "paid"
	})).Return(entity.OutcomeApplied, nil).Once()

	w := f.postSigned(paidUpdate)

	require.Equal(t, http.StatusOK, w.Code)
	var ack dto.WebhookAck
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.Equal(t, dto.WebhookAck{OK: true, Outcome: "applied"}, ack)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestWebhookPropagatesRequestID(t *testing.T) {
	f := newFixture(t, nil)
	f.payments.EXPECT().HandleWebhookEvent(mock.MatchedBy(func(ctx context.Context) bool {
		return coreport.RequestIDFromContext(ctx) == "req-123"
	}), mock.Anything).Return(entity.OutcomeDuplicate, nil).Once()

	body := paidUpdate
	w := f.post(body, f.verifier.Sign([]byte(body)), http.Header{middleware.RequestIDHeader: {"req-123"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestWebhookDiscardedOutcomesAreAcknowledged(t *testing.T) {
	for _, outcome := range []entity.Outcome{
		entity.OutcomeDuplicate,
		entity.OutcomeRejected,
		entity.OutcomeUntracked,
		entity.OutcomeIgnored,
	} {
		t.Run(string(outcome), func(t *testing.T) {
			f := newFixture(t, nil)
			f.payments.EXPECT().HandleWebhookEvent(mock.Anything, mock.Anything).Return(outcome, nil).Once()

			w := f.postSigned(paidUpdate)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), string(outcome))
		})
	}
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	for name, signature := range map[string]string{
		"missing": "",
		"wrong":   cryptopay.NewVerifier("other-token").Sign([]byte(paidUpdate)),
		"garbage": "zz",
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.metrics.EXPECT().InvariantViolation(errs.ReasonBadSignature).Once()

			w := f.post(paidUpdate, signature, nil)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprint(errs.CodeInvalidSignature))
		})
	}
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"not json":        `{"update_id":`,
		"missing payload": `{"update_id":1,"update_type":"invoice_paid"}`,
		"zero invoice id": `{"update_id":1,"update_type":"invoice_paid","payload":{"invoice_id":0,"status":"paid"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.metrics.EXPECT().InvariantViolation(errs.ReasonMalformedEvent).Once()

			w := f.postSigned(body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), fmt.Sprint(errs.CodeMalformedEvent))
		})
	}
}

func TestWebhookEngineFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"store unavailable", fmt.Errorf("%w: connection refused", errs.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"credit failed", errs.NewCreditError("1001", 42, 1, errs.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			f.payments.EXPECT().HandleWebhookEvent(mock.Anything, mock.Anything).Return(entity.OutcomeFailed, tt.err).Once()

			w := f.postSigned(paidUpdate)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestWebhookRejectsOversizedBody(t *testing.T) {
	f := newFixture(t, nil)
	body := bytes.Repeat([]byte("a"), handler.MaxWebhookBody+1)

	w := f.post(string(body), "00", nil)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealth(t *testing.T) {
	t.Run("Database reachable", func(t *testing.T) {
		f := newFixture(t, nil)
		w := httptest.NewRecorder()
		f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","database":"ok"}`, w.Body.String())
	})

	t.Run("Database down", func(t *testing.T) {
		f := newFixture(t, errors.New("dial tcp: connection refused"))
		w := httptest.NewRecorder()
		f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"degraded","database":"unreachable"}`, w.Body.String())
	})
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, nil)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "paybot_test_total 0")
}

func TestPanicIsRecovered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	routes.SetupMiddlewares(engine, logger.NewNoopLogger())
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprint(errs.CodeInternalServer))
}
