package reconciliation_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/paybot/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/logger"
	mcore "github.com/amirhossein-jamali/paybot/mocks/port/core"
	mgateway "github.com/amirhossein-jamali/paybot/mocks/port/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const paidMessageEN = "Your payment has been received. Thank you!"

type fixture struct {
	db        *database.TestDBManager
	processor *mgateway.MockPaymentProcessor
	notifier  *mgateway.MockNotifier
	metrics   *mcore.MockMetrics
	service   *reconciliation.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	testDB := database.NewTestDBManager(t, logger.NewNoopLogger())

	f := &fixture{
		db:        testDB,
		processor: mgateway.NewMockPaymentProcessor(t),
		notifier:  mgateway.NewMockNotifier(t),
		metrics:   mcore.NewMockMetrics(t),
	}
	f.service = reconciliation.NewService(
		testDB.UnitOfWork(),
		f.processor,
		f.notifier,
		testDB.TimeProvider,
		testDB.Logger,
		f.metrics,
		reconciliation.Options{
			Price: entity.Price{
				Asset:       "TON",
				Amount:      decimal.RequireFromString("0.1"),
				Credits:     1,
				Entitlement: "premium",
			},
			Description:      "Premium access",
			ProcessorTimeout: time.Second,
			PaidMessages: map[entity.Language]string{
				entity.LanguageEnglish: paidMessageEN,
				entity.LanguageRussian: "Ваш платеж успешно принят! Спасибо!",
			},
		},
	)
	return f
}

// allowMetrics accepts any metric call not expected explicitly beforehand
func (f *fixture) allowMetrics() {
	f.metrics.EXPECT().SignalReceived(mock.Anything).Maybe()
	f.metrics.EXPECT().ReconciliationOutcome(mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().InvariantViolation(mock.Anything).Maybe()
	f.metrics.EXPECT().CreditApplied(mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().NotificationFailed().Maybe()
	f.metrics.EXPECT().ProcessorCall(mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.metrics.EXPECT().InvoicesPurged(mock.Anything).Maybe()
}

// track records a pending invoice as if RequestInvoice had issued it
func (f *fixture) track(t *testing.T, invoiceID string, userID int64, createdAt time.Time) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.db.UnitOfWork().GetInvoiceRepository(ctx).RecordPending(ctx, &entity.Invoice{
		InvoiceID:   invoiceID,
		UserID:      userID,
		Asset:       "TON",
		Amount:      "0.1",
		Credits:     1,
		Entitlement: "premium",
		Status:      entity.InvoiceStatusPending,
		CreatedAt:   createdAt,
	}))
}

func (f *fixture) invoice(t *testing.T, invoiceID string) *entity.Invoice {
	t.Helper()
	ctx := context.Background()
	invoice, err := f.db.UnitOfWork().GetInvoiceRepository(ctx).GetByInvoiceID(ctx, invoiceID)
	require.NoError(t, err)
	return invoice
}

func (f *fixture) account(t *testing.T, userID int64) *entity.Account {
	t.Helper()
	ctx := context.Background()
	account, err := f.db.UnitOfWork().GetAccountRepository(ctx).GetByID(ctx, userID)
	require.NoError(t, err)
	return account
}

func paidEvent(invoiceID, payload string) usecase.WebhookEvent {
	paidAt := time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)
	return usecase.WebhookEvent{
		UpdateID:   1,
		UpdateType: reconciliation.UpdateTypeInvoicePaid,
		Invoice: entity.ProcessorInvoice{
			InvoiceID: invoiceID,
			Status:    "paid",
			Asset:     "TON",
			Amount:    "0.10",
			Payload:   payload,
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			PaidAt:    &paidAt,
		},
	}
}

func TestRequestInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("Issues and tracks an invoice for a registered user", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		f.processor.EXPECT().CreateInvoice(mock.Anything, gateway.InvoiceRequest{
			Asset:       "TON",
			Amount:      "0.1",
			Payload:     "42",
			Description: "Premium access",
		}).Return(&entity.ProcessorInvoice{
			InvoiceID: "inv-1",
			Status:    "active",
			PayURL:    "https://t.me/CryptoBot?start=inv-1",
			CreatedAt: created,
		}, nil).Once()
		f.metrics.EXPECT().ProcessorCall("createInvoice", mock.Anything, nil).Once()

		link, err := f.service.RequestInvoice(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, "inv-1", link.InvoiceID)
		assert.Equal(t, "https://t.me/CryptoBot?start=inv-1", link.PayURL)
		assert.Equal(t, "TON", link.Asset)
		assert.Equal(t, "0.1", link.Amount)

		tracked := f.invoice(t, "inv-1")
		assert.Equal(t, int64(42), tracked.UserID)
		assert.Equal(t, entity.InvoiceStatusPending, tracked.Status)
		assert.False(t, tracked.Applied)
		assert.True(t, tracked.CreatedAt.Equal(created))
	})

	t.Run("Unregistered user gets no invoice", func(t *testing.T) {
		f := newFixture(t)

		link, err := f.service.RequestInvoice(ctx, 42)

		assert.Nil(t, link)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RequestInvoice(ctx, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Processor timeout is a transient fault and nothing is tracked", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.processor.EXPECT().CreateInvoice(mock.Anything, mock.Anything).
			Return(nil, context.DeadlineExceeded).Once()
		f.metrics.EXPECT().ProcessorCall("createInvoice", mock.Anything, context.DeadlineExceeded).Once()

		link, err := f.service.RequestInvoice(ctx, 42)

		assert.Nil(t, link)
		assert.ErrorIs(t, err, errs.ErrProcessorUnavailable)
		assert.True(t, errs.IsTransient(err))

		_, err = f.db.UnitOfWork().GetInvoiceRepository(ctx).LatestForUser(ctx, 42)
		assert.ErrorIs(t, err, errs.ErrInvoiceNotFound)
	})
}

func TestHandleWebhookEvent(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Paid invoice is credited once and replays are duplicates", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.notifier.EXPECT().Notify(mock.Anything, int64(42), paidMessageEN).Return(nil).Once()
		f.metrics.EXPECT().CreditApplied("TON", int64(1)).Once()
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeApplied, outcome)

		outcome, err = f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeDuplicate, outcome)

		account := f.account(t, 42)
		assert.Equal(t, int64(1), account.Balance)
		assert.Equal(t, []string{"premium"}, account.Entitlements)

		invoice := f.invoice(t, "inv-1")
		assert.True(t, invoice.Applied)
		assert.Equal(t, entity.InvoiceStatusPaid, invoice.Status)
	})

	t.Run("Notification goes out in the user's language", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "ru", 0)
		f.track(t, "inv-1", 42, created)
		f.notifier.EXPECT().Notify(mock.Anything, int64(42), "Ваш платеж успешно принят! Спасибо!").Return(nil).Once()
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeApplied, outcome)
	})

	t.Run("Lost notification does not undo the credit", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.notifier.EXPECT().Notify(mock.Anything, int64(42), mock.Anything).Return(errors.New("chat not found")).Once()
		f.metrics.EXPECT().NotificationFailed().Once()
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeApplied, outcome)
		assert.Equal(t, int64(1), f.db.AccountBalance(t, 42))
	})

	t.Run("Payload mismatch is rejected without any mutation", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.db.CreateTestAccount(t, 43, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.metrics.EXPECT().InvariantViolation(errs.ReasonPayloadMismatch).Once()
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "43"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeRejected, outcome)

		assert.Equal(t, int64(0), f.db.AccountBalance(t, 42))
		assert.Equal(t, int64(0), f.db.AccountBalance(t, 43))
		invoice := f.invoice(t, "inv-1")
		assert.False(t, invoice.Applied)
		assert.Equal(t, entity.InvoiceStatusPending, invoice.Status)
	})

	t.Run("Amount mismatch is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.metrics.EXPECT().InvariantViolation(errs.ReasonAmountMismatch).Once()
		f.allowMetrics()

		event := paidEvent("inv-1", "42")
		event.Invoice.Amount = "0.01"
		outcome, err := f.service.HandleWebhookEvent(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeRejected, outcome)
		assert.Equal(t, int64(0), f.db.AccountBalance(t, 42))
	})

	t.Run("Untracked invoice is discarded", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-404", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeUntracked, outcome)
		assert.Equal(t, int64(0), f.db.AccountBalance(t, 42))
	})

	t.Run("Missing account rolls the claim back", func(t *testing.T) {
		f := newFixture(t)
		f.track(t, "inv-1", 42, created)
		f.metrics.EXPECT().InvariantViolation(errs.ReasonAccountMissing).Once()
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeRejected, outcome)

		invoice := f.invoice(t, "inv-1")
		assert.False(t, invoice.Applied)
		assert.Equal(t, entity.InvoiceStatusPaid, invoice.Status)

		// The next signal credits once the account exists
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.notifier.EXPECT().Notify(mock.Anything, int64(42), paidMessageEN).Return(nil).Once()

		outcome, err = f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeApplied, outcome)
		assert.Equal(t, int64(1), f.db.AccountBalance(t, 42))
	})

	t.Run("Other update types are ignored", func(t *testing.T) {
		f := newFixture(t)
		f.metrics.EXPECT().ReconciliationOutcome("webhook", "ignored").Once()

		event := paidEvent("inv-1", "42")
		event.UpdateType = "invoice_expired"
		outcome, err := f.service.HandleWebhookEvent(ctx, event)
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeIgnored, outcome)
	})

	t.Run("Event without invoice ID is malformed", func(t *testing.T) {
		f := newFixture(t)
		f.metrics.EXPECT().InvariantViolation(errs.ReasonMalformedEvent).Once()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeRejected, outcome)
	})
}

func TestHandleManualCheck(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Paid invoice found by pull is credited", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-0", Status: "paid", Asset: "TON", Amount: "0.1", Payload: "7", CreatedAt: created.Add(time.Hour)},
			{InvoiceID: "inv-1", Status: "paid", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.notifier.EXPECT().Notify(mock.Anything, int64(42), paidMessageEN).Return(nil).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckPaid, result)
		assert.Equal(t, int64(1), f.db.AccountBalance(t, 42))
	})

	t.Run("Already credited invoice still reports paid", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.notifier.EXPECT().Notify(mock.Anything, int64(42), paidMessageEN).Return(nil).Once()
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-1", Status: "paid", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		require.Equal(t, entity.OutcomeApplied, outcome)

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckPaid, result)
		assert.Equal(t, int64(1), f.db.AccountBalance(t, 42))
	})

	t.Run("Open invoice is not paid yet", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-1", Status: "active", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckNotPaid, result)
		assert.Equal(t, int64(0), f.db.AccountBalance(t, 42))
	})

	t.Run("Expired invoice updates its status", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-1", Status: "expired", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.metrics.EXPECT().ReconciliationOutcome("manual_check", string(entity.OutcomeStatusUpdated)).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckNotPaid, result)
		assert.Equal(t, entity.InvoiceStatusExpired, f.invoice(t, "inv-1").Status)
	})

	t.Run("Expired invoice stays expired when reported open again", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-1", Status: "expired", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-1", Status: "active", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.metrics.EXPECT().ReconciliationOutcome("manual_check", string(entity.OutcomeStatusUpdated)).Once()
		f.metrics.EXPECT().ReconciliationOutcome("manual_check", string(entity.OutcomeUnchanged)).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckNotPaid, result)

		result, err = f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckNotPaid, result)
		assert.Equal(t, entity.InvoiceStatusExpired, f.invoice(t, "inv-1").Status)
	})

	t.Run("Paid report for an expired invoice is never credited", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-1", Status: "expired", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.metrics.EXPECT().InvariantViolation(errs.ReasonTerminalInvoice).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, entity.CheckNotPaid, result)

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		assert.Equal(t, entity.OutcomeRejected, outcome)

		invoice := f.invoice(t, "inv-1")
		assert.Equal(t, entity.InvoiceStatusExpired, invoice.Status)
		assert.False(t, invoice.Applied)
		assert.Equal(t, int64(0), f.db.AccountBalance(t, 42))
	})

	t.Run("Paid invoice purged after its credit is reported as unmatched", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.notifier.EXPECT().Notify(mock.Anything, int64(42), paidMessageEN).Return(nil).Once()
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-1", Status: "paid", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.allowMetrics()

		outcome, err := f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
		require.NoError(t, err)
		require.Equal(t, entity.OutcomeApplied, outcome)

		invoices := f.db.UnitOfWork().GetInvoiceRepository(ctx)
		purged, err := invoices.PurgeTerminalBefore(ctx, time.Now().UTC().Add(time.Hour))
		require.NoError(t, err)
		require.Equal(t, int64(1), purged)

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckUnmatched, result)
		assert.Equal(t, int64(1), f.db.AccountBalance(t, 42))
	})

	t.Run("Open invoice unknown to the tracker is not paid", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
			{InvoiceID: "inv-9", Status: "active", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
		}, nil).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckNotPaid, result)
	})

	t.Run("User with no invoices anywhere", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 7, "en", 0)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{}, nil).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckNoInvoice, result)
	})

	t.Run("Tracked invoice missing from the listing falls back to the tracker", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return(nil, nil).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, entity.CheckNotPaid, result)
	})

	t.Run("Processor timeout is transient and mutates nothing", func(t *testing.T) {
		f := newFixture(t)
		f.db.CreateTestAccount(t, 42, "en", 0)
		f.track(t, "inv-1", 42, created)
		f.processor.EXPECT().ListInvoices(mock.Anything).Return(nil, context.DeadlineExceeded).Once()
		f.allowMetrics()

		result, err := f.service.HandleManualCheck(ctx, 42)
		assert.Empty(t, result)
		assert.ErrorIs(t, err, errs.ErrProcessorUnavailable)
		assert.True(t, errs.IsTransient(err))
		assert.Equal(t, entity.InvoiceStatusPending, f.invoice(t, "inv-1").Status)
	})
}

func TestConcurrentPushAndPullCreditOnce(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	f := newFixture(t)
	f.db.CreateTestAccount(t, 42, "en", 0)
	f.track(t, "inv-1", 42, created)
	f.processor.EXPECT().ListInvoices(mock.Anything).Return([]entity.ProcessorInvoice{
		{InvoiceID: "inv-1", Status: "paid", Asset: "TON", Amount: "0.1", Payload: "42", CreatedAt: created},
	}, nil).Once()
	f.notifier.EXPECT().Notify(mock.Anything, int64(42), paidMessageEN).Return(nil).Once()
	f.metrics.EXPECT().CreditApplied("TON", int64(1)).Once()
	f.allowMetrics()

	var (
		wg            sync.WaitGroup
		webhookResult entity.Outcome
		webhookErr    error
		checkResult   entity.CheckResult
		checkErr      error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		webhookResult, webhookErr = f.service.HandleWebhookEvent(ctx, paidEvent("inv-1", "42"))
	}()
	go func() {
		defer wg.Done()
		checkResult, checkErr = f.service.HandleManualCheck(ctx, 42)
	}()
	wg.Wait()

	require.NoError(t, webhookErr)
	require.NoError(t, checkErr)
	assert.Contains(t, []entity.Outcome{entity.OutcomeApplied, entity.OutcomeDuplicate}, webhookResult)
	assert.Equal(t, entity.CheckPaid, checkResult)

	account := f.account(t, 42)
	assert.Equal(t, int64(1), account.Balance)
	assert.Equal(t, []string{"premium"}, account.Entitlements)
	assert.True(t, f.invoice(t, "inv-1").Applied)
}
