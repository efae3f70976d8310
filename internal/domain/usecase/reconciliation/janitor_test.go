package reconciliation

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/paybot/internal/domain/error"
	mcore "github.com/amirhossein-jamali/paybot/mocks/port/core"
	mpers "github.com/amirhossein-jamali/paybot/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestJanitorSweep(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	retention := 30 * 24 * time.Hour

	t.Run("Purges with the retention cutoff", func(t *testing.T) {
		invoices := mpers.NewMockInvoiceRepository(t)
		timeProvider := mcore.NewMockTimeProvider(t)
		logger := mcore.NewMockLogger(t)
		metrics := mcore.NewMockMetrics(t)

		timeProvider.EXPECT().Now().Return(now)
		invoices.EXPECT().PurgeTerminalBefore(mock.Anything, now.Add(-retention)).Return(int64(3), nil).Once()
		metrics.EXPECT().InvoicesPurged(int64(3)).Once()
		logger.EXPECT().Info("Purged terminal invoices", mock.Anything).Once()

		purged, err := NewJanitor(invoices, timeProvider, logger, metrics, retention).Sweep(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), purged)
	})

	t.Run("Nothing to purge logs nothing", func(t *testing.T) {
		invoices := mpers.NewMockInvoiceRepository(t)
		timeProvider := mcore.NewMockTimeProvider(t)
		logger := mcore.NewMockLogger(t)
		metrics := mcore.NewMockMetrics(t)

		timeProvider.EXPECT().Now().Return(now)
		invoices.EXPECT().PurgeTerminalBefore(mock.Anything, mock.Anything).Return(int64(0), nil).Once()
		metrics.EXPECT().InvoicesPurged(int64(0)).Once()

		purged, err := NewJanitor(invoices, timeProvider, logger, metrics, retention).Sweep(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, purged)
	})

	t.Run("Store failure is returned", func(t *testing.T) {
		invoices := mpers.NewMockInvoiceRepository(t)
		timeProvider := mcore.NewMockTimeProvider(t)
		logger := mcore.NewMockLogger(t)
		metrics := mcore.NewMockMetrics(t)

		timeProvider.EXPECT().Now().Return(now)
		invoices.EXPECT().PurgeTerminalBefore(mock.Anything, mock.Anything).
			Return(int64(0), errors.Join(errs.ErrStoreUnavailable, errors.New("disk I/O error"))).Once()

		_, err := NewJanitor(invoices, timeProvider, logger, metrics, retention).Sweep(context.Background())

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})
}

func TestJanitorStartStop(t *testing.T) {
	invoices := mpers.NewMockInvoiceRepository(t)
	timeProvider := mcore.NewMockTimeProvider(t)
	logger := mcore.NewMockLogger(t)
	metrics := mcore.NewMockMetrics(t)

	swept := make(chan struct{}, 1)
	timeProvider.EXPECT().Now().Return(time.Now().UTC()).Maybe()
	invoices.EXPECT().PurgeTerminalBefore(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, cutoff time.Time) {
			select {
			case swept <- struct{}{}:
			default:
			}
		}).
		Return(int64(0), nil).Maybe()
	metrics.EXPECT().InvoicesPurged(int64(0)).Maybe()

	janitor := NewJanitor(invoices, timeProvider, logger, metrics, time.Hour)
	janitor.Start(10 * time.Millisecond)

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not sweep")
	}

	janitor.Stop()
	janitor.Stop()
}

func TestJanitorStopWithoutStart(t *testing.T) {
	janitor := NewJanitor(nil, nil, nil, nil, time.Hour)

	done := make(chan struct{})
	go func() {
		janitor.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked without Start")
	}
}
