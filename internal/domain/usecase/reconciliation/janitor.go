package reconciliation

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/domain/port/persistence"
)

// Janitor periodically removes terminal invoices older than the retention window
type Janitor struct {
	invoices     persistence.InvoiceRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	retention    time.Duration
	stopChan     chan struct{}
	stopOnce     sync.Once
	started      atomic.Bool
	done         chan struct{}
}

// NewJanitor creates a new retention janitor
func NewJanitor(
	invoices persistence.InvoiceRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	retention time.Duration,
) *Janitor {
	return &Janitor{
		invoices:     invoices,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		retention:    retention,
		stopChan:     make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start runs a sweep every interval until Stop is called
func (j *Janitor) Start(interval time.Duration) {
	if !j.started.CompareAndSwap(false, true) {
		return
	}
	ticker := time.NewTicker(interval)

	go func() {
		defer close(j.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := j.Sweep(context.Background()); err != nil {
					j.logger.Error("Invoice retention sweep failed", map[string]any{
						"error": err.Error(),
					})
				}
			case <-j.stopChan:
				return
			}
		}
	}()
}

// Stop stops the sweeping goroutine and waits for it to exit
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
	})
	if j.started.Load() {
		<-j.done
	}
}

// Sweep deletes terminal invoices last updated before now minus retention
func (j *Janitor) Sweep(ctx context.Context) (int64, error) {
	cutoff := j.timeProvider.Now().Add(-j.retention)

	purged, err := j.invoices.PurgeTerminalBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	j.metrics.InvoicesPurged(purged)
	if purged > 0 {
		j.logger.Info("Purged terminal invoices", map[string]any{
			"count":  purged,
			"cutoff": cutoff,
		})
	}
	return purged, nil
}
