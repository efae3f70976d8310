package telegram

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/chat"
)

// UpdateHandler processes one chat update
type UpdateHandler interface {
	Handle(ctx context.Context, upd chat.Update) error
}

// HandlerFunc adapts a function to UpdateHandler
type HandlerFunc func(ctx context.Context, upd chat.Update) error

// Handle calls f(ctx, upd)
func (f HandlerFunc) Handle(ctx context.Context, upd chat.Update) error {
	return f(ctx, upd)
}

// PollerConfig tunes the long-polling loop
type PollerConfig struct {
	PollTimeout   time.Duration // how long getUpdates may wait for new updates
	RetryDelay    time.Duration // pause after a failed getUpdates
	HandleTimeout time.Duration // budget for handling a single update
}

// Poller long-polls the Bot API and handles every update in its own goroutine
type Poller struct {
	client   *Client
	handler  UpdateHandler
	logger   coreport.Logger
	cfg      PollerConfig
	cancel   context.CancelFunc
	started  atomic.Bool
	done     chan struct{}
	inFlight sync.WaitGroup
}

// NewPoller creates a new update poller
func NewPoller(client *Client, handler UpdateHandler, logger coreport.Logger, cfg PollerConfig) *Poller {
	if cfg.PollTimeout < 0 {
		cfg.PollTimeout = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 3 * time.Second
	}
	if cfg.HandleTimeout <= 0 {
		cfg.HandleTimeout = 30 * time.Second
	}
	return &Poller{
		client:  client,
		handler: handler,
		logger:  logger,
		cfg:     cfg,
		done:    make(chan struct{}),
	}
}

// Start begins polling until Stop is called or ctx is cancelled
func (p *Poller) Start(ctx context.Context) {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	ctx, p.cancel = context.WithCancel(ctx)

	go func() {
		defer close(p.done)
		p.run(ctx)
	}()

	p.logger.Info("Telegram poller started", map[string]any{
		"poll_timeout": p.cfg.PollTimeout.String(),
	})
}

// Stop ends polling and waits for in-flight updates to finish
func (p *Poller) Stop() {
	if !p.started.Load() {
		return
	}
	p.cancel()
	<-p.done
	p.inFlight.Wait()
	p.logger.Info("Telegram poller stopped", map[string]any{})
}

func (p *Poller) run(ctx context.Context) {
	var offset int64
	for ctx.Err() == nil {
		updates, err := p.client.GetUpdates(ctx, offset, p.cfg.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Warn("Fetching updates failed", map[string]any{
				"error":  err.Error(),
				"offset": offset,
			})
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.cfg.RetryDelay):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			upd, ok := u.ToChat()
			if !ok {
				continue
			}
			p.inFlight.Add(1)
			go p.dispatch(ctx, upd)
		}
	}
}

// dispatch handles one update. Handling outlives Stop so replies already in progress are delivered.
func (p *Poller) dispatch(ctx context.Context, upd chat.Update) {
	defer p.inFlight.Done()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Panic while handling update", map[string]any{
				"update_id": upd.UpdateID,
				"user_id":   upd.UserID,
				"panic":     fmt.Sprint(r),
			})
		}
	}()

	handleCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.cfg.HandleTimeout)
	defer cancel()

	if err := p.handler.Handle(handleCtx, upd); err != nil {
		p.logger.Warn("Reply not delivered", map[string]any{
			"update_id": upd.UpdateID,
			"user_id":   upd.UserID,
			"error":     err.Error(),
		})
	}
}
