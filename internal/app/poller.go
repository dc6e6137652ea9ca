package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codescale/radar/internal/radarapi"
	"github.com/codescale/radar/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 30 * time.Second
)

// Poller refreshes the store from the backend on an interval, backing off
// while the backend is failing. Trigger forces an early refresh.
type Poller struct {
	store    *state.Store
	client   radarapi.Fetcher
	date     string
	interval time.Duration
	logger   *slog.Logger
	trigger  chan struct{}
}

// NewPoller builds a poller for the radar of date, the latest when empty.
func NewPoller(store *state.Store, client radarapi.Fetcher, date string, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		store:    store,
		client:   client,
		date:     date,
		interval: interval,
		logger:   logger,
		trigger:  make(chan struct{}, 1),
	}
}

// Start launches the polling goroutine and returns immediately.
func (p *Poller) Start(ctx context.Context) {
	go p.run(ctx)
}

// Trigger requests an immediate refresh. It never blocks; a pending
// request absorbs further ones.
func (p *Poller) Trigger() {
	if p == nil {
		return
	}
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

func (p *Poller) run(ctx context.Context) {
	failures := 0
	for {
		if err := p.Refresh(ctx); err != nil {
			failures++
		} else {
			failures = 0
		}
		if ctx.Err() != nil {
			return
		}

		wait := calculateBackoff(failures, p.interval)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-p.trigger:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// Refresh fetches health and the radar payload concurrently and stores the
// result. A failed health check is logged but does not fail the refresh.
func (p *Poller) Refresh(ctx context.Context) error {
	var (
		health    radarapi.Health
		healthErr error
		resp      radarapi.RadarResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		health, healthErr = p.client.FetchHealth(gctx)
		return nil
	})
	g.Go(func() error {
		var err error
		resp, err = p.client.FetchRadar(gctx, p.date)
		if err != nil {
			return fmt.Errorf("fetch radar: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		p.store.Update(state.Payload{}, err)
		p.logger.Warn("radar poll failed", "error", err)
		return err
	}

	payload := state.Payload{
		RadarDate: resp.RadarDate,
		Records:   radarapi.Records(resp.Trends),
	}
	if healthErr != nil {
		p.logger.Warn("health check failed", "error", healthErr)
	} else {
		payload.Health = &health
	}
	p.store.Update(payload, nil)
	p.logger.Debug("radar refreshed", "radar_date", resp.RadarDate, "trends", len(payload.Records))
	return nil
}

// calculateBackoff doubles base per consecutive failure, capped at
// maxBackoff. Intervals already above the cap are never shortened.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 || base >= maxBackoff {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
