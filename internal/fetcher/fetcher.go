// Package fetcher implements the blocklist refresher: a periodic task pulling
// the phishing-domain feed and merging it into the domain store.
package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"phishguard/internal/config"
	"phishguard/pkg/logger"
	"phishguard/pkg/metrics"
	"phishguard/pkg/serrors"
	"phishguard/pkg/storage"

	"go.uber.org/zap"
)

// Options configure the feed endpoint and the refresh schedule.
type Options struct {
	// URL is the feed endpoint returning a JSON array of lowercase hosts.
	URL string
	// Interval is the period between fetch-and-merge cycles.
	Interval time.Duration
	// ReadTimeout bounds one whole fetch, distinct from the connect timeout,
	// so a hung upstream connection cannot stall the schedule.
	ReadTimeout time.Duration
	// ConnectTimeout bounds establishing the TCP connection to the feed.
	ConnectTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		URL:            cfg.Feed.URL,
		Interval:       cfg.Feed.Interval,
		ReadTimeout:    cfg.Feed.ReadTimeout,
		ConnectTimeout: cfg.Feed.ConnectTimeout,
	}
}

// Fetcher periodically pulls the blocklist feed and bulk-upserts the hosts
// into the domain store. The schedule is owned by the instance: Start and
// Stop are the only mutators, and ticks run on a single goroutine so fetches
// never overlap.
type Fetcher struct {
	options    Options
	domains    storage.DomainStorage
	httpClient *http.Client
	prom       *metrics.Prometheus

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Fetcher writing into the given domain store. prom may be nil
// when feed instrumentation is not wanted (e.g. in tests).
func New(domains storage.DomainStorage, prom *metrics.Prometheus, options Options) *Fetcher {
	return &Fetcher{
		options: options,
		domains: domains,
		prom:    prom,
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: options.ConnectTimeout,
				}).DialContext,
			},
		},
	}
}

// Run performs one fetch-and-merge cycle: GET the feed, decode the JSON host
// array and bulk-upsert it into the domain store. The error return exists for
// callers that want to observe failures (tests, manual runs); the periodic
// schedule logs and swallows it.
func (f *Fetcher) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, f.options.ReadTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.options.URL, nil)
	if err != nil {
		return fmt.Errorf("could not create feed request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, err, "feed fetch timed out")
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "could not reach feed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not read feed response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serrors.With(serrors.ErrUnavailable, "feed returned status %d", resp.StatusCode)
	}

	var hosts []string
	if err := json.Unmarshal(b, &hosts); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "malformed feed payload")
	}

	if err := f.domains.BulkAddDomains(ctx, hosts); err != nil {
		return fmt.Errorf("could not merge domains: %w", err)
	}

	if f.prom != nil {
		f.prom.FeedRunCompleted(len(hosts))
	}
	logger.Debug(ctx, "blocklist feed merged", zap.Int("hosts", len(hosts)))

	return nil
}

// Start performs one immediate Run and then arms the repeating schedule.
// Calling Start on an already started Fetcher is a no-op, so duplicate
// schedules cannot exist.
func (f *Fetcher) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.done = make(chan struct{})

	go f.loop(runCtx)
}

// loop runs cycles until the context is cancelled. A single goroutine owns
// the ticker, so a cycle outliving the interval delays the next tick instead
// of overlapping it.
func (f *Fetcher) loop(ctx context.Context) {
	defer close(f.done)

	f.runOnce(ctx)

	ticker := time.NewTicker(f.options.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.runOnce(ctx)
		}
	}
}

// runOnce executes one cycle, logging and swallowing any error so a failed
// tick never terminates the schedule.
func (f *Fetcher) runOnce(ctx context.Context) {
	if err := f.Run(ctx); err != nil {
		if f.prom != nil {
			f.prom.FeedRunFailed()
		}
		logger.Error(ctx, "could not refresh blocklist", zap.Error(err))
	}
}

// Stop disarms the schedule and waits for an in-flight cycle to finish.
// Stopping a Fetcher that was never started is a no-op.
func (f *Fetcher) Stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	<-done
}
