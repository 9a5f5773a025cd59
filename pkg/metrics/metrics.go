// Package metrics exposes the instrumentation used across the service: a
// prometheus registry for counters and an OpenTelemetry histogram for check
// latency, exported through the prometheus exporter.
package metrics

import (
	"context"
	"fmt"
	"time"

	"phishguard/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// NewMeterProvider creates an otel meter provider whose instruments are
// exported through the given prometheus registerer, so otel-recorded metrics
// show up on the same scrape endpoint as the native collectors.
func NewMeterProvider(reg prometheus.Registerer) (otelmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Reporter is the fire-and-forget sink notified when an evaluation produces a
// positive abuse verdict. Implementations must not block the caller.
type Reporter interface {
	// AddAbusiveUser records one detected abusive account.
	AddAbusiveUser(verdict domain.CheckedUser)
}

// Prometheus implements Reporter and the feed/check instrumentation on top of
// a prometheus registerer and an otel meter provider.
type Prometheus struct {
	abusiveUsers  prometheus.Counter
	feedRuns      *prometheus.CounterVec
	feedDomains   prometheus.Counter
	checkDuration otelmetric.Float64Histogram
}

// NewPrometheus registers the service's collectors on reg and creates the
// check-duration histogram on the given meter provider.
func NewPrometheus(reg prometheus.Registerer, mp otelmetric.MeterProvider) (*Prometheus, error) {
	factory := promauto.With(reg)

	meter := mp.Meter("phishguard")
	checkDuration, err := meter.Float64Histogram(
		"member_check_duration_seconds",
		otelmetric.WithDescription("Duration of member abuse evaluations."),
		otelmetric.WithExplicitBucketBoundaries(DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create check duration histogram: %w", err)
	}

	return &Prometheus{
		abusiveUsers: factory.NewCounter(prometheus.CounterOpts{
			Name: "abusive_users_detected_total",
			Help: "Accounts whose username and avatar both matched.",
		}),
		feedRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blocklist_feed_runs_total",
			Help: "Blocklist feed fetch-and-merge cycles by outcome.",
		}, []string{"outcome"}),
		feedDomains: factory.NewCounter(prometheus.CounterOpts{
			Name: "blocklist_feed_domains_total",
			Help: "Hosts received from the blocklist feed.",
		}),
		checkDuration: checkDuration,
	}, nil
}

// AddAbusiveUser records one detected abusive account.
func (p *Prometheus) AddAbusiveUser(_ domain.CheckedUser) {
	p.abusiveUsers.Inc()
}

// FeedRunCompleted records a successful feed cycle that merged n hosts.
func (p *Prometheus) FeedRunCompleted(n int) {
	p.feedRuns.WithLabelValues("ok").Inc()
	p.feedDomains.Add(float64(n))
}

// FeedRunFailed records a failed feed cycle.
func (p *Prometheus) FeedRunFailed() {
	p.feedRuns.WithLabelValues("error").Inc()
}

// ObserveCheckDuration records the duration of one member evaluation tagged
// with its outcome ("clean", "username", "abusive" or "error").
func (p *Prometheus) ObserveCheckDuration(ctx context.Context, d time.Duration, outcome string) {
	p.checkDuration.Record(ctx, d.Seconds(),
		otelmetric.WithAttributes(attribute.String("outcome", outcome)))
}

// Ensure Prometheus conforms to Reporter at compile time.
var _ Reporter = (*Prometheus)(nil)
