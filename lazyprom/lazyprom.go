// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lazyprom instruments lazy producers with Prometheus metrics and
// structured logs.
//
// A producer wrapped by a [Collector] counts every run, failure and its
// duration under a caller-chosen name. Because a suspension runs its
// producer at most once per successful force, the run counter of a
// shared cell stays at one however many consumers observe it.
//
//	c, err := lazyprom.New(lazyprom.WithRegisterer(reg))
//	cfg := lazyprom.Defer(c, "config", loadConfig)
//	v, err := cfg.Force()
package lazyprom

import (
	"context"
	"log/slog"
	"time"

	"code.hybscloud.com/lazy"
	"code.hybscloud.com/lazy/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "lazy"

// Collector holds the producer metrics and the logger.
type Collector struct {
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	logger   *slog.Logger
}

type options struct {
	namespace  string
	registerer prometheus.Registerer
	logger     *slog.Logger
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace. Default "lazy".
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithRegisterer sets where metrics are registered.
// Default prometheus.DefaultRegisterer.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) { o.registerer = r }
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithLogLevel logs to stderr at level.
func WithLogLevel(level slog.Level) Option {
	return func(o *options) { o.logger = logging.New(level) }
}

// New creates a Collector and registers its metrics.
// Registering twice on one registerer with the same namespace fails.
func New(opts ...Option) (*Collector, error) {
	o := options{
		namespace:  defaultNamespace,
		registerer: prometheus.DefaultRegisterer,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "producer_runs_total",
			Help:      "Total number of producer invocations.",
		}, []string{"name"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "producer_failures_total",
			Help:      "Total number of producer invocations that returned an error.",
		}, []string{"name"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "producer_duration_seconds",
			Help:      "Duration of producer invocations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"name"}),
		logger: o.logger,
	}
	for _, m := range []prometheus.Collector{c.runs, c.failures, c.duration} {
		if err := o.registerer.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// observe records one producer run.
func (c *Collector) observe(name string, start time.Time, err error) {
	elapsed := time.Since(start)
	c.runs.WithLabelValues(name).Inc()
	c.duration.WithLabelValues(name).Observe(elapsed.Seconds())
	if err != nil {
		c.failures.WithLabelValues(name).Inc()
		c.logger.Warn("producer failed", "name", name, "duration", elapsed, "error", err)
		return
	}
	c.logger.Debug("producer ran", "name", name, "duration", elapsed)
}

// Instrument wraps f so each call is recorded under name. A call that
// panics is recorded as a failure before the panic continues.
func Instrument[A any](c *Collector, name string, f func() (A, error)) func() (A, error) {
	return func() (A, error) {
		return run(c, name, f)
	}
}

func run[A any](c *Collector, name string, f func() (A, error)) (a A, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.observe(name, start, &lazy.PanicError{Value: r})
			panic(r)
		}
		c.observe(name, start, err)
	}()
	return f()
}

// Defer is lazy.Defer with an instrumented producer.
func Defer[A any](c *Collector, name string, f func() (A, error)) *lazy.Lazy[A] {
	return lazy.Defer(Instrument(c, name, f))
}

// Delay is lazy.Delay with an instrumented producer.
func Delay[A any](c *Collector, name string, f func() A) *lazy.Lazy[A] {
	return Defer(c, name, func() (A, error) { return f(), nil })
}

// Shared is lazy.NewShared with an instrumented producer.
func Shared[A any](c *Collector, name string, f func(context.Context) (A, error)) *lazy.Shared[A] {
	return lazy.NewShared(func(ctx context.Context) (A, error) {
		return run(c, name, func() (A, error) { return f(ctx) })
	})
}
