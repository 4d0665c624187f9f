// Package Metrics exports benchmark ledgers as Prometheus metrics and optionally pushes them to a Pushgateway.
package Metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/g-m-twostay/repobench/Bench"
	"github.com/g-m-twostay/repobench/Ledger"
)

const namespace = "repobench"

// DefaultJob is the Pushgateway job name used when none is configured.
const DefaultJob = "repobench"

// Collector implements Bench.Observer. It owns its registry, so several collectors can coexist.
type Collector struct {
	Registry *prometheus.Registry
	actions  *prometheus.HistogramVec
	runs     *prometheus.GaugeVec
	maxes    *prometheus.GaugeVec
	total    *prometheus.CounterVec
}

func New() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		actions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "Duration of single Add, Remove and Clear calls.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"strategy"}),
		runs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of the measured phase of a run.",
		}, []string{"strategy", "executions"}),
		maxes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_max_action_seconds",
			Help:      "Largest single action duration of a run.",
		}, []string{"strategy", "executions"}),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Number of timed actions.",
		}, []string{"strategy"}),
	}
	c.Registry.MustRegister(c.actions, c.runs, c.maxes, c.total)
	return c
}

// Observe feeds one run into the collectors.
func (c *Collector) Observe(res Bench.Result, l *Ledger.Ledger) {
	h := c.actions.WithLabelValues(res.Type)
	n := 0
	l.Range(func(d time.Duration) bool {
		h.Observe(d.Seconds())
		n++
		return true
	})
	c.total.WithLabelValues(res.Type).Add(float64(n))
	size := strconv.FormatInt(res.Executions, 10)
	c.runs.WithLabelValues(res.Type, size).Set(res.Overall.Seconds())
	c.maxes.WithLabelValues(res.Type, size).Set(res.MaxPerAction.Seconds())
}

// Push sends the registry to the Pushgateway at url, replacing the metrics of job.
func (c *Collector) Push(ctx context.Context, url, job string) error {
	if job == "" {
		job = DefaultJob
	}
	if err := push.New(url, job).Gatherer(c.Registry).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
