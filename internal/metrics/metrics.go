// Package metrics records block read-outs as Prometheus metrics.
package metrics

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/z340/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Collector holds the block metrics and exposes them as lifecycle hooks.
type Collector struct {
	blocks   *prometheus.CounterVec
	emitted  *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		blocks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "z340_blocks_total",
				Help: "Total number of blocks read out",
			},
			[]string{"block", "mode"},
		),
		emitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "z340_symbols_emitted_total",
				Help: "Symbols emitted by the walk or passed through",
			},
			[]string{"block"},
		),
		skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "z340_symbols_skipped_total",
				Help: "Walk steps that landed inside an exclusion window",
			},
			[]string{"block"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "z340_block_duration_seconds",
				Help:    "Duration of a block read-out",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 6),
			},
			[]string{"block"},
		),
	}

	for _, col := range []prometheus.Collector{c.blocks, c.emitted, c.skipped, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks that update the metrics.
func (c *Collector) Hooks() domain.Hooks {
	return domain.Hooks{
		OnBlockDone: func(_ context.Context, e *domain.BlockEvent) {
			c.blocks.WithLabelValues(e.Block, string(e.Mode)).Inc()
			c.emitted.WithLabelValues(e.Block).Add(float64(e.Emitted))
			c.skipped.WithLabelValues(e.Block).Add(float64(e.Skipped))
			c.duration.WithLabelValues(e.Block).Observe(e.Duration.Seconds())
		},
	}
}

// WriteText dumps every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
