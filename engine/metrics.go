// SPDX-License-Identifier: MIT
// Package: capsphere/engine
//
// metrics.go: prometheus collectors for cache and compute time.

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the engine's collectors. With a nil Registerer they are
// created but not registered.
type metrics struct {
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	computeSeconds prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "capsphere_engine_cache_hits_total",
			Help: "Total number of scene requests served from the cache",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "capsphere_engine_cache_misses_total",
			Help: "Total number of scene requests that recomputed the scene",
		}),
		computeSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "capsphere_engine_compute_seconds",
			Help:    "Duration of graph build plus tessellation in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}
}
