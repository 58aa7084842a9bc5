package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Cache metrics
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "The total number of cache reads served from a live entry.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "The total number of cache reads that invoked the producer.",
	})
	CacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cache_evictions_total",
		Help: "The total number of expired entries removed by the background sweep.",
	})
	CacheEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cache_entries",
		Help: "The current number of entries held by the in-process cache.",
	})

	// Auth metrics
	AuthSuccess = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_success_total",
		Help: "The total number of requests with a valid session.",
	})
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_failures_total",
		Help: "The total number of requests rejected by the auth middleware.",
	}, []string{"reason"})

	// Canvas metrics
	CanvasFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canvas_fetches_total",
		Help: "The total number of requests issued to the Canvas API.",
	}, []string{"endpoint"})
)
