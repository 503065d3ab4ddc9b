package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discussion_cache_hits_total",
		Help: "Number of cache lookups that found an entry.",
	}, []string{"cache"})

	cacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discussion_cache_misses_total",
		Help: "Number of cache lookups that found nothing.",
	}, []string{"cache"})

	cacheEvictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discussion_cache_evictions_total",
		Help: "Number of entries dropped for capacity or expiry. Explicit invalidations are not counted.",
	}, []string{"cache"})
)
