// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shakesearch_http_requests_total",
		Help: "Total number of HTTP requests by route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shakesearch_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	searchResultsTotal = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "shakesearch_search_fragments",
		Help:    "Number of fragments returned per search.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	rateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shakesearch_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	})
)
