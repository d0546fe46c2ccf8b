// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeNoMatch   = "no_match"
	outcomeHTTPError = "http_error"
	outcomeTransport = "transport_error"
	outcomeMalformed = "malformed"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dni_gateway_upstream_requests_total",
			Help: "Upstream registry requests by query kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dni_gateway_upstream_request_duration_seconds",
			Help:    "Upstream registry request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)
