/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var defaultBuildDurationBuckets = prometheus.ExponentialBuckets(0.00005, 2, 16)

// Metrics holds the collectors updated by the server. They live in their own
// registry so several servers can run in one process.
type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	buildDuration *prometheus.HistogramVec
	headerRows    *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them
func NewMetrics() *Metrics {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridhead_header_requests_total",
			Help: "Header requests by grid, format and status code.",
		},
		[]string{"grid", "format", "code"},
	)
	buildDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridhead_header_build_seconds",
			Help:    "Time spent laying out and resolving a header.",
			Buckets: defaultBuildDurationBuckets,
		},
		[]string{"grid"},
	)
	headerRows := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridhead_header_rows",
			Help: "Number of rows of the last header built for a grid.",
		},
		[]string{"grid"},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests, buildDuration, headerRows)

	return &Metrics{
		registry:      registry,
		requests:      requests,
		buildDuration: buildDuration,
		headerRows:    headerRows,
	}
}

// Registry returns the registry to expose, e.g. with promhttp.HandlerFor
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
