/*
 * Copyright 2024 The Trickster Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics implements prometheus metrics and exposes the metrics HTTP listener
package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/trickstercache/b64callout/pkg/config"
	"github.com/trickstercache/b64callout/pkg/observability/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricNamespace   = "b64callout"
	calloutSubsystem  = "callout"
	frontendSubsystem = "frontend"
	buildSubsystem    = "build"
)

// Default histogram buckets
var defaultBuckets = []float64{0.05, 0.1, 0.5, 1, 5, 10, 20}

// BuildInfo is a Gauge representing the binary build information of the running instance
var BuildInfo *prometheus.GaugeVec

// CalloutExecutions is a Counter of callout executions by callout name, action and status
var CalloutExecutions *prometheus.CounterVec

// CalloutExecutionDuration is a Histogram of time required in seconds to execute a callout
var CalloutExecutionDuration *prometheus.HistogramVec

// CalloutBytesOut is a Counter of result bytes published by callout executions
var CalloutBytesOut *prometheus.CounterVec

// FrontendRequestStatus is a Counter of front end requests that have been processed with their status
var FrontendRequestStatus *prometheus.CounterVec

// FrontendRequestDuration is a histogram that tracks the time it takes to process a request
var FrontendRequestDuration *prometheus.HistogramVec

func init() {

	BuildInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Subsystem: buildSubsystem,
			Name:      "info",
			Help: "A metric with a constant '1' value labeled by version," +
				"revision, and goversion from which the application was built.",
		},
		[]string{"goversion", "revision", "version"},
	)

	CalloutExecutions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: calloutSubsystem,
			Name:      "executions_total",
			Help:      "Count of callout executions.",
		},
		[]string{"callout", "action", "status"},
	)

	CalloutExecutionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Subsystem: calloutSubsystem,
			Name:      "execution_duration_seconds",
			Help:      "Time required to execute a callout.",
			Buckets:   defaultBuckets,
		},
		[]string{"callout", "action", "status"},
	)

	CalloutBytesOut = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: calloutSubsystem,
			Name:      "bytes_out_total",
			Help:      "Count of result bytes published by callout executions.",
		},
		[]string{"callout", "action"},
	)

	FrontendRequestStatus = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Subsystem: frontendSubsystem,
			Name:      "requests_total",
			Help:      "Count of front end requests handled by the application.",
		},
		[]string{"callout", "method", "http_status"},
	)

	FrontendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Subsystem: frontendSubsystem,
			Name:      "requests_duration_seconds",
			Help:      "Time required to handle a front end request.",
			Buckets:   defaultBuckets,
		},
		[]string{"callout", "method", "http_status"},
	)

	prometheus.MustRegister(
		BuildInfo,
		CalloutExecutions,
		CalloutExecutionDuration,
		CalloutBytesOut,
		FrontendRequestStatus,
		FrontendRequestDuration,
	)
}

// ListenAndServe starts the metrics listener, exposing /metrics on the
// configured address; it blocks until the listener fails or is closed
func ListenAndServe(conf *config.Config, logger logging.Logger) error {
	if conf == nil || conf.Metrics == nil {
		return nil
	}
	addr := fmt.Sprintf("%s:%d", conf.Metrics.ListenAddress, conf.Metrics.ListenPort)
	logger.Info("metrics http service starting", logging.Pairs{"address": addr})
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return server.ListenAndServe()
}
