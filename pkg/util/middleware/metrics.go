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

package middleware

import (
	"net/http"
	"time"

	"github.com/trickstercache/b64callout/pkg/observability/metrics"
)

// Decorate decorates a handler in such a way that it captures both the
// returned status and the time used to serve a request from the front end
// perspective
func Decorate(calloutName string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observer := &responseObserver{w, "unknown"}

		n := time.Now()
		next.ServeHTTP(observer, r)

		metrics.FrontendRequestDuration.WithLabelValues(calloutName,
			r.Method, observer.status).Observe(time.Since(n).Seconds())
		metrics.FrontendRequestStatus.WithLabelValues(calloutName,
			r.Method, observer.status).Inc()
	})
}

type responseObserver struct {
	http.ResponseWriter

	status string
}

func (w *responseObserver) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	switch {
	case statusCode >= 100 && statusCode < 200:
		w.status = "1xx"
	case statusCode >= 200 && statusCode < 300:
		w.status = "2xx"
	case statusCode >= 300 && statusCode < 400:
		w.status = "3xx"
	case statusCode >= 400 && statusCode < 500:
		w.status = "4xx"
	case statusCode >= 500 && statusCode < 600:
		w.status = "5xx"
	}
}
