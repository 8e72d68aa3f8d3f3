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

// Package transcode provides the HTTP handler that executes a named callout
// against the request body and returns the transcoded payload
package transcode

import (
	"net/http"
	"strings"
	"time"

	"github.com/trickstercache/b64callout/pkg/callout"
	"github.com/trickstercache/b64callout/pkg/callout/options"
	"github.com/trickstercache/b64callout/pkg/callout/vars"
	"github.com/trickstercache/b64callout/pkg/observability/logging"
	"github.com/trickstercache/b64callout/pkg/observability/metrics"
	"github.com/trickstercache/b64callout/pkg/proxy/headers"
)

// Handler returns a handler that executes the provided callout options
// against each request body. The request's method, path and headers are
// seeded into the execution context so callout properties can reference
// them, e.g. mime_type: "{request.header.content-type}".
func Handler(o *options.Options, logger logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		mc := newRequestContext(r)
		start := time.Now()
		status := callout.Execute(o, mc, r.Body)
		r.Body.Close()

		action := mc.Get(vars.Name(vars.Action))
		metrics.CalloutExecutions.WithLabelValues(
			o.Name, action, status.String()).Inc()
		metrics.CalloutExecutionDuration.WithLabelValues(
			o.Name, action, status.String()).Observe(time.Since(start).Seconds())

		if status != callout.StatusSuccess {
			writeAbort(w, o.Name, mc, logger)
			return
		}

		result, contentType := resultPayload(mc)
		metrics.CalloutBytesOut.WithLabelValues(o.Name, action).Add(float64(len(result)))
		logger.Debug("callout executed", logging.Pairs{
			"callout":  o.Name,
			"action":   action,
			"bytesOut": len(result),
		})

		h := w.Header()
		h.Set(headers.NameContentType, contentType)
		h.Set(headers.NameB64Action, action)
		if mc.Get(vars.Name(vars.WantString)) == "true" {
			h.Set(headers.NameB64WantString, "true")
		}
		if mt := mc.Get(vars.Name(vars.MimeType)); mt != "" {
			h.Set(headers.NameB64MimeType, mt)
		}
		w.WriteHeader(http.StatusOK)
		w.Write(result)
	})
}

// newRequestContext returns an execution context seeded with ambient
// request variables
func newRequestContext(r *http.Request) vars.Map {
	mc := vars.Map{
		"request.method": r.Method,
		"request.path":   r.URL.Path,
	}
	for k := range r.Header {
		mc.Set("request.header."+strings.ToLower(k), r.Header.Get(k))
	}
	return mc
}

// resultPayload extracts the published result in byte form, along with the
// response content type for the output kind
func resultPayload(mc vars.Map) ([]byte, string) {
	switch v := mc[vars.Name(vars.Result)].(type) {
	case string:
		return []byte(v), headers.ValueTextPlain
	case []byte:
		if mt := mc.Get(vars.Name(vars.MimeType)); mt != "" {
			return v, mt
		}
		return v, headers.ValueOctetStream
	}
	return nil, headers.ValueOctetStream
}

func writeAbort(w http.ResponseWriter, name string, mc vars.Map,
	logger logging.Logger) {
	errMsg := mc.Get(vars.Name(vars.Error))
	logger.Error("callout aborted", logging.Pairs{
		"callout": name,
		"error":   errMsg,
		"detail":  mc.Get(vars.Name(vars.Exception)),
	})
	h := w.Header()
	h.Set(headers.NameContentType, headers.ValueTextPlain)
	h.Set(headers.NameB64Error, errMsg)
	w.WriteHeader(http.StatusBadRequest)
	w.Write([]byte(errMsg))
}
