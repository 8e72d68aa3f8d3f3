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

// Package routing is the central router registration package
package routing

import (
	"net/http"

	"github.com/trickstercache/b64callout/pkg/config"
	"github.com/trickstercache/b64callout/pkg/observability/logging"
	"github.com/trickstercache/b64callout/pkg/proxy/handlers/ping"
	"github.com/trickstercache/b64callout/pkg/proxy/handlers/transcode"
	"github.com/trickstercache/b64callout/pkg/util/middleware"
)

// RegisterRoutes registers the application's routes on the provided router:
// the ping handler and one decorated transcode route per configured callout
func RegisterRoutes(router *http.ServeMux, conf *config.Config,
	logger logging.Logger) {

	router.HandleFunc(http.MethodGet+" "+conf.Main.PingHandlerPath,
		ping.HandleFunc())

	for name, o := range conf.Callouts {
		if o == nil {
			continue
		}
		path := config.DefaultCalloutPathPrefix + name
		router.Handle(http.MethodPost+" "+path,
			middleware.Decorate(name, transcode.Handler(o, logger)))
		logger.Info("callout route registered", logging.Pairs{
			"callout": name,
			"path":    path,
		})
	}
}
