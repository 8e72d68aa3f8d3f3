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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trickstercache/b64callout/pkg/config"
	"github.com/trickstercache/b64callout/pkg/observability/logging"
	"github.com/trickstercache/b64callout/pkg/observability/metrics"
	"github.com/trickstercache/b64callout/pkg/routing"
)

// serve starts the metrics and frontend listeners and blocks until the
// frontend listener exits or a termination signal arrives
func serve(conf *config.Config, logger logging.Logger) int {

	router := http.NewServeMux()
	routing.RegisterRoutes(router, conf, logger)

	addr := fmt.Sprintf("%s:%d", conf.Frontend.ListenAddress,
		conf.Frontend.ListenPort)
	timeout := time.Duration(conf.Frontend.TimeoutSecs) * time.Second
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := metrics.ListenAndServe(conf, logger); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics http service failed",
				logging.Pairs{"detail": err.Error()})
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigCh
		logger.Info("shutting down", logging.Pairs{"signal": s.String()})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info("frontend http service starting", logging.Pairs{"address": addr})
	if err := server.ListenAndServe(); err != nil &&
		!errors.Is(err, http.ErrServerClosed) {
		logger.Error("frontend http service failed",
			logging.Pairs{"detail": err.Error()})
		return 1
	}
	return 0
}
