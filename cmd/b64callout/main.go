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

// Package main is the main package for the b64callout application
package main

import (
	"fmt"
	"os"
	goruntime "runtime"

	"github.com/trickstercache/b64callout/pkg/config"
	"github.com/trickstercache/b64callout/pkg/observability/logging"
	"github.com/trickstercache/b64callout/pkg/observability/metrics"
	"github.com/trickstercache/b64callout/pkg/runtime"
)

var (
	applicationGitCommitID string
	applicationBuildTime   string
	applicationGoVersion   = goruntime.Version()
)

const (
	applicationName    = "b64callout"
	applicationVersion = "1.0.0"
)

func main() {
	runtime.ApplicationName = applicationName
	runtime.ApplicationVersion = applicationVersion
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {

	conf, flags, err := config.Load(applicationName, args)
	if err != nil {
		fmt.Println("\nERROR: Could not load configuration:", err.Error())
		printUsage()
		return 1
	}
	if flags.PrintVersion {
		printVersion()
		return 0
	}
	if flags.ValidateConfig {
		fmt.Println(applicationName + " configuration validation succeeded.")
		return 0
	}

	logger := logging.New(conf)
	defer logger.Close()

	metrics.BuildInfo.WithLabelValues(applicationGoVersion,
		applicationGitCommitID, applicationVersion).Set(1)

	if flags.CalloutName != "" {
		return runOnce(conf, flags, logger, os.Stdin, os.Stdout)
	}
	return serve(conf, logger)
}
