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
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/trickstercache/b64callout/pkg/callout"
	"github.com/trickstercache/b64callout/pkg/callout/vars"
	"github.com/trickstercache/b64callout/pkg/config"
	"github.com/trickstercache/b64callout/pkg/observability/logging"
	"github.com/trickstercache/b64callout/pkg/observability/metrics"
)

// runOnce executes a single named callout against the provided input and
// prints the published variables, one name=value per line. The exit code
// mirrors the callout outcome: 0 for success, 1 for abort.
func runOnce(conf *config.Config, flags *config.Flags, logger logging.Logger,
	stdin io.Reader, stdout io.Writer) int {

	o, ok := conf.Callouts[flags.CalloutName]
	if !ok || o == nil {
		logger.Error("unknown callout", logging.Pairs{"callout": flags.CalloutName})
		return 1
	}

	body := stdin
	if flags.InputPath != "" {
		f, err := os.Open(flags.InputPath)
		if err != nil {
			logger.Error("could not open input file", logging.Pairs{
				"path":   flags.InputPath,
				"detail": err.Error(),
			})
			return 1
		}
		defer f.Close()
		body = f
	}

	mc := vars.Map{}
	start := time.Now()
	status := callout.Execute(o, mc, body)

	action := mc.Get(vars.Name(vars.Action))
	metrics.CalloutExecutions.WithLabelValues(
		o.Name, action, status.String()).Inc()
	metrics.CalloutExecutionDuration.WithLabelValues(
		o.Name, action, status.String()).Observe(time.Since(start).Seconds())

	keys := make([]string, 0, len(mc))
	for k := range mc {
		if strings.HasPrefix(k, vars.Prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(stdout, "%s=%s\n", k, mc.Get(k))
	}

	if status != callout.StatusSuccess {
		return 1
	}
	return 0
}
