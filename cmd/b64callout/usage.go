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

	"github.com/trickstercache/b64callout/pkg/runtime"
)

const usageText = `
b64callout Usage:

 Print Version Info:
  b64callout -version

 Start the server using a configuration file:
  b64callout -config /path/to/b64callout.yaml [-log-level debug|info|warn|error] [-listen-port 8480] [-metrics-port 8481]

 Execute a single configured callout against a file or stdin and print the
 published variables:
  b64callout -config /path/to/b64callout.yaml -callout encoder [-input /path/to/body.bin]

------

The configuration file maps named callouts to their properties. A minimal example:

  callouts:
    encoder:
      action: encode
      line_length: "76"
    decoder:
      action: decode
      mime_type: "{request.header.x-detected-type}"

The server registers POST /callouts/<name> for each configured callout and
applies it to the request body. Default log level is info; override in the
config file or with -log-level.
`

func version() string {
	return fmt.Sprintf("%s version: %s, buildInfo: %s %s, goVersion: %s",
		runtime.ApplicationName, runtime.ApplicationVersion,
		applicationBuildTime, applicationGitCommitID,
		applicationGoVersion,
	)
}

func printVersion() {
	fmt.Println(version())
}

func printUsage() {
	fmt.Print(usageText)
}
