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

package config

import (
	"flag"
	"io"
)

const (
	// Command-line flags
	cfConfig      = "config"
	cfVersion     = "version"
	cfValidate    = "validate-config"
	cfLogLevel    = "log-level"
	cfInstanceID  = "instance-id"
	cfProxyPort   = "listen-port"
	cfMetricsPort = "metrics-port"
	cfCallout     = "callout"
	cfInput       = "input"
)

// Flags holds the values for whitelisted flags
type Flags struct {
	PrintVersion      bool
	ValidateConfig    bool
	customPath        bool
	FrontendPort      int
	MetricsListenPort int
	InstanceID        int
	ConfigPath        string
	LogLevel          string
	CalloutName       string
	InputPath         string
}

func parseFlags(applicationName string, arguments []string) (*Flags, error) {

	flags := &Flags{}
	flagSet := flag.NewFlagSet(applicationName, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	flagSet.BoolVar(&flags.PrintVersion, cfVersion, false,
		"Prints the application version")
	flagSet.BoolVar(&flags.ValidateConfig, cfValidate, false,
		"Validates the config and exits without running the server")
	flagSet.StringVar(&flags.ConfigPath, cfConfig, "",
		"Path to the Config File")
	flagSet.StringVar(&flags.LogLevel, cfLogLevel, "",
		"Level of Logging to use (debug, info, warn, error)")
	flagSet.IntVar(&flags.InstanceID, cfInstanceID, 0,
		"Instance ID is for running multiple processes from the same config"+
			" while logging to their own files")
	flagSet.IntVar(&flags.FrontendPort, cfProxyPort, 0,
		"Port that the frontend HTTP listener will listen on")
	flagSet.IntVar(&flags.MetricsListenPort, cfMetricsPort, 0,
		"Port that the /metrics endpoint will listen on")
	flagSet.StringVar(&flags.CalloutName, cfCallout, "",
		"Name of a configured callout to execute once against the input,"+
			" instead of starting the server")
	flagSet.StringVar(&flags.InputPath, cfInput, "",
		"Path to a file providing the message body for a one-shot callout"+
			" execution; omit to read from stdin")

	if err := flagSet.Parse(arguments); err != nil {
		return nil, err
	}
	if flags.ConfigPath != "" {
		flags.customPath = true
	} else {
		flags.ConfigPath = DefaultConfigPath
	}
	return flags, nil
}

// loadFlags applies configuration from command line flags over file values
func (c *Config) loadFlags(flags *Flags) {
	if flags.FrontendPort > 0 {
		c.Frontend.ListenPort = flags.FrontendPort
	}
	if flags.MetricsListenPort > 0 {
		c.Metrics.ListenPort = flags.MetricsListenPort
	}
	if flags.LogLevel != "" {
		c.Logging.LogLevel = flags.LogLevel
	}
	if flags.InstanceID > 0 {
		c.Main.InstanceID = flags.InstanceID
	}
}
