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

// Package config provides application configuration abilities, including
// parsing configuration files and command line parameters, as well as
// default values and validation
package config

import (
	"os"

	"github.com/trickstercache/b64callout/pkg/callout/options"

	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultConfigPath          = "/etc/b64callout/b64callout.yaml"
	DefaultPingHandlerPath     = "/ping"
	DefaultFrontendListenPort  = 8480
	DefaultMetricsListenPort   = 8481
	DefaultLogLevel            = "info"
	DefaultCalloutPathPrefix   = "/callouts/"
	DefaultFrontendTimeoutSecs = 60
)

// Config is the main configuration object
type Config struct {
	// Main is the primary MainConfig section
	Main *MainConfig `yaml:"main,omitempty"`
	// Frontend provides configurations about the HTTP Front End
	Frontend *FrontendConfig `yaml:"frontend,omitempty"`
	// Logging provides configurations that affect logging behavior
	Logging *LoggingConfig `yaml:"logging,omitempty"`
	// Metrics provides configurations for collecting Metrics about the application
	Metrics *MetricsConfig `yaml:"metrics,omitempty"`
	// Callouts is a map of the named callout configurations
	Callouts options.Lookup `yaml:"callouts,omitempty"`
}

// MainConfig is a collection of general configuration values
type MainConfig struct {
	// InstanceID represents a unique ID for the current instance, when
	// multiple instances run on the same host
	InstanceID int `yaml:"instance_id,omitempty"`
	// PingHandlerPath provides the path to register the Ping Handler for
	// checking that the application is running
	PingHandlerPath string `yaml:"ping_handler_path,omitempty"`
}

// FrontendConfig is a collection of configurations for the main http frontend
type FrontendConfig struct {
	// ListenAddress is the IP address for the main http listener
	ListenAddress string `yaml:"listen_address,omitempty"`
	// ListenPort is the TCP Port for the main http listener
	ListenPort int `yaml:"listen_port,omitempty"`
	// TimeoutSecs is the read/write timeout in seconds for frontend requests
	TimeoutSecs int `yaml:"timeout_secs,omitempty"`
}

// LoggingConfig is a collection of Logging configurations
type LoggingConfig struct {
	// LogFile provides the filepath to the instance's logfile; empty logs to console
	LogFile string `yaml:"log_file,omitempty"`
	// LogLevel provides the most granular level (e.g., debug, info, error) to log
	LogLevel string `yaml:"log_level,omitempty"`
}

// MetricsConfig is a collection of Metrics Collection configurations
type MetricsConfig struct {
	// ListenAddress is the IP address from which the Application Metrics
	// are available for pulling at /metrics
	ListenAddress string `yaml:"listen_address,omitempty"`
	// ListenPort is the TCP Port from which the Application Metrics are
	// available for pulling at /metrics
	ListenPort int `yaml:"listen_port,omitempty"`
}

// NewConfig returns a Config with default values
func NewConfig() *Config {
	return &Config{
		Main: &MainConfig{
			PingHandlerPath: DefaultPingHandlerPath,
		},
		Frontend: &FrontendConfig{
			ListenPort:  DefaultFrontendListenPort,
			TimeoutSecs: DefaultFrontendTimeoutSecs,
		},
		Logging: &LoggingConfig{
			LogLevel: DefaultLogLevel,
		},
		Metrics: &MetricsConfig{
			ListenPort: DefaultMetricsListenPort,
		},
		Callouts: make(options.Lookup),
	}
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.loadYAML(b)
}

func (c *Config) loadYAML(b []byte) error {
	if err := yaml.Unmarshal(b, c); err != nil {
		return err
	}
	// restore any defaulted sections the file nulled out
	d := NewConfig()
	if c.Main == nil {
		c.Main = d.Main
	}
	if c.Frontend == nil {
		c.Frontend = d.Frontend
	}
	if c.Logging == nil {
		c.Logging = d.Logging
	}
	if c.Metrics == nil {
		c.Metrics = d.Metrics
	}
	if c.Callouts == nil {
		c.Callouts = make(options.Lookup)
	}
	return nil
}
