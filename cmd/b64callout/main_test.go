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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trickstercache/b64callout/pkg/callout/options"
	"github.com/trickstercache/b64callout/pkg/config"
	"github.com/trickstercache/b64callout/pkg/observability/logging"
)

func testConfig() *config.Config {
	conf := config.NewConfig()
	conf.Callouts = options.Lookup{
		"encoder": &options.Options{Name: "encoder", Action: "encode"},
		"decoder": &options.Options{Name: "decoder", Action: "decode"},
	}
	return conf
}

func TestRunOnceEncode(t *testing.T) {
	var sb strings.Builder
	flags := &config.Flags{CalloutName: "encoder"}
	code := runOnce(testConfig(), flags, logging.NoopLogger(),
		strings.NewReader("hello"), &sb)
	if code != 0 {
		t.Errorf("expected exit code 0 got %d", code)
	}
	out := sb.String()
	for _, expected := range []string{
		"b64_action=encode",
		"b64_result=aGVsbG8=",
		"b64_wantString=true",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected output to contain %s, got %s", expected, out)
		}
	}
}

func TestRunOnceInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.txt")
	if err := os.WriteFile(path, []byte("aGVsbG8="), 0600); err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	flags := &config.Flags{CalloutName: "decoder", InputPath: path}
	code := runOnce(testConfig(), flags, logging.NoopLogger(), nil, &sb)
	if code != 0 {
		t.Errorf("expected exit code 0 got %d", code)
	}
	if !strings.Contains(sb.String(), "b64_result=hello") {
		t.Errorf("expected decoded result, got %s", sb.String())
	}
}

func TestRunOnceAbort(t *testing.T) {
	var sb strings.Builder
	flags := &config.Flags{CalloutName: "decoder"}
	code := runOnce(testConfig(), flags, logging.NoopLogger(),
		strings.NewReader("\xff\xff\xff\xff"), &sb)
	if code != 1 {
		t.Errorf("expected exit code 1 got %d", code)
	}
	if !strings.Contains(sb.String(), "b64_error=not Base64") {
		t.Errorf("expected abort output, got %s", sb.String())
	}
}

func TestRunOnceUnknownCallout(t *testing.T) {
	var sb strings.Builder
	flags := &config.Flags{CalloutName: "missing"}
	code := runOnce(testConfig(), flags, logging.NoopLogger(),
		strings.NewReader(""), &sb)
	if code != 1 {
		t.Errorf("expected exit code 1 got %d", code)
	}
}

func TestRunOnceMissingInputFile(t *testing.T) {
	var sb strings.Builder
	flags := &config.Flags{CalloutName: "encoder", InputPath: "/nonexistent/body"}
	code := runOnce(testConfig(), flags, logging.NoopLogger(), nil, &sb)
	if code != 1 {
		t.Errorf("expected exit code 1 got %d", code)
	}
}

func TestVersion(t *testing.T) {
	v := version()
	if !strings.Contains(v, "version:") {
		t.Errorf("unexpected version string %s", v)
	}
}

func TestRunVersionFlag(t *testing.T) {
	if code := run([]string{"-version"}); code != 0 {
		t.Errorf("expected exit code 0 got %d", code)
	}
}

func TestRunBadConfig(t *testing.T) {
	if code := run([]string{"-config", "/nonexistent/b64callout.yaml"}); code != 1 {
		t.Errorf("expected exit code 1 got %d", code)
	}
}
