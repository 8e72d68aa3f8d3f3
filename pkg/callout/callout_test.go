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

package callout

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/trickstercache/b64callout/pkg/callout/options"
	"github.com/trickstercache/b64callout/pkg/callout/vars"
)

func TestExecuteEncodeString(t *testing.T) {
	mc := vars.Map{}
	o := &options.Options{Action: "encode"}
	status := Execute(o, mc, strings.NewReader("hello"))
	if status != StatusSuccess {
		t.Errorf("expected %s got %s", StatusSuccess, status)
	}
	if v := mc["b64_action"]; v != "encode" {
		t.Errorf("expected %s got %v", "encode", v)
	}
	// encode defaults to string output
	if v := mc["b64_wantString"]; v != true {
		t.Errorf("expected true got %v", v)
	}
	if v := mc["b64_result"]; v != "aGVsbG8=" {
		t.Errorf("expected %s got %v", "aGVsbG8=", v)
	}
}

func TestExecuteEncodeBytes(t *testing.T) {
	mc := vars.Map{}
	o := &options.Options{Action: "Encode", StringOutput: "false"}
	status := Execute(o, mc, strings.NewReader("hello"))
	if status != StatusSuccess {
		t.Errorf("expected %s got %s", StatusSuccess, status)
	}
	b, ok := mc["b64_result"].([]byte)
	if !ok {
		t.Fatalf("expected byte result got %T", mc["b64_result"])
	}
	if !bytes.Equal(b, []byte("aGVsbG8=")) {
		t.Errorf("expected %s got %s", "aGVsbG8=", string(b))
	}
	if _, ok := mc["b64_wantString"]; ok {
		t.Error("wantString should not be published for byte output")
	}
}

func TestExecuteEncodeLineLength(t *testing.T) {
	mc := vars.Map{}
	o := &options.Options{Action: "encode", LineLength: "4"}
	status := Execute(o, mc, strings.NewReader("hello"))
	if status != StatusSuccess {
		t.Errorf("expected %s got %s", StatusSuccess, status)
	}
	if v := mc["b64_result"]; v != "aGVs\nbG8=\n" {
		t.Errorf("expected %q got %q", "aGVs\nbG8=\n", v)
	}
}

func TestExecuteEncodeLineLengthFallback(t *testing.T) {
	// malformed and non-positive line lengths silently disable wrapping
	for _, lineLength := range []string{"trickster", "-4", "0", "4.5"} {
		mc := vars.Map{}
		o := &options.Options{Action: "encode", LineLength: lineLength}
		status := Execute(o, mc, strings.NewReader("hello"))
		if status != StatusSuccess {
			t.Errorf("line-length %s: expected %s got %s",
				lineLength, StatusSuccess, status)
		}
		if v := mc["b64_result"]; v != "aGVsbG8=" {
			t.Errorf("line-length %s: expected %s got %v",
				lineLength, "aGVsbG8=", v)
		}
	}
}

func TestExecuteDecode(t *testing.T) {
	mc := vars.Map{}
	o := &options.Options{Action: "decode"}
	status := Execute(o, mc, strings.NewReader("aGVsbG8="))
	if status != StatusSuccess {
		t.Errorf("expected %s got %s", StatusSuccess, status)
	}
	if v := mc["b64_action"]; v != "decode" {
		t.Errorf("expected %s got %v", "decode", v)
	}
	// decode defaults to byte output
	b, ok := mc["b64_result"].([]byte)
	if !ok {
		t.Fatalf("expected byte result got %T", mc["b64_result"])
	}
	if !bytes.Equal(b, []byte("hello")) {
		t.Errorf("expected %s got %s", "hello", string(b))
	}
}

func TestExecuteDecodeString(t *testing.T) {
	mc := vars.Map{}
	o := &options.Options{Action: "decode", StringOutput: "TRUE"}
	status := Execute(o, mc, strings.NewReader("aGVsbG8="))
	if status != StatusSuccess {
		t.Errorf("expected %s got %s", StatusSuccess, status)
	}
	if v := mc["b64_result"]; v != "hello" {
		t.Errorf("expected %s got %v", "hello", v)
	}
	if v := mc["b64_wantString"]; v != true {
		t.Errorf("expected true got %v", v)
	}
}

func TestExecuteDecodeMimeType(t *testing.T) {
	mc := vars.Map{"detected.type": "image/png"}
	o := &options.Options{Action: "decode", MimeType: "{detected.type}"}
	status := Execute(o, mc, strings.NewReader("aGVsbG8="))
	if status != StatusSuccess {
		t.Errorf("expected %s got %s", StatusSuccess, status)
	}
	if v := mc["b64_mimeType"]; v != "image/png" {
		t.Errorf("expected %s got %v", "image/png", v)
	}
}

func TestExecuteMimeTypeStringOutput(t *testing.T) {
	// the mime type hint accompanies byte output only
	mc := vars.Map{}
	o := &options.Options{Action: "decode", StringOutput: "true", MimeType: "text/plain"}
	Execute(o, mc, strings.NewReader("aGVsbG8="))
	if _, ok := mc["b64_mimeType"]; ok {
		t.Error("mimeType should not be published for string output")
	}
}

func TestExecuteDecodeNotBase64(t *testing.T) {
	mc := vars.Map{}
	o := &options.Options{Action: "decode"}
	status := Execute(o, mc, bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
	if status != StatusAbort {
		t.Errorf("expected %s got %s", StatusAbort, status)
	}
	if v := mc["b64_error"]; v != "not Base64" {
		t.Errorf("expected %s got %v", "not Base64", v)
	}
	// the validation path publishes no exception or stacktrace
	if _, ok := mc["b64_exception"]; ok {
		t.Error("exception should not be published for the validation path")
	}
	if _, ok := mc["b64_stacktrace"]; ok {
		t.Error("stacktrace should not be published for the validation path")
	}
}

func TestExecuteMissingAction(t *testing.T) {
	mc := vars.Map{}
	status := Execute(&options.Options{}, mc, strings.NewReader("hello"))
	if status != StatusAbort {
		t.Errorf("expected %s got %s", StatusAbort, status)
	}
	v, _ := mc["b64_error"].(string)
	if !strings.Contains(v, "action resolves to an empty string") {
		t.Errorf("expected configuration error naming action, got %s", v)
	}
	if _, ok := mc["b64_exception"]; !ok {
		t.Error("expected exception variable on the configuration error path")
	}
	if s, _ := mc["b64_stacktrace"].(string); s == "" {
		t.Error("expected stacktrace variable on the configuration error path")
	}
}

func TestExecuteUnknownAction(t *testing.T) {
	mc := vars.Map{}
	status := Execute(&options.Options{Action: "bogus"}, mc, strings.NewReader("hello"))
	if status != StatusAbort {
		t.Errorf("expected %s got %s", StatusAbort, status)
	}
	v, _ := mc["b64_error"].(string)
	if !strings.Contains(v, "action value is unknown: (bogus)") {
		t.Errorf("expected unknown-action error, got %s", v)
	}
}

func TestExecuteActionReference(t *testing.T) {
	mc := vars.Map{"callout.action": "encode"}
	o := &options.Options{Action: "{callout.action}"}
	status := Execute(o, mc, strings.NewReader("hello"))
	if status != StatusSuccess {
		t.Errorf("expected %s got %s", StatusSuccess, status)
	}
	if v := mc["b64_result"]; v != "aGVsbG8=" {
		t.Errorf("expected %s got %v", "aGVsbG8=", v)
	}
}

func TestExecuteRoundTrip(t *testing.T) {
	input := []byte("round trip \x00\x01\xfe\xff payload")
	for _, lineLength := range []string{"", "4", "16", "76"} {
		mc := vars.Map{}
		o := &options.Options{Action: "encode", LineLength: lineLength}
		if status := Execute(o, mc, bytes.NewReader(input)); status != StatusSuccess {
			t.Fatalf("line-length %s: encode failed", lineLength)
		}
		encoded, _ := mc["b64_result"].(string)

		mc2 := vars.Map{}
		o2 := &options.Options{Action: "decode"}
		if status := Execute(o2, mc2, strings.NewReader(encoded)); status != StatusSuccess {
			t.Fatalf("line-length %s: decode failed: %v", lineLength, mc2["b64_error"])
		}
		b, _ := mc2["b64_result"].([]byte)
		if !bytes.Equal(b, input) {
			t.Errorf("line-length %s: round trip mismatch", lineLength)
		}
	}
}

func TestExecuteReadFailure(t *testing.T) {
	mc := vars.Map{}
	o := &options.Options{Action: "encode"}
	status := Execute(o, mc, &failingReader{})
	if status != StatusAbort {
		t.Errorf("expected %s got %s", StatusAbort, status)
	}
	if v := mc["b64_error"]; v != "error reading message body" {
		t.Errorf("expected short read error got %v", v)
	}
	ex, _ := mc["b64_exception"].(string)
	if !strings.Contains(ex, "read failure") {
		t.Errorf("expected underlying error detail, got %s", ex)
	}
}

type failingReader struct{}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, errors.New("simulated read failure")
}
