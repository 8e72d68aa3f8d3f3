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

// Package callout executes the Base64 Callout: it pipes a message body
// through the base64 codec in the configured direction and publishes the
// result, or the failure state, as named variables in the execution context.
package callout

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/trickstercache/b64callout/pkg/callout/options"
	"github.com/trickstercache/b64callout/pkg/callout/vars"
	"github.com/trickstercache/b64callout/pkg/encoding/base64"
)

// Action indicates the transcoding direction of an invocation
type Action int

const (
	ActionUnknown Action = iota
	ActionEncode
	ActionDecode
)

func (a Action) String() string {
	switch a {
	case ActionEncode:
		return "encode"
	case ActionDecode:
		return "decode"
	}
	return ""
}

// Status is the terminal outcome of an invocation
type Status int

const (
	// StatusSuccess indicates the result variables are published and the
	// surrounding pipeline may continue
	StatusSuccess Status = iota
	// StatusAbort indicates the error variables are published and the
	// surrounding pipeline should halt
	StatusAbort
)

func (s Status) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "abort"
}

const (
	propAction   = "action"
	msgNotBase64 = "not Base64"
)

// Execute runs one callout invocation: a single synchronous pass over the
// provided message body, reading configuration properties from o (with any
// {variable} references resolved against mc) and publishing results into mc.
// The body is drained exactly once. Execute holds no state across
// invocations; o is treated read-only and mc is invocation-scoped.
func Execute(o *options.Options, mc vars.Context, body io.Reader) Status {
	action, err := resolveAction(o, mc)
	if err != nil {
		return abort(mc, err)
	}
	if action == ActionEncode {
		return encode(o, mc, body)
	}
	return decode(o, mc, body)
}

func resolveAction(o *options.Options, mc vars.Context) (Action, error) {
	v, err := vars.Required(o.Action, propAction, mc)
	if err != nil {
		return ActionUnknown, newError(err.Error(), err)
	}
	v = strings.ToLower(v)
	switch v {
	case "encode":
		return ActionEncode, nil
	case "decode":
		return ActionDecode, nil
	}
	return ActionUnknown, newConfigError("action value is unknown: (%s)", v)
}

func encode(o *options.Options, mc vars.Context, body io.Reader) Status {
	var buf bytes.Buffer
	w := base64.NewEncoder(&buf, resolveLineLength(o, mc))
	if _, err := io.Copy(w, body); err != nil {
		return abort(mc, newError("error reading message body", err))
	}
	if err := w.Close(); err != nil {
		return abort(mc, newError("error encoding message body", err))
	}
	out := buf.Bytes()
	if !base64.IsBase64(out) {
		return abortNotBase64(mc)
	}
	return publish(o, mc, ActionEncode, out)
}

func decode(o *options.Options, mc vars.Context, body io.Reader) Status {
	in, err := io.ReadAll(body)
	if err != nil {
		return abort(mc, newError("error reading message body", err))
	}
	if !base64.IsBase64(in) {
		return abortNotBase64(mc)
	}
	out, err := base64.Decode(in)
	if err != nil {
		return abort(mc, newError("error decoding message body", err))
	}
	return publish(o, mc, ActionDecode, out)
}

func publish(o *options.Options, mc vars.Context, action Action, result []byte) Status {
	mc.Set(vars.Name(vars.Action), action.String())
	if wantString(o, mc, action == ActionEncode) {
		mc.Set(vars.Name(vars.WantString), true)
		mc.Set(vars.Name(vars.Result), string(result))
		return StatusSuccess
	}
	if mt := vars.Optional(o.MimeType, mc); mt != "" {
		mc.Set(vars.Name(vars.MimeType), mt)
	}
	mc.Set(vars.Name(vars.Result), result)
	return StatusSuccess
}

// wantString resolves the string-output property: absent falls back to the
// direction-based default, otherwise only the value "true" selects string
// output
func wantString(o *options.Options, mc vars.Context, def bool) bool {
	v := vars.Optional(o.StringOutput, mc)
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true")
}

// resolveLineLength resolves the line-length property; malformed or
// non-positive values silently disable wrapping rather than aborting
func resolveLineLength(o *options.Options, mc vars.Context) int {
	v := vars.Optional(o.LineLength, mc)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// abortNotBase64 is the validation abort path; it publishes only the error
// variable, as invalid base64 content is a normal outcome and not a fault
func abortNotBase64(mc vars.Context) Status {
	mc.Set(vars.Name(vars.Error), msgNotBase64)
	return StatusAbort
}

func abort(mc vars.Context, err error) Status {
	var ce *Error
	if !errors.As(err, &ce) {
		ce = newError(err.Error(), err)
	}
	mc.Set(vars.Name(vars.Error), ce.Short)
	mc.Set(vars.Name(vars.Exception), ce.Error())
	mc.Set(vars.Name(vars.Stacktrace), ce.Stacktrace())
	return StatusAbort
}
