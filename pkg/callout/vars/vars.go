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

// Package vars models the per-invocation execution context: the ambient
// key/value store a callout reads its inputs from and publishes its results
// into, along with the {variable} reference resolution used by callout
// property values.
package vars

import (
	"fmt"
	"regexp"
	"strings"
)

// Prefix is prepended to the suffixes below to form the full names of all
// variables a callout publishes
const Prefix = "b64_"

// Suffixes of the variables published by a callout execution
const (
	Action     = "action"
	WantString = "wantString"
	Result     = "result"
	MimeType   = "mimeType"
	Error      = "error"
	Exception  = "exception"
	Stacktrace = "stacktrace"
)

// Name returns the full published-variable name for the provided suffix
func Name(suffix string) string {
	return Prefix + suffix
}

// Context is the execution context a callout collaborates with. It is
// invocation-scoped; implementations are not required to be safe for
// concurrent use.
type Context interface {
	// Get returns the string form of the named variable, or "" when unset
	Get(name string) string
	// Set stores a value under the provided variable name
	Set(name string, value any)
}

// Map is a map-backed Context for tests, CLI invocations and per-request use
type Map map[string]any

// Get returns the string form of the named variable, or "" when unset
func (m Map) Get(name string) string {
	v, ok := m[name]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}

// Set stores a value under the provided variable name
func (m Map) Set(name string, value any) {
	m[name] = value
}

// a reference is a brace-wrapped variable name; braces and spaces cannot
// appear in the name itself, so unbalanced braces fall outside any match
// and survive as literal text
var refPattern = regexp.MustCompile(`\{([^{} ]+?)\}`)

// Resolve replaces each {name} reference in spec with the value of the
// identically-named variable in mc
func Resolve(spec string, mc Context) string {
	if mc == nil || !strings.Contains(spec, "{") {
		return spec
	}
	return refPattern.ReplaceAllStringFunc(spec, func(ref string) string {
		return mc.Get(ref[1 : len(ref)-1])
	})
}

// Required resolves a required property value, returning an error naming the
// property when the raw value or its resolution is empty
func Required(raw, name string, mc Context) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", fmt.Errorf("%s resolves to an empty string", name)
	}
	if v = Resolve(v, mc); v == "" {
		return "", fmt.Errorf("%s resolves to an empty string", name)
	}
	return v, nil
}

// Optional resolves an optional property value; a missing or empty value
// resolves to "" and is not an error
func Optional(raw string, mc Context) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return ""
	}
	return Resolve(v, mc)
}
