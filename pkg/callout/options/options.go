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

package options

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName   = errors.New("invalid callout name")
	ErrMissingAction = errors.New("missing action value in callout config")
	ErrInvalidAction = errors.New("invalid action value in callout config")
)

// Options is a collection of configuration properties for a single named
// Base64 Callout. Each field holds the raw property value; values may contain
// {variable} references, which are resolved against the execution context at
// invocation time rather than at load time.
type Options struct {
	// Name is populated from the Lookup key
	Name string `yaml:"-"`
	// Action indicates the transcoding direction, "encode" or "decode"
	Action string `yaml:"action,omitempty"`
	// StringOutput, when "true", requests the result be published as a
	// string rather than raw bytes; the default depends on the Action
	StringOutput string `yaml:"string_output,omitempty"`
	// LineLength, when a positive integer, wraps encoder output with a line
	// break after every LineLength characters
	LineLength string `yaml:"line_length,omitempty"`
	// MimeType is an informational content type hint published alongside
	// byte-form results
	MimeType string `yaml:"mime_type,omitempty"`
}

// Lookup is a map of Options keyed by Callout Name
type Lookup map[string]*Options

// New returns a new callout Options with default values
func New() *Options {
	return &Options{}
}

// Clone returns an exact copy of the subject *Options
func (o *Options) Clone() *Options {
	return &Options{
		Name:         o.Name,
		Action:       o.Action,
		StringOutput: o.StringOutput,
		LineLength:   o.LineLength,
		MimeType:     o.MimeType,
	}
}

// Validate returns an error if there are issues with the callout options.
// Properties carrying {variable} references are only resolvable per
// invocation, so validation is limited to literal values.
func (o *Options) Validate() error {
	if o.Name == "" || o.Name == "none" {
		return ErrInvalidName
	}
	if strings.TrimSpace(o.Action) == "" {
		return ErrMissingAction
	}
	if hasReference(o.Action) {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(o.Action)) {
	case "encode", "decode":
		return nil
	}
	return ErrInvalidAction
}

// Validate returns an error if there are issues with any of the callouts'
// options, and populates each Options's Name from its Lookup key
func (l Lookup) Validate() error {
	for k, o := range l {
		if o == nil {
			continue
		}
		o.Name = k
		if err := o.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func hasReference(input string) bool {
	i := strings.Index(input, "{")
	return i > -1 && strings.Index(input, "}") > i
}
