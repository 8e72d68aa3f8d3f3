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
	"errors"
	"fmt"

	"github.com/go-stack/stack"
)

// Error is the structured failure type published on the abort path. It
// carries an explicit short message for the error variable, so consumers
// never need to parse the full error text, plus the call stack captured at
// creation for the stacktrace variable.
type Error struct {
	// Short is a brief human-readable error message
	Short string
	// Err is the full underlying error
	Err error

	trace string
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Short
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Stacktrace returns the formatted call stack captured when the Error was
// created
func (e *Error) Stacktrace() string {
	return e.trace
}

func newError(short string, err error) *Error {
	if err == nil {
		err = errors.New(short)
	}
	return &Error{
		Short: short,
		Err:   err,
		trace: fmt.Sprintf("%+v", stack.Trace().TrimRuntime()),
	}
}

func newConfigError(format string, args ...any) *Error {
	return newError(fmt.Sprintf(format, args...), nil)
}
