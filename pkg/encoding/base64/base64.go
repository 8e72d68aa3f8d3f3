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

// Package base64 provides standard-alphabet (RFC 4648) base64 capabilities
// for byte slices and streams, including RFC 2045-style line wrapping and
// a lenient syntax validator
package base64

import (
	"encoding/base64"
	"io"
)

const lineBreak = '\n'

// Encode returns the encoded representation of the byte slice as a single
// unbroken line
func Encode(in []byte) []byte {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(in)))
	base64.StdEncoding.Encode(out, in)
	return out
}

// Decode returns the decoded representation of the encoded byte slice. Line
// breaks and other whitespace are tolerated, as is absent padding.
func Decode(in []byte) ([]byte, error) {
	filtered := stripWhitespace(in)
	switch len(filtered) % 4 {
	case 1:
		return nil, base64.CorruptInputError(len(filtered) - 1)
	case 2:
		filtered = append(filtered, '=', '=')
	case 3:
		filtered = append(filtered, '=')
	}
	out := make([]byte, base64.StdEncoding.DecodedLen(len(filtered)))
	n, err := base64.StdEncoding.Decode(out, filtered)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// NewEncoder returns a streaming encoder writing to w. A positive lineLength
// wraps the output with a line break after every lineLength characters,
// rounded down to the nearest multiple of 4 so a break never splits an
// encoded quantum; this matches common chunked-encoder cadence and yields a
// trailing break after the final group. Values below 4 disable wrapping. The
// caller must Close the returned WriteCloser to flush any partial quantum
// and trailing break.
func NewEncoder(w io.Writer, lineLength int) io.WriteCloser {
	lineLength -= lineLength % 4
	if lineLength <= 0 {
		return base64.NewEncoder(base64.StdEncoding, w)
	}
	lw := &lineWriter{w: w, length: lineLength}
	return &encoder{b: base64.NewEncoder(base64.StdEncoding, lw), lw: lw}
}

// IsBase64 reports whether the byte slice is syntactically valid base64:
// every byte is within the standard alphabet, padding, or whitespace, and
// the non-whitespace content is of decodable length
func IsBase64(in []byte) bool {
	var n int
	for _, c := range in {
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z',
			c >= '0' && c <= '9', c == '+', c == '/', c == '=':
			n++
		case c == '\r', c == '\n', c == '\t', c == ' ':
		default:
			return false
		}
	}
	return n%4 != 1
}

type encoder struct {
	b  io.WriteCloser
	lw *lineWriter
}

func (e *encoder) Write(p []byte) (int, error) {
	return e.b.Write(p)
}

func (e *encoder) Close() error {
	if err := e.b.Close(); err != nil {
		return err
	}
	return e.lw.Close()
}

// lineWriter inserts a line break after every length bytes written through it
type lineWriter struct {
	w      io.Writer
	length int
	col    int
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	var written int
	for len(p) > 0 {
		n := lw.length - lw.col
		if n > len(p) {
			n = len(p)
		}
		i, err := lw.w.Write(p[:n])
		written += i
		if err != nil {
			return written, err
		}
		lw.col += n
		p = p[n:]
		if lw.col == lw.length {
			if _, err := lw.w.Write([]byte{lineBreak}); err != nil {
				return written, err
			}
			lw.col = 0
		}
	}
	return written, nil
}

// Close terminates any final partial line
func (lw *lineWriter) Close() error {
	if lw.col == 0 {
		return nil
	}
	lw.col = 0
	_, err := lw.w.Write([]byte{lineBreak})
	return err
}

func stripWhitespace(in []byte) []byte {
	out := make([]byte, 0, len(in))
	for _, c := range in {
		switch c {
		case '\r', '\n', '\t', ' ':
			continue
		}
		out = append(out, c)
	}
	return out
}
