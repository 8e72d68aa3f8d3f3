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

// Package headers provides HTTP header names and values used by the application
package headers

const (
	// NameContentType represents the HTTP Header Name of "Content-Type"
	NameContentType = "Content-Type"
	// NameContentLength represents the HTTP Header Name of "Content-Length"
	NameContentLength = "Content-Length"

	// NameB64Action is the response header echoing the executed action
	NameB64Action = "X-B64-Action"
	// NameB64WantString is the response header echoing that string output was produced
	NameB64WantString = "X-B64-Want-String"
	// NameB64MimeType is the response header carrying the configured content type hint
	NameB64MimeType = "X-B64-Mime-Type"
	// NameB64Error is the response header carrying the short error message on abort
	NameB64Error = "X-B64-Error"

	// ValueTextPlain represents the HTTP Header Value of "text/plain"
	ValueTextPlain = "text/plain; charset=utf-8"
	// ValueOctetStream represents the HTTP Header Value of "application/octet-stream"
	ValueOctetStream = "application/octet-stream"
)
