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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecorate(t *testing.T) {
	var observed string
	h := Decorate("test", http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			o, ok := w.(*responseObserver)
			require.True(t, ok)
			w.WriteHeader(http.StatusBadRequest)
			observed = o.status
		}))

	r := httptest.NewRequest(http.MethodPost, "http://example.com/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	require.Equal(t, "4xx", observed)
	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestResponseObserverStatuses(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{http.StatusContinue, "1xx"},
		{http.StatusOK, "2xx"},
		{http.StatusFound, "3xx"},
		{http.StatusNotFound, "4xx"},
		{http.StatusBadGateway, "5xx"},
	}
	for _, test := range tests {
		o := &responseObserver{httptest.NewRecorder(), "unknown"}
		o.WriteHeader(test.code)
		require.Equal(t, test.expected, o.status)
	}
}
