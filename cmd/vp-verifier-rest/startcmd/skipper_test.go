/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestTracingSkipper(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		result bool
	}{
		{
			name:   "healthcheck endpoint",
			path:   "/healthcheck",
			result: true,
		},
		{
			name:   "version endpoint",
			path:   "/version",
			result: true,
		},
		{
			name:   "version system endpoint",
			path:   "/version/system",
			result: true,
		},
		{
			name:   "log levels endpoint",
			path:   "/loglevels",
			result: true,
		},
		{
			name:   "metrics endpoint",
			path:   "/metrics",
			result: true,
		},
		{
			name:   "readiness endpoint",
			path:   "/ready",
			result: true,
		},
		{
			name:   "request object endpoint",
			path:   "/verifier/oidc4vp/request-object",
			result: false,
		},
		{
			name:   "authorization response endpoint",
			path:   "/verifier/oidc4vp/response",
			result: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			ctx := echo.New().NewContext(req, httptest.NewRecorder())
			ctx.SetPath(tt.path)

			require.Equal(t, tt.result, TracingSkipper(ctx))
		})
	}
}
