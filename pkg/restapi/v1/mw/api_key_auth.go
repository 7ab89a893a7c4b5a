/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	oidc4vperr "github.com/trustbloc/vp-verifier/pkg/restapi/resterr/oidc4vp"
)

const header = "X-API-Key"

type options struct {
	skipPaths []string
}

type Opt func(*options)

// WithSkipPaths disables authentication for requests whose path ends with one of the given suffixes.
func WithSkipPaths(paths ...string) Opt {
	return func(o *options) {
		o.skipPaths = append(o.skipPaths, paths...)
	}
}

// APIKeyAuth returns a middleware that authenticates requests using the API key from X-API-Key header.
func APIKeyAuth(apiKey string, opts ...Opt) echo.MiddlewareFunc {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := strings.ToLower(c.Request().URL.Path)

			for _, p := range op.skipPaths {
				if strings.HasSuffix(path, p) {
					return next(c)
				}
			}

			apiKeyHeader := c.Request().Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(apiKeyHeader), []byte(apiKey)) != 1 {
				return oidc4vperr.NewUnauthorizedError(errors.New("invalid api key")).UsePublicAPIResponse()
			}

			return next(c)
		}
	}
}
