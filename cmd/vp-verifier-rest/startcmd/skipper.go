/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/logapi"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/version"
)

// TracingSkipper skips spans for operational endpoints.
func TracingSkipper(c echo.Context) bool {
	switch c.Path() {
	case healthcheck.Path, version.Path, version.SystemPath, logapi.Path, metricsEndpoint, readinessEndpoint:
		return true
	}

	return echomw.DefaultSkipper(c)
}
