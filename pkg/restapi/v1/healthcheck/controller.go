/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vp-verifier/pkg/observability/health/healthutil"
)

const Path = "/healthcheck"

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Checks  []health.Check
	Options []healthutil.Opt
}

// Controller for health check API.
type Controller struct {
	handler echo.HandlerFunc
}

func NewController(router router, cfg *Config) *Controller {
	c := &Controller{
		handler: echo.WrapHandler(healthutil.NewHandler(cfg.Checks, cfg.Options...)),
	}

	router.GET(Path, c.GetHealthcheck)

	return c
}

// GetHealthcheck returns the availability of the service and its components.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	return c.handler(ctx)
}
