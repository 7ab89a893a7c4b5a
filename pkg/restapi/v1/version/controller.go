/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package version_test -source=controller.go

package version

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

const (
	Path       = "/version"
	SystemPath = "/version/system"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	// Version of the verifier service.
	Version string
	// ServerVersion is the version of the deployment the service runs in.
	ServerVersion string
}

type Controller struct {
	version       string
	serverVersion string
}

type versionResponse struct {
	Version string `json:"version"`
}

type serverVersionResponse struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		version:       cfg.Version,
		serverVersion: cfg.ServerVersion,
	}

	router.GET(Path, c.Version)
	router.GET(SystemPath, c.ServerVersion)

	return c
}

// Version returns the service version.
// GET /version.
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}

// ServerVersion returns the deployment version.
// GET /version/system.
func (c *Controller) ServerVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, serverVersionResponse{
		Version:   c.serverVersion,
		GoVersion: runtime.Version(),
	})
}
