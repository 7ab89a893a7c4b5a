/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
	oidc4vperr "github.com/trustbloc/vp-verifier/pkg/restapi/resterr/oidc4vp"
)

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go

const Path = "/loglevels"

var logger = log.New("logapi")

type Controller struct{}

type router interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func NewController(router router, m ...echo.MiddlewareFunc) *Controller {
	c := &Controller{}

	router.POST(Path, c.PostLogLevels, m...)

	return c
}

// PostLogLevels updates log levels. The body is a log spec, e.g. "oidc4vp-service=DEBUG:INFO".
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	logLevelBytes, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	logLevels := strings.TrimSpace(string(logLevelBytes))
	if logLevels == "" {
		return oidc4vperr.NewInvalidRequestError(errors.New("log spec is required")).
			WithIncorrectValue("requestBody")
	}

	if err = log.SetSpec(logLevels); err != nil {
		return oidc4vperr.NewInvalidRequestError(fmt.Errorf("failed to set log spec: %w", err)).
			WithIncorrectValue("requestBody")
	}

	logger.Infoc(ctx.Request().Context(), "Log levels modified", logfields.WithUserLogLevel(logLevels))

	return ctx.NoContent(http.StatusOK)
}
