/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vp-verifier/internal/logfields"
	oidc4vperr "github.com/trustbloc/vp-verifier/pkg/restapi/resterr/oidc4vp"
)

var logger = log.New("rest-err")

// HTTPErrorHandler writes handler errors as JSON and records them on a trace span.
func HTTPErrorHandler(tracer trace.Tracer) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		code, message := processError(err)

		span.SetStatus(codes.Error, fmt.Sprintf("%s", message))
		span.RecordError(err)

		logger.Errorc(ctx, "HTTP Error Handler",
			log.WithURL(c.Request().RequestURI),
			log.WithHTTPStatus(code),
			log.WithError(err),
		)

		sendResponse(c, code, message)
	}
}

func sendResponse(c echo.Context, code int, message interface{}) {
	var err error
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			logger.Errorc(c.Request().Context(), "head error msg", log.WithError(fmt.Errorf("%v", message)))
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			logger.Errorc(c.Request().Context(), "write http response", log.WithError(err),
				logfields.WithAdditionalMessage(fmt.Sprintf("%v", message)))
		}
	}
}

func processError(err error) (int, interface{}) {
	var echoHTTPError *echo.HTTPError
	if errors.As(err, &echoHTTPError) {
		code, message := echoHTTPError.Code, echoHTTPError.Message
		if echoHTTPError.Internal != nil {
			message = err.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return code, message
	}

	var oidc4vpError *oidc4vperr.Error
	if errors.As(err, &oidc4vpError) {
		return oidc4vpError.HTTPStatus, oidc4vpError
	}

	return http.StatusInternalServerError, map[string]interface{}{
		"error":             "server_error",
		"error_description": "internal server error",
	}
}
