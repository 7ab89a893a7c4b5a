/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -self_package mocks -package verifier_test -source=controller.go -mock_names oidc4vpService=MockOIDC4VPService,metricsProvider=MockMetricsProvider

package verifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
	noopMetricsProvider "github.com/trustbloc/vp-verifier/pkg/observability/metrics/noop"
	profileapi "github.com/trustbloc/vp-verifier/pkg/profile"
	"github.com/trustbloc/vp-verifier/pkg/restapi/resterr"
	oidc4vperr "github.com/trustbloc/vp-verifier/pkg/restapi/resterr/oidc4vp"
	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
)

var logger = log.New("verifier-restapi")

const (
	InitiateInteractionPath = "/verifier/profiles/:profileID/interactions/initiate-oidc"
	InteractionPath         = "/verifier/interactions/:state"

	// RequestObjectFormatJSON and RequestObjectFormatJWT select the request object representation
	// served when the client accepts any media type.
	RequestObjectFormatJSON = "json"
	RequestObjectFormatJWT  = "jwt"

	mimeRequestObjectJWT = "application/oauth-authz-req+jwt"
	mimeJWT              = "application/jwt"

	vpTokenParam = "vp_token"
	stateParam   = "state"
)

type oidc4vpService interface {
	InitiateOidcInteraction(ctx context.Context, req *oidc4vp.InitiateRequest) (*oidc4vp.InteractionInfo, error)
	GetRequestObject(ctx context.Context, state oidc4vp.State) (*oidc4vp.Session, error)
	GetSession(ctx context.Context, state oidc4vp.State) (*oidc4vp.Session, error)
	VerifyAuthorizationResponse(
		ctx context.Context,
		resp *oidc4vp.AuthorizationResponse,
	) (*oidc4vp.VerificationResult, error)
}

type metricsProvider interface {
	RequestObjectTime(value time.Duration)
	CheckAuthorizationResponseTime(value time.Duration)
}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	OIDC4VPService oidc4vpService
	Metrics        metricsProvider
	// RequestObjectFormat is served for "Accept: */*" or no Accept header. One of "json", "jwt".
	RequestObjectFormat string
}

// Controller for the OIDC4VP verifier API.
type Controller struct {
	oidc4vpService      oidc4vpService
	metrics             metricsProvider
	requestObjectFormat string
	cors                echo.MiddlewareFunc
}

// NewController creates a new controller for the OIDC4VP verifier API.
func NewController(config *Config) *Controller {
	metrics := config.Metrics

	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	format := config.RequestObjectFormat
	if format != RequestObjectFormatJWT {
		format = RequestObjectFormatJSON
	}

	return &Controller{
		oidc4vpService:      config.OIDC4VPService,
		metrics:             metrics,
		requestObjectFormat: format,
		cors: middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType},
		}),
	}
}

// RegisterWalletRoutes registers the endpoints called by wallets. They are unauthenticated and allow
// cross-origin requests.
func (c *Controller) RegisterWalletRoutes(r router) {
	r.GET(oidc4vp.RequestObjectPath, c.GetRequestObject, c.cors)
	r.OPTIONS(oidc4vp.RequestObjectPath, c.preflight, c.cors)

	r.POST(oidc4vp.ResponsePath, c.PostAuthorizationResponse, c.cors)
	r.OPTIONS(oidc4vp.ResponsePath, c.preflight, c.cors)
}

// RegisterAdminRoutes registers the endpoints of the initiating party.
func (c *Controller) RegisterAdminRoutes(r router, m ...echo.MiddlewareFunc) {
	r.POST(InitiateInteractionPath, func(ctx echo.Context) error {
		return c.InitiateOidcInteraction(ctx, ctx.Param("profileID"))
	}, m...)
	r.GET(InteractionPath, func(ctx echo.Context) error {
		return c.GetInteraction(ctx, ctx.Param("state"))
	}, m...)
}

func (c *Controller) preflight(ctx echo.Context) error {
	return ctx.NoContent(http.StatusNoContent)
}

// GetRequestObject returns the request object of an interaction.
// GET /verifier/oidc4vp/request-object?state={state}.
func (c *Controller) GetRequestObject(ctx echo.Context) error {
	startTime := time.Now()

	defer func() {
		c.metrics.RequestObjectTime(time.Since(startTime))
	}()

	state := ctx.QueryParam(stateParam)
	if state == "" {
		return oidc4vperr.NewInvalidRequestError(errors.New("state is required")).
			WithIncorrectValue(stateParam).
			UsePublicAPIResponse()
	}

	session, err := c.oidc4vpService.GetRequestObject(ctx.Request().Context(), oidc4vp.State(state))
	if err != nil {
		return c.walletError(ctx.Request().Context(), err, "GetRequestObject")
	}

	if c.wantsJWT(ctx.Request().Header.Get(echo.HeaderAccept)) {
		return ctx.Blob(http.StatusOK, mimeRequestObjectJWT, []byte(session.RequestObjectJWT))
	}

	return ctx.JSON(http.StatusOK, session.RequestObject)
}

// PostAuthorizationResponse verifies the wallet's direct_post response.
// POST /verifier/oidc4vp/response.
func (c *Controller) PostAuthorizationResponse(ctx echo.Context) error {
	logger.Debugc(ctx.Request().Context(), "PostAuthorizationResponse begin")
	startTime := time.Now()

	defer func() {
		c.metrics.CheckAuthorizationResponseTime(time.Since(startTime))
		logger.Debugc(ctx.Request().Context(), "PostAuthorizationResponse end",
			log.WithDuration(time.Since(startTime)))
	}()

	authResp, err := readAuthorizationResponse(ctx)
	if err != nil {
		return err
	}

	result, err := c.oidc4vpService.VerifyAuthorizationResponse(ctx.Request().Context(), authResp)
	if err != nil {
		return c.walletError(ctx.Request().Context(), err, "VerifyAuthorizationResponse")
	}

	return ctx.JSON(http.StatusOK, &authorizationResponseResult{RedirectURI: result.RedirectURI})
}

// InitiateOidcInteraction creates an interaction for a verifier profile.
// POST /verifier/profiles/{profileID}/interactions/initiate-oidc.
func (c *Controller) InitiateOidcInteraction(ctx echo.Context, profileID string) error {
	logger.Debugc(ctx.Request().Context(), "InitiateOidcInteraction begin", logfields.WithProfileID(profileID))

	var body InitiateOIDC4VPData

	if err := ctx.Bind(&body); err != nil {
		return oidc4vperr.NewInvalidRequestError(err).WithIncorrectValue("requestBody")
	}

	if body.PresentationDefinition != nil {
		if err := body.PresentationDefinition.ValidateSchema(); err != nil {
			return oidc4vperr.NewInvalidRequestError(fmt.Errorf("invalid presentation definition: %w", err)).
				WithIncorrectValue("presentation_definition")
		}

		logger.Debugc(ctx.Request().Context(), "InitiateOidcInteraction custom definition",
			logfields.WithPresDefID(body.PresentationDefinition.ID))
	}

	info, err := c.oidc4vpService.InitiateOidcInteraction(ctx.Request().Context(), &oidc4vp.InitiateRequest{
		ProfileID:              profileID,
		BaseURL:                body.BaseURL,
		PresentationDefinition: body.PresentationDefinition,
		Purpose:                body.Purpose,
	})
	if err != nil {
		return mapServiceError(err, "InitiateOidcInteraction")
	}

	logger.Debugc(ctx.Request().Context(), "InitiateOidcInteraction succeed", log.WithState(string(info.State)))

	return ctx.JSON(http.StatusOK, &InitiateOIDC4VPResponse{
		AuthorizationRequest: info.AuthorizationRequest,
		RequestURI:           info.RequestURI,
		State:                string(info.State),
	})
}

// GetInteraction returns the status and verified claims of an interaction.
// GET /verifier/interactions/{state}.
func (c *Controller) GetInteraction(ctx echo.Context, state string) error {
	session, err := c.oidc4vpService.GetSession(ctx.Request().Context(), oidc4vp.State(state))
	if err != nil {
		return mapServiceError(err, "GetSession")
	}

	return ctx.JSON(http.StatusOK, &InteractionResponse{
		State:      string(session.State),
		ProfileID:  session.ProfileID,
		Status:     string(session.Status),
		CreatedAt:  session.CreatedAt,
		ExpireAt:   session.ExpireAt,
		VerifiedAt: session.VerifiedAt,
		Claims:     session.Claims,
		Error:      session.Error,
	})
}

func (c *Controller) wantsJWT(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		switch mediaType {
		case mimeRequestObjectJWT, mimeJWT:
			return true
		case echo.MIMEApplicationJSON:
			return false
		}
	}

	return c.requestObjectFormat == RequestObjectFormatJWT
}

func (c *Controller) walletError(ctx context.Context, err error, operation string) error {
	rfcErr := mapServiceError(err, operation)

	if rfcErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Errorc(ctx, "Wallet request failed", log.WithError(err))
	}

	return rfcErr.UsePublicAPIResponse()
}

func readAuthorizationResponse(ctx echo.Context) (*oidc4vp.AuthorizationResponse, error) {
	req := ctx.Request()

	mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	if err != nil {
		mediaType = ""
	}

	var resp *oidc4vp.AuthorizationResponse

	switch mediaType {
	case echo.MIMEApplicationForm:
		resp, err = readFormResponse(req)
	case echo.MIMEApplicationJSON:
		resp, err = readJSONResponse(req)
	default:
		err = oidc4vperr.NewInvalidRequestError(
			fmt.Errorf("unsupported content type %q", req.Header.Get(echo.HeaderContentType))).
			UsePublicAPIResponse()
	}

	if err != nil {
		return nil, err
	}

	queryState := ctx.QueryParam(stateParam)

	switch {
	case resp.State == "":
		resp.State = oidc4vp.State(queryState)
	case queryState != "" && queryState != string(resp.State):
		return nil, oidc4vperr.NewInvalidRequestError(errors.New("state mismatch")).
			WithIncorrectValue(stateParam).
			UsePublicAPIResponse()
	}

	logger.Debugc(req.Context(), "Authorization response decoded", log.WithState(string(resp.State)))

	return resp, nil
}

func readFormResponse(req *http.Request) (*oidc4vp.AuthorizationResponse, error) {
	if err := req.ParseForm(); err != nil {
		return nil, oidc4vperr.NewInvalidRequestError(err).UsePublicAPIResponse()
	}

	vpToken, err := decodeFormValue(vpTokenParam, req.PostForm)
	if err != nil {
		return nil, err
	}

	state, err := decodeFormValue(stateParam, req.PostForm)
	if err != nil {
		return nil, err
	}

	return &oidc4vp.AuthorizationResponse{
		VPToken: vpToken,
		State:   oidc4vp.State(state),
	}, nil
}

func readJSONResponse(req *http.Request) (*oidc4vp.AuthorizationResponse, error) {
	var body authorizationResponseJSON

	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return nil, oidc4vperr.NewInvalidRequestError(fmt.Errorf("decode body: %w", err)).
			UsePublicAPIResponse()
	}

	vpToken := string(body.VPToken)

	var s string

	if err := json.Unmarshal(body.VPToken, &s); err == nil {
		vpToken = s
	}

	if vpToken == "null" {
		vpToken = ""
	}

	return &oidc4vp.AuthorizationResponse{
		VPToken: vpToken,
		State:   oidc4vp.State(body.State),
	}, nil
}

// decodeFormValue returns the single value of a form field. Absent fields yield an empty value.
func decodeFormValue(name string, values url.Values) (string, error) {
	val := values[name]

	if len(val) > 1 {
		return "", oidc4vperr.NewInvalidRequestError(errors.New("value is duplicated")).
			WithIncorrectValue(name).
			UsePublicAPIResponse()
	}

	if len(val) == 0 {
		return "", nil
	}

	return val[0], nil
}

func mapServiceError(err error, operation string) *oidc4vperr.Error {
	var verificationErr *oidc4vp.VerificationError

	switch {
	case errors.As(err, &verificationErr):
		return oidc4vperr.NewVerificationFailedError(errors.New(verificationErr.Reason))
	case errors.Is(err, oidc4vp.ErrInvalidInput):
		return oidc4vperr.NewInvalidRequestError(err)
	case errors.Is(err, oidc4vp.ErrInvalidState):
		return oidc4vperr.NewInvalidStateError(err)
	case errors.Is(err, oidc4vp.ErrSessionCompleted):
		return oidc4vperr.NewInteractionCompletedError(err)
	case errors.Is(err, oidc4vp.ErrDataNotFound):
		return oidc4vperr.NewNotFoundError(errors.New("interaction not found"))
	case errors.Is(err, profileapi.ErrProfileNotFound):
		return oidc4vperr.NewNotFoundError(err).WithComponent(resterr.VerifierProfileSvcComponent)
	case errors.Is(err, profileapi.ErrProfileNotActive):
		return oidc4vperr.NewInvalidRequestError(err).WithComponent(resterr.VerifierProfileSvcComponent)
	case errors.Is(err, profileapi.ErrNoSigningKey):
		return oidc4vperr.NewServerError(err).
			WithComponent(resterr.VerifierProfileSvcComponent).
			WithOperation(operation)
	}

	return oidc4vperr.NewServerError(err).
		WithComponent(resterr.VerifierOIDC4vpSvcComponent).
		WithOperation(operation)
}
