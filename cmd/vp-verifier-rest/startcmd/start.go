/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/trustbloc/vp-verifier/cmd/common"
	"github.com/trustbloc/vp-verifier/internal/logfields"
	tlsutils "github.com/trustbloc/vp-verifier/internal/pkg/utils/tls"
	"github.com/trustbloc/vp-verifier/pkg/did"
	"github.com/trustbloc/vp-verifier/pkg/doc/jws"
	"github.com/trustbloc/vp-verifier/pkg/doc/validator/jsonschema"
	"github.com/trustbloc/vp-verifier/pkg/doc/vp"
	"github.com/trustbloc/vp-verifier/pkg/kms"
	"github.com/trustbloc/vp-verifier/pkg/ld"
	"github.com/trustbloc/vp-verifier/pkg/observability/metrics"
	"github.com/trustbloc/vp-verifier/pkg/observability/metrics/noop"
	"github.com/trustbloc/vp-verifier/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/vp-verifier/pkg/observability/tracing"
	oidc4vptracing "github.com/trustbloc/vp-verifier/pkg/observability/tracing/wrappers/oidc4vp"
	profilereader "github.com/trustbloc/vp-verifier/pkg/profile/reader/file"
	"github.com/trustbloc/vp-verifier/pkg/restapi/handlers"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/healthcheck"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/logapi"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/mw"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/verifier"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/version"
	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
)

var logger = log.New("vp-verifier-restapi")

const (
	metricsEndpoint          = "/metrics"
	defaultReadHeaderTimeout = 10 * time.Second
)

type httpServer interface {
	ListenAndServe() error
	ListenAndServeTLS(certFile, keyFile string) error
}

type startOpts struct {
	server        httpServer
	version       string
	serverVersion string
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithHTTPServer sets the server the start command runs instead of a *http.Server bound to the host URL.
func WithHTTPServer(srv httpServer) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// WithVersion sets the service version reported by /version.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithServerVersion sets the deployment version reported by /version/system.
func WithServerVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.serverVersion = version
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start vp-verifier",
		Long:  "Start the OpenID4VP verifier REST service",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getStartupParameters(cmd)
			if err != nil {
				return fmt.Errorf("failed to get startup parameters: %w", err)
			}

			conf := &startOpts{}

			for _, opt := range opts {
				opt(conf)
			}

			return startServer(cmd, params, conf)
		},
	}
}

// application holds the wired router and the resources released on shutdown.
type application struct {
	echo      *echo.Echo
	readiness *readiness
	shutdown  []func()
}

func (a *application) close() {
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		a.shutdown[i]()
	}
}

func startServer(cmd *cobra.Command, params *startupParameters, conf *startOpts) error {
	common.SetDefaultLogLevel(logger, params.logLevel)

	app, err := buildApplication(cmd, params, conf)
	if err != nil {
		return err
	}

	defer app.close()

	srv := conf.server
	if srv == nil {
		srv = &http.Server{
			Addr:              params.hostURL,
			Handler:           app.echo,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		}
	}

	app.readiness.Ready(true)

	logger.Info("Starting vp-verifier server", log.WithURL(params.hostURL))

	if params.tlsParameters.serveCertPath != "" {
		err = srv.ListenAndServeTLS(params.tlsParameters.serveCertPath, params.tlsParameters.serveKeyPath)
	} else {
		err = srv.ListenAndServe()
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// nolint: funlen
func buildApplication(cmd *cobra.Command, params *startupParameters, conf *startOpts) (*application, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app := &application{}

	shutdownTracing, tracerProvider, tracer, err := tracing.Initialize(params.tracingParams.exporter,
		params.tracingParams.serviceName)
	if err != nil {
		return nil, fmt.Errorf("initialize tracing: %w", err)
	}

	app.shutdown = append(app.shutdown, shutdownTracing)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())
	e.Use(otelecho.Middleware(params.tracingParams.serviceName,
		otelecho.WithTracerProvider(tracerProvider),
		otelecho.WithSkipper(TracingSkipper),
	))

	app.echo = e
	app.readiness = newReadinessController(e)

	metricsCollector, err := createMetrics(params, app)
	if err != nil {
		app.close()

		return nil, err
	}

	rootCAs, err := tlsutils.GetCertPool(params.tlsParameters.systemCertPool, params.tlsParameters.caCerts)
	if err != nil {
		app.close()

		return nil, err
	}

	tlsConfig := &tls.Config{RootCAs: rootCAs, MinVersion: tls.VersionTLS12}

	keyManager, err := kms.NewKeyManager(ctx, &kms.Config{
		KMSType:          params.kmsParameters.kmsType,
		Endpoint:         params.kmsParameters.kmsEndpoint,
		Region:           params.kmsParameters.kmsRegion,
		AliasPrefix:      params.kmsParameters.aliasPrefix,
		HealthCheckKeyID: params.kmsParameters.healthCheckKeyID,
		LocalKeyDir:      params.kmsParameters.localKeyDir,
	}, metricsCollector)
	if err != nil {
		app.close()

		return nil, fmt.Errorf("failed to create key manager: %w", err)
	}

	logger.Infoc(ctx, "Key manager created", logfields.WithKMSType(string(params.kmsParameters.kmsType)))

	profiles, err := profilereader.NewVerifierReader(ctx, cmd, &profilereader.Config{
		KeyManager:      keyManager,
		SchemaValidator: jsonschema.NewCachingValidator(),
	})
	if err != nil {
		app.close()

		return nil, fmt.Errorf("failed to read verifier profiles: %w", err)
	}

	resolver := did.NewResolver(
		did.WithTLSConfig(tlsConfig),
		did.WithWebTimeout(params.didParameters.webTimeout),
		did.WithCacheTTL(params.didParameters.cacheTTL),
		did.WithRetryMax(params.didParameters.retryMax),
		did.WithAllowPrivateNetworks(params.didParameters.allowPrivateNetworks),
	)

	app.shutdown = append(app.shutdown, func() { _ = resolver.Close() }) //nolint:errcheck

	if params.didParameters.allowPrivateNetworks {
		logger.Warnc(ctx, "did:web resolution from private networks is enabled, do not use this setting in production")
	}

	var loaderOpts []ld.Opt

	if params.didParameters.contextEnableRemote {
		loaderOpts = append(loaderOpts, ld.WithRemoteLoading(&http.Client{
			Timeout:   params.didParameters.webTimeout,
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		}))
	}

	documentLoader, err := ld.NewInMemoryDocumentLoader(loaderOpts...)
	if err != nil {
		app.close()

		return nil, fmt.Errorf("failed to create JSON-LD document loader: %w", err)
	}

	storage, err := prepareStorage(ctx, params, tlsConfig, tracerProvider)
	if err != nil {
		app.close()

		return nil, err
	}

	app.shutdown = append(app.shutdown, storage.close)

	signer := jws.NewSigner(keyManager,
		jws.WithType(oidc4vp.RequestObjectType),
		jws.WithMetrics(metricsCollector),
	)

	oidc4vpService := oidc4vp.NewService(&oidc4vp.Config{
		SessionStore:               storage.sessionStore,
		ProfileService:             profiles,
		Signer:                     signer,
		TokenVerifier:              jws.NewVerifier(resolver),
		DefinitionMatcher:          vp.NewMatcher(documentLoader),
		Metrics:                    metricsCollector,
		ExternalURL:                params.hostURLExternal,
		SessionTTL:                 params.serviceParameters.sessionTTL,
		ClockSkew:                  params.serviceParameters.clockSkew,
		AllowUnsignedRequestObject: params.serviceParameters.allowUnsigned,
		SkipDefinitionCheck:        params.serviceParameters.skipDefinitionCheck,
	})

	if params.serviceParameters.allowUnsigned {
		logger.Warnc(ctx, "Unsigned request objects are enabled, do not use this setting in production")
	}

	var adminMiddleware []echo.MiddlewareFunc

	if params.apiKey != "" {
		adminMiddleware = append(adminMiddleware, mw.APIKeyAuth(params.apiKey))
	} else {
		logger.Warnc(ctx, "No API key configured, admin endpoints are not authenticated")
	}

	verifierController := verifier.NewController(&verifier.Config{
		OIDC4VPService:      oidc4vptracing.Wrap(oidc4vpService, tracer),
		Metrics:             metricsCollector,
		RequestObjectFormat: params.serviceParameters.requestObjectFormat,
	})

	verifierController.RegisterWalletRoutes(e)
	verifierController.RegisterAdminRoutes(e, adminMiddleware...)

	checks := append([]health.Check{
		{
			Name:  "kms",
			Check: keyManager.HealthCheck,
		},
	}, storage.checks...)

	healthcheck.NewController(e, &healthcheck.Config{Checks: checks})

	version.NewController(e, version.Config{
		Version:       conf.version,
		ServerVersion: conf.serverVersion,
	})

	logapi.NewController(e, adminMiddleware...)

	return app, nil
}

func createMetrics(params *startupParameters, app *application) (metrics.Metrics, error) {
	if params.metricsProviderName != prometheusProviderName {
		return noop.GetMetrics(), nil
	}

	handler := prometheus.NewHandler()

	var metricsServer *http.Server

	if url := params.prometheusMetricsProviderParams.url; url != "" {
		metricsRouter := echo.New()
		metricsRouter.HideBanner = true
		metricsRouter.Add(handler.Method(), handler.Path(), handler.Handler())

		metricsServer = &http.Server{
			Addr:              url,
			Handler:           metricsRouter,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		}
	} else {
		app.echo.Add(handler.Method(), handler.Path(), handler.Handler())
	}

	provider := prometheus.NewPrometheusProvider(metricsServer)

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}

	app.shutdown = append(app.shutdown, func() {
		if err := provider.Destroy(); err != nil {
			logger.Warn("Failed to destroy metrics provider", log.WithError(err))
		}
	})

	return provider.Metrics(), nil
}
