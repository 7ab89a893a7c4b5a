/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/pkg/observability/metrics"
)

var logger = metrics.Logger

const outcomeLabel = "status"

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. When httpServer is nil the
// metrics are served by the main router only.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Start metrics HTTP server", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		if err := pp.httpServer.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("shutdown metrics HTTP server: %w", err)
		}
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the verifier.
type PromMetrics struct {
	signCount                  prometheus.Counter
	signTime                   prometheus.Histogram
	exportPublicKeyCount       prometheus.Counter
	exportPublicKeyTime        prometheus.Histogram
	jwsSignTime                prometheus.Histogram
	requestObjectTime          prometheus.Histogram
	checkAuthRespTime          prometheus.Histogram
	initiateInteractionTime    prometheus.Histogram
	verifyAuthorizationRespTim prometheus.Histogram
	verificationOutcome        *prometheus.CounterVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		signCount: newCounter(metrics.Crypto, metrics.CryptoSignCountMetric,
			"The number of times crypto sign called.", nil),
		signTime: newHistogram(metrics.Crypto, metrics.CryptoSignTimeMetric,
			"The time (in seconds) it takes to run crypto sign.", nil),
		exportPublicKeyCount: newCounter(metrics.Crypto, metrics.CryptoExportPublicKeyCount,
			"The number of times crypto export public key called.", nil),
		exportPublicKeyTime: newHistogram(metrics.Crypto, metrics.CryptoExportPublicKeyTimeMetric,
			"The time (in seconds) it takes to export a public key.", nil),
		jwsSignTime: newHistogram(metrics.Crypto, metrics.CryptoJWSSignTimeMetric,
			"The time (in seconds) it takes to build and sign a JWS.", nil),
		requestObjectTime: newHistogram(metrics.Controller, metrics.ControllerRequestObjectMetric,
			"The time (in seconds) it takes to execute request object controller endpoint call.", nil),
		checkAuthRespTime: newHistogram(metrics.Controller, metrics.ControllerCheckAuthRespMetric,
			"The time (in seconds) it takes to execute checkAuthorizationResponse controller endpoint call.", nil),
		initiateInteractionTime: newHistogram(metrics.Service, metrics.InitiateInteraction,
			"The time (in seconds) it takes to execute InitiateOidcInteraction service call.", nil),
		verifyAuthorizationRespTim: newHistogram(metrics.Service, metrics.VerifyAuthorizationResponse,
			"The time (in seconds) it takes to execute VerifyAuthorizationResponse service call.", nil),
		verificationOutcome: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.Service,
			Name:      metrics.VerificationOutcome,
			Help:      "The number of authorization responses by verification outcome.",
		}, []string{outcomeLabel}),
	}

	registerMetrics(pm)

	return pm
}

// SignCount increments the number of crypto sign calls.
func (pm *PromMetrics) SignCount() {
	pm.signCount.Inc()
}

// SignTime records the time for sign.
func (pm *PromMetrics) SignTime(value time.Duration) {
	pm.signTime.Observe(value.Seconds())

	logger.Debug("crypto sign time", log.WithDuration(value))
}

// ExportPublicKeyCount increments the number of public key exports.
func (pm *PromMetrics) ExportPublicKeyCount() {
	pm.exportPublicKeyCount.Inc()
}

// ExportPublicKeyTime records the time for public key export.
func (pm *PromMetrics) ExportPublicKeyTime(value time.Duration) {
	pm.exportPublicKeyTime.Observe(value.Seconds())

	logger.Debug("crypto export public key time", log.WithDuration(value))
}

// JWSSignTime records the time to build and sign a JWS.
func (pm *PromMetrics) JWSSignTime(value time.Duration) {
	pm.jwsSignTime.Observe(value.Seconds())

	logger.Debug("jws sign time", log.WithDuration(value))
}

// RequestObjectTime records the time for the request object controller endpoint call.
func (pm *PromMetrics) RequestObjectTime(value time.Duration) {
	pm.requestObjectTime.Observe(value.Seconds())

	logger.Debug("RequestObject controller endpoint time", log.WithDuration(value))
}

// CheckAuthorizationResponseTime records the time for CheckAuthorizationResponse controller endpoint call.
func (pm *PromMetrics) CheckAuthorizationResponseTime(value time.Duration) {
	pm.checkAuthRespTime.Observe(value.Seconds())

	logger.Debug("CheckAuthorizationResponse controller endpoint time", log.WithDuration(value))
}

func (pm *PromMetrics) InitiateInteractionTime(value time.Duration) {
	pm.initiateInteractionTime.Observe(value.Seconds())

	logger.Debug("InitiateOidcInteraction service call time", log.WithDuration(value))
}

func (pm *PromMetrics) VerifyAuthorizationResponseTime(value time.Duration) {
	pm.verifyAuthorizationRespTim.Observe(value.Seconds())

	logger.Debug("VerifyAuthorizationResponse service call time", log.WithDuration(value))
}

// VerificationOutcome counts authorization responses by terminal status.
func (pm *PromMetrics) VerificationOutcome(status string) {
	pm.verificationOutcome.WithLabelValues(status).Inc()
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.signCount, pm.signTime, pm.exportPublicKeyCount, pm.exportPublicKeyTime, pm.jwsSignTime,
		pm.requestObjectTime, pm.checkAuthRespTime, pm.initiateInteractionTime, pm.verifyAuthorizationRespTim,
		pm.verificationOutcome,
	)
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
