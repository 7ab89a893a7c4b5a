/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const handlerPath = "/metrics"

// Handler serves the collected metrics in the Prometheus exposition format.
type Handler struct {
	gatherer prometheus.Gatherer
}

// HandlerOpt configures Handler.
type HandlerOpt func(h *Handler)

// WithGatherer serves metrics from gatherer instead of the default registry.
func WithGatherer(gatherer prometheus.Gatherer) HandlerOpt {
	return func(h *Handler) {
		h.gatherer = gatherer
	}
}

func NewHandler(opts ...HandlerOpt) *Handler {
	h := &Handler{gatherer: prometheus.DefaultGatherer}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *Handler) Path() string {
	return handlerPath
}

func (h *Handler) Method() string {
	return http.MethodGet
}

// Handler returns the echo handler. OpenMetrics is negotiated when the scraper asks for it.
func (h *Handler) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
}
