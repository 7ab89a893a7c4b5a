/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
)

var logger = log.New("health")

const (
	defaultCacheDuration = 5 * time.Second
	defaultTimeout       = 5 * time.Second
)

type options struct {
	cacheDuration time.Duration
	timeout       time.Duration
}

type Opt func(*options)

// WithCacheDuration sets how long a check result is reused.
func WithCacheDuration(d time.Duration) Opt {
	return func(o *options) {
		o.cacheDuration = d
	}
}

// WithTimeout sets the global timeout of a health request.
func WithTimeout(d time.Duration) Opt {
	return func(o *options) {
		o.timeout = d
	}
}

// NewHandler returns an http.Handler that runs the given checks on every request. The response status
// is 200 when every component is up and 503 otherwise.
func NewHandler(checks []health.Check, opts ...Opt) http.Handler {
	op := &options{
		cacheDuration: defaultCacheDuration,
		timeout:       defaultTimeout,
	}

	for _, opt := range opts {
		opt(op)
	}

	rt := NewResponseTimes()

	checkerOpts := []health.CheckerOption{
		health.WithCacheDuration(op.cacheDuration),
		health.WithTimeout(op.timeout),
		health.WithInterceptors(ResponseTimeInterceptor(rt)),
		health.WithStatusListener(func(ctx context.Context, state health.CheckerState) {
			logger.Infoc(ctx, "Health status changed", logfields.WithAdditionalMessage(string(state.Status)))
		}),
	}

	for _, c := range checks {
		checkerOpts = append(checkerOpts, health.WithCheck(c))
	}

	return health.NewHandler(
		health.NewChecker(checkerOpts...),
		health.WithResultWriter(NewJSONResultWriter(rt)),
	)
}
