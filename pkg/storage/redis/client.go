/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout = 15 * time.Second
	keySeparator   = ":"
)

type options struct {
	universal     redis.UniversalOptions
	namespace     string
	timeout       time.Duration
	traceProvider trace.TracerProvider
}

// ClientOpt configures Client.
type ClientOpt func(opts *options)

// WithTraceProvider instruments the client with the given tracer provider.
func WithTraceProvider(traceProvider trace.TracerProvider) ClientOpt {
	return func(opts *options) {
		opts.traceProvider = traceProvider
	}
}

// WithMasterName enables sentinel failover for the named master.
func WithMasterName(masterName string) ClientOpt {
	return func(opts *options) {
		opts.universal.MasterName = masterName
	}
}

func WithPassword(password string) ClientOpt {
	return func(opts *options) {
		opts.universal.Password = password
	}
}

func WithTLSConfig(tlsConfig *tls.Config) ClientOpt {
	return func(opts *options) {
		opts.universal.TLSConfig = tlsConfig
	}
}

// WithTimeout bounds the connection check and every store operation.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(opts *options) {
		opts.timeout = timeout
	}
}

// WithNamespace prefixes every key built with Client.Key.
func WithNamespace(namespace string) ClientOpt {
	return func(opts *options) {
		opts.namespace = namespace
	}
}

// Client is a redis connection shared by the stores of a single deployment.
type Client struct {
	universal redis.UniversalClient
	namespace string
	timeout   time.Duration
}

// New connects to redis. A sentinel client is used when a master name is set, a cluster client when more than
// one address is given, and a single-node client otherwise.
func New(addrs []string, opts ...ClientOpt) (*Client, error) {
	o := &options{timeout: defaultTimeout}

	for _, opt := range opts {
		opt(o)
	}

	o.universal.Addrs = addrs
	o.universal.ContextTimeoutEnabled = true

	c := &Client{
		universal: redis.NewUniversalClient(&o.universal),
		namespace: o.namespace,
		timeout:   o.timeout,
	}

	if o.traceProvider != nil {
		if err := redisotel.InstrumentTracing(c.universal, redisotel.WithTracerProvider(o.traceProvider)); err != nil {
			return nil, fmt.Errorf("instrument with tracing: %w", err)
		}
	}

	if err := c.Ping(context.Background()); err != nil {
		_ = c.universal.Close() //nolint:errcheck

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return c, nil
}

// Key joins parts into a key within the client namespace.
func (c *Client) Key(parts ...string) string {
	if c.namespace != "" {
		parts = append([]string{c.namespace}, parts...)
	}

	return strings.Join(parts, keySeparator)
}

// ContextWithTimeout derives a context bounded by the client timeout.
func (c *Client) ContextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.ContextWithTimeout(ctx)
	defer cancel()

	return c.universal.Ping(ctx).Err()
}

// API exposes the underlying universal client.
func (c *Client) API() redis.UniversalClient {
	return c.universal
}

func (c *Client) Close() error {
	return c.universal.Close()
}
