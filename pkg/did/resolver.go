/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/patrickmn/go-cache"
	diddoc "github.com/trustbloc/did-go/doc/did"
	"github.com/trustbloc/did-go/method/jwk"
	"github.com/trustbloc/did-go/method/key"
	"github.com/trustbloc/did-go/method/web"
	"github.com/trustbloc/did-go/vdr"
	vdrapi "github.com/trustbloc/did-go/vdr/api"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
)

var logger = log.New("did-resolver")

const (
	defaultCacheTTL    = 5 * time.Minute
	cacheCleanUpPeriod = time.Minute
)

// Resolver resolves did:key, did:jwk and did:web DIDs through a did-go VDR registry.
// Resolved documents are cached.
type Resolver struct {
	registry vdrapi.Registry
	cache    *cache.Cache
}

type options struct {
	httpClient           *http.Client
	tlsConfig            *tls.Config
	cacheTTL             time.Duration
	retryMax             int
	webTimeout           time.Duration
	allowPrivateNetworks bool
}

// Opt configures a Resolver.
type Opt func(o *options)

// WithHTTPClient sets the HTTP client used for did:web. The client is used as is, without the
// address restrictions of the default client.
func WithHTTPClient(client *http.Client) Opt {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithTLSConfig sets the TLS configuration of the default did:web client.
func WithTLSConfig(tlsConfig *tls.Config) Opt {
	return func(o *options) {
		o.tlsConfig = tlsConfig
	}
}

// WithCacheTTL sets how long resolved documents are cached. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Opt {
	return func(o *options) {
		o.cacheTTL = ttl
	}
}

// WithRetryMax sets the maximum number of did:web fetch retries.
func WithRetryMax(retryMax int) Opt {
	return func(o *options) {
		o.retryMax = retryMax
	}
}

func WithWebTimeout(timeout time.Duration) Opt {
	return func(o *options) {
		o.webTimeout = timeout
	}
}

// WithAllowPrivateNetworks lets did:web documents be fetched from loopback, private and link-local addresses.
func WithAllowPrivateNetworks(allow bool) Opt {
	return func(o *options) {
		o.allowPrivateNetworks = allow
	}
}

// NewResolver returns a new Resolver.
func NewResolver(opts ...Opt) *Resolver {
	o := &options{
		cacheTTL:   defaultCacheTTL,
		retryMax:   defaultRetryMax,
		webTimeout: defaultWebTimeout,
	}

	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = newWebHTTPClient(o)
	}

	r := &Resolver{
		registry: vdr.New(
			vdr.WithVDR(key.New()),
			vdr.WithVDR(jwk.New()),
			vdr.WithVDR(&webVDR{http: httpClient, VDR: web.New()}),
		),
	}

	if o.cacheTTL > 0 {
		r.cache = cache.New(o.cacheTTL, cacheCleanUpPeriod)
	}

	return r
}

// Resolve returns the resolution of did. Lookups with method options bypass the cache.
func (r *Resolver) Resolve(did string, opts ...vdrapi.DIDMethodOption) (*diddoc.DocResolution, error) {
	useCache := r.cache != nil && len(opts) == 0

	if useCache {
		if docRes, ok := r.cache.Get(did); ok {
			return docRes.(*diddoc.DocResolution), nil //nolint:forcetypeassert
		}
	}

	docRes, err := r.registry.Resolve(did, opts...)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", did, err)
	}

	if useCache {
		r.cache.SetDefault(did, docRes)
	}

	logger.Debug("DID resolved", logfields.WithDID(did))

	return docRes, nil
}

// Close releases the resources of the registered methods.
func (r *Resolver) Close() error {
	return r.registry.Close()
}
