/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ld

import (
	"fmt"
	"net/http"

	jsonld "github.com/piprate/json-gold/ld"
	ldcontext "github.com/trustbloc/did-go/doc/ld/context"
	ld "github.com/trustbloc/did-go/doc/ld/documentloader"
	ldstore "github.com/trustbloc/did-go/doc/ld/store"
	"github.com/trustbloc/did-go/legacy/mem"
)

// provider contains dependencies for the JSON-LD document loader.
type provider interface {
	JSONLDContextStore() ldstore.ContextStore
	JSONLDRemoteProviderStore() ldstore.RemoteProviderStore
}

type options struct {
	remoteClient  *http.Client
	extraContexts []ldcontext.Document
}

// Opt configures the document loader.
type Opt func(o *options)

// WithRemoteLoading lets contexts missing from the store be fetched with client.
func WithRemoteLoading(client *http.Client) Opt {
	return func(o *options) {
		o.remoteClient = client
	}
}

// WithExtraContexts preloads contexts in addition to the embedded ones.
func WithExtraContexts(docs ...ldcontext.Document) Opt {
	return func(o *options) {
		o.extraContexts = append(o.extraContexts, docs...)
	}
}

// NewDocumentLoader returns a JSON-LD document loader backed by p. The W3C credential, DID and
// security contexts are always preloaded.
func NewDocumentLoader(p provider, opts ...Opt) (jsonld.DocumentLoader, error) {
	o := &options{}

	for _, opt := range opts {
		opt(o)
	}

	var loaderOpts []ld.Opts

	if len(o.extraContexts) > 0 {
		loaderOpts = append(loaderOpts, ld.WithExtraContexts(o.extraContexts...))
	}

	if o.remoteClient != nil {
		loaderOpts = append(loaderOpts, ld.WithRemoteDocumentLoader(jsonld.NewDefaultDocumentLoader(o.remoteClient)))
	}

	loader, err := ld.NewDocumentLoader(p, loaderOpts...)
	if err != nil {
		return nil, fmt.Errorf("new document loader: %w", err)
	}

	return loader, nil
}

// NewInMemoryDocumentLoader returns a document loader whose stores live in memory.
func NewInMemoryDocumentLoader(opts ...Opt) (jsonld.DocumentLoader, error) {
	p, err := NewStoreProvider(mem.NewProvider())
	if err != nil {
		return nil, err
	}

	return NewDocumentLoader(p, opts...)
}
