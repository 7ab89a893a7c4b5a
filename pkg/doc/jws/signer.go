/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination signer_mocks_test.go -package jws_test -source=signer.go -mock_names keyManager=MockKeyManager

package jws

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Header names.
const (
	HeaderAlgorithm = "alg"
	HeaderType      = "typ"
	HeaderKeyID     = "kid"
)

const defaultType = "JWT"

// keyManager produces DER encoded signatures over a digest with a key it holds.
type keyManager interface {
	SignDigest(ctx context.Context, keyID string, digest []byte) ([]byte, error)
}

type metricsProvider interface {
	JWSSignTime(value time.Duration)
}

// KeyRef references a signing key held by the key manager.
type KeyRef struct {
	// KeyID is the key manager identifier of the key.
	KeyID string
	// KID is the verification method DID URL published in the "kid" header. Optional.
	KID string
	Alg Algorithm
}

// Signer builds compact JWS tokens signed by a key manager.
type Signer struct {
	keyManager keyManager
	metrics    metricsProvider
	typ        string
}

// SignerOpt configures a Signer.
type SignerOpt func(s *Signer)

// WithType sets the "typ" header value.
func WithType(typ string) SignerOpt {
	return func(s *Signer) {
		s.typ = typ
	}
}

// WithMetrics sets the metrics provider.
func WithMetrics(metrics metricsProvider) SignerOpt {
	return func(s *Signer) {
		s.metrics = metrics
	}
}

// NewSigner returns a new Signer.
func NewSigner(km keyManager, opts ...SignerOpt) *Signer {
	s := &Signer{
		keyManager: km,
		typ:        defaultType,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Sign serializes payload as the JWS payload and signs it with the referenced key.
// Only ECDSA algorithms are supported since the key manager signs digests.
func (s *Signer) Sign(ctx context.Context, payload interface{}, keyRef KeyRef) (string, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.JWSSignTime(time.Since(startTime))
		}
	}()

	if keyRef.KeyID == "" {
		return "", fmt.Errorf("%w: empty key id", ErrKeyNotResolved)
	}

	header := map[string]interface{}{
		HeaderAlgorithm: keyRef.Alg,
		HeaderType:      s.typ,
	}

	if keyRef.KID != "" {
		header[HeaderKeyID] = keyRef.KID
	}

	signingInput, err := encodeSigningInput(header, payload)
	if err != nil {
		return "", err
	}

	digest, err := keyRef.Alg.Digest([]byte(signingInput))
	if err != nil {
		return "", err
	}

	der, err := s.keyManager.SignDigest(ctx, keyRef.KeyID, digest)
	if err != nil {
		return "", fmt.Errorf("sign digest with key %s: %w", keyRef.KeyID, err)
	}

	sig, err := DERToCompact(der, keyRef.Alg)
	if err != nil {
		return "", fmt.Errorf("convert signature: %w", err)
	}

	return signingInput + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

func encodeSigningInput(header map[string]interface{}, payload interface{}) (string, error) {
	headerBytes, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("marshal header: %w", err)
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(headerBytes) + "." +
		base64.RawURLEncoding.EncodeToString(payloadBytes), nil
}
