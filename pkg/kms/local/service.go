/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package local

import (
	"context"
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
)

var logger = log.New("local-kms")

// ErrKeyNotFound is returned when a key id is not known to the service.
var ErrKeyNotFound = errors.New("key not found")

// Service is an in-process ECDSA key service. Keys are read from PEM files in a directory
// (<dir>/<keyID>.pem) or generated on first use when no directory is configured.
type Service struct {
	mutex    sync.RWMutex
	keys     map[string]*ecdsa.PrivateKey
	keyDir   string
	generate bool
}

// Opt configures the Service.
type Opt func(s *Service)

// WithKeyDir loads keys from PEM files in dir.
func WithKeyDir(dir string) Opt {
	return func(s *Service) {
		s.keyDir = dir
	}
}

// WithKeyGeneration makes the service generate a P-256 key for unknown key ids.
func WithKeyGeneration() Opt {
	return func(s *Service) {
		s.generate = true
	}
}

// New returns a new local key service.
func New(opts ...Opt) *Service {
	s := &Service{
		keys: map[string]*ecdsa.PrivateKey{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ImportKey adds a private key under keyID.
func (s *Service) ImportKey(keyID string, key *ecdsa.PrivateKey) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.keys[keyID] = key
}

// ImportPEM parses a PKCS#8 or SEC 1 PEM encoded EC private key and adds it under keyID.
func (s *Service) ImportPEM(keyID string, pemBytes []byte) error {
	key, err := parsePEM(pemBytes)
	if err != nil {
		return fmt.Errorf("key %s: %w", keyID, err)
	}

	s.ImportKey(keyID, key)

	return nil
}

// SignDigest signs a precomputed digest and returns an ASN.1 DER signature.
func (s *Service) SignDigest(ctx context.Context, keyID string, digest []byte) ([]byte, error) {
	key, err := s.key(ctx, keyID)
	if err != nil {
		return nil, err
	}

	return ecdsa.SignASN1(rand.Reader, key, digest)
}

// PublicKey returns the public key of keyID.
func (s *Service) PublicKey(ctx context.Context, keyID string) (crypto.PublicKey, error) {
	key, err := s.key(ctx, keyID)
	if err != nil {
		return nil, err
	}

	return &key.PublicKey, nil
}

// HealthCheck always succeeds.
func (s *Service) HealthCheck(context.Context) error {
	return nil
}

func (s *Service) key(ctx context.Context, keyID string) (*ecdsa.PrivateKey, error) {
	s.mutex.RLock()
	key, ok := s.keys[keyID]
	s.mutex.RUnlock()

	if ok {
		return key, nil
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if key, ok = s.keys[keyID]; ok {
		return key, nil
	}

	if s.keyDir != "" {
		pemBytes, err := os.ReadFile(filepath.Join(s.keyDir, filepath.Base(keyID)+".pem"))
		if err == nil {
			key, err = parsePEM(pemBytes)
			if err != nil {
				return nil, fmt.Errorf("key %s: %w", keyID, err)
			}

			s.keys[keyID] = key

			return key, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read key %s: %w", keyID, err)
		}
	}

	if !s.generate {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, keyID)
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	logger.Warnc(ctx, "Generated ephemeral signing key", logfields.WithKeyID(keyID))

	s.keys[keyID] = key

	return key, nil
}

func parsePEM(pemBytes []byte) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, errors.New("no PEM block found")
	}

	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("unsupported private key type %T", parsed)
	}

	return key, nil
}
