/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"context"
	"crypto"
	"time"
)

type Type string

const (
	AWS   Type = "aws"
	Local Type = "local"
)

// Config configure kms that stores signing keys.
type Config struct {
	KMSType          Type `json:"kmsType"`
	Endpoint         string
	Region           string
	AliasPrefix      string
	HealthCheckKeyID string
	// LocalKeyDir holds <keyID>.pem files for the local KMS. When empty, keys are generated in memory.
	LocalKeyDir string
}

// KeyManager signs digests with keys that never leave it.
type KeyManager interface {
	SignDigest(ctx context.Context, keyID string, digest []byte) ([]byte, error)
	PublicKey(ctx context.Context, keyID string) (crypto.PublicKey, error)
	HealthCheck(ctx context.Context) error
}

type metricsProvider interface {
	SignCount()
	SignTime(value time.Duration)
	ExportPublicKeyCount()
	ExportPublicKeyTime(value time.Duration)
}
