/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
	awssvc "github.com/trustbloc/vp-verifier/pkg/kms/aws"
	"github.com/trustbloc/vp-verifier/pkg/kms/local"
)

var logger = log.New("kms")

// NewKeyManager creates the key manager selected by cfg.KMSType.
func NewKeyManager(ctx context.Context, cfg *Config, metrics metricsProvider) (KeyManager, error) {
	switch cfg.KMSType {
	case Local:
		opts := []local.Opt{}

		if cfg.LocalKeyDir != "" {
			opts = append(opts, local.WithKeyDir(cfg.LocalKeyDir))
		} else {
			logger.Warnc(ctx, "No local key directory configured, signing keys will be generated in memory",
				logfields.WithKMSType(string(cfg.KMSType)))

			opts = append(opts, local.WithKeyGeneration())
		}

		return local.New(opts...), nil
	case AWS:
		var loadOpts []func(*awsconfig.LoadOptions) error

		if cfg.Region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
		}

		awsConfig, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}

		opts := []awssvc.Opts{
			awssvc.WithKeyAliasPrefix(cfg.AliasPrefix),
		}

		if cfg.Endpoint != "" {
			opts = append(opts, awssvc.WithEndpoint(cfg.Endpoint))
		}

		return awssvc.New(&awsConfig, metrics, cfg.HealthCheckKeyID, opts...), nil
	}

	return nil, fmt.Errorf("unsupported kms type: %s", cfg.KMSType)
}
