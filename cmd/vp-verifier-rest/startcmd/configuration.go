/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/alexliesenfeld/health"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vp-verifier/cmd/common"
	"github.com/trustbloc/vp-verifier/internal/logfields"
	mongocheck "github.com/trustbloc/vp-verifier/pkg/observability/health/mongo"
	redischeck "github.com/trustbloc/vp-verifier/pkg/observability/health/redis"
	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
	memsessionstore "github.com/trustbloc/vp-verifier/pkg/storage/memstore/sessionstore"
	"github.com/trustbloc/vp-verifier/pkg/storage/mongodb"
	mongosessionstore "github.com/trustbloc/vp-verifier/pkg/storage/mongodb/sessionstore"
	"github.com/trustbloc/vp-verifier/pkg/storage/redis"
	redissessionstore "github.com/trustbloc/vp-verifier/pkg/storage/redis/sessionstore"
)

const databaseName = "vp_verifier"

type sessionStore interface {
	Create(ctx context.Context, session *oidc4vp.Session) error
	Get(ctx context.Context, state oidc4vp.State) (*oidc4vp.Session, error)
	Complete(ctx context.Context, state oidc4vp.State, update *oidc4vp.SessionUpdate) error
}

// storageConfiguration holds the session store selected by the database type together with the health
// checks of its backend.
type storageConfiguration struct {
	sessionStore sessionStore
	checks       []health.Check
	close        func()
}

func prepareStorage(
	ctx context.Context,
	params *startupParameters,
	tlsConfig *tls.Config,
	tracerProvider trace.TracerProvider,
) (*storageConfiguration, error) {
	dbParams := params.dbParameters

	logger.Infoc(ctx, "Creating session store", logfields.WithDatabaseType(dbParams.Type))

	switch dbParams.Type {
	case common.DatabaseTypeMem:
		return &storageConfiguration{
			sessionStore: memsessionstore.New(),
			close:        func() {},
		}, nil
	case common.DatabaseTypeMongoDB:
		return prepareMongoDBStorage(ctx, dbParams, tracerProvider)
	case common.DatabaseTypeRedis:
		return prepareRedisStorage(ctx, dbParams, params.redisParameters, tlsConfig, tracerProvider)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", dbParams.Type)
	}
}

func prepareMongoDBStorage(
	ctx context.Context,
	dbParams *common.DBParameters,
	tracerProvider trace.TracerProvider,
) (*storageConfiguration, error) {
	client, err := mongodb.New(dbParams.URL, dbParams.Prefix+databaseName,
		mongodb.WithTraceProvider(tracerProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new MongoDB client: %w", err)
	}

	err = common.Retry(func() error {
		return client.Ping(ctx)
	}, dbParams.Timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	store, err := mongosessionstore.New(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb session store: %w", err)
	}

	return &storageConfiguration{
		sessionStore: store,
		checks: []health.Check{
			{
				Name:  "mongodb",
				Check: mongocheck.New(client),
			},
		},
		close: func() {
			if closeErr := client.Close(); closeErr != nil {
				logger.Warn("Failed to close MongoDB client", log.WithError(closeErr))
			}
		},
	}, nil
}

func prepareRedisStorage(
	ctx context.Context,
	dbParams *common.DBParameters,
	redisParams *redisParameters,
	tlsConfig *tls.Config,
	tracerProvider trace.TracerProvider,
) (*storageConfiguration, error) {
	opts := []redis.ClientOpt{
		redis.WithTraceProvider(tracerProvider),
		redis.WithMasterName(redisParams.masterName),
		redis.WithPassword(redisParams.password),
		redis.WithNamespace(dbParams.Prefix + databaseName),
	}

	if redisParams.useTLS {
		opts = append(opts, redis.WithTLSConfig(tlsConfig))
	}

	var client *redis.Client

	err := common.Retry(func() error {
		var connErr error

		client, connErr = redis.New(dbParams.RedisAddrs(), opts...)

		return connErr
	}, dbParams.Timeout, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create a new Redis client: %w", err)
	}

	return &storageConfiguration{
		sessionStore: redissessionstore.New(client),
		checks: []health.Check{
			{
				Name:  "redis",
				Check: redischeck.New(client),
			},
		},
		close: func() {
			if closeErr := client.Close(); closeErr != nil {
				logger.Warn("Failed to close Redis client", log.WithError(closeErr))
			}
		},
	}, nil
}
