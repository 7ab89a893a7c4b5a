/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	redischeck "github.com/trustbloc/vp-verifier/pkg/observability/health/redis"
	"github.com/trustbloc/vp-verifier/pkg/storage/redis"
)

func TestSuccess(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.New([]string{mr.Addr()})
	require.NoError(t, err)

	require.NoError(t, redischeck.New(client)(context.Background()))
}

func TestFailToPingRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.New([]string{mr.Addr()})
	require.NoError(t, err)

	mr.Close()

	require.ErrorContains(t, redischeck.New(client)(context.Background()), "failed to ping redis")
}
