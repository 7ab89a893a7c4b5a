/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
)

const (
	// DatabaseTypeFlagName is the database type.
	DatabaseTypeFlagName = "database-type"
	// DatabaseTypeFlagUsage describes the usage.
	DatabaseTypeFlagUsage = "The type of database to use for interaction sessions. Supported options: " +
		"mongodb, redis, mem. Default: mem." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTypeEnvKey
	// DatabaseTypeEnvKey is the database type.
	DatabaseTypeEnvKey = "VP_VERIFIER_DATABASE_TYPE"

	// DatabaseURLFlagName is the database url.
	DatabaseURLFlagName = "database-url"
	// DatabaseURLFlagUsage describes the usage.
	DatabaseURLFlagUsage = "Database URL with credentials if required." +
		" Examples: 'mongodb://mongodb.example.com:27017', 'redis.example.com:6379,redis2.example.com:6379'." +
		" For redis a comma-separated list of addresses is accepted." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseURLEnvKey
	// DatabaseURLEnvKey is the database url.
	DatabaseURLEnvKey = "VP_VERIFIER_DATABASE_URL"

	// DatabaseTimeoutFlagName is the database timeout.
	DatabaseTimeoutFlagName = "database-timeout"
	// DatabaseTimeoutFlagUsage describes the usage.
	DatabaseTimeoutFlagUsage = "Total time in seconds to wait until the datasource is available before giving up." +
		" Default: 30 seconds." +
		" Alternatively, this can be set with the following environment variable: " + DatabaseTimeoutEnvKey
	// DatabaseTimeoutEnvKey is the database timeout.
	DatabaseTimeoutEnvKey = "VP_VERIFIER_DATABASE_TIMEOUT"

	// DatabasePrefixFlagName is the storage prefix.
	DatabasePrefixFlagName = "database-prefix"
	// DatabasePrefixEnvKey is the storage prefix.
	DatabasePrefixEnvKey = "VP_VERIFIER_DATABASE_PREFIX"
	// DatabasePrefixFlagUsage describes the usage.
	DatabasePrefixFlagUsage = "An optional prefix to be used when creating and retrieving underlying databases. " +
		"Alternatively, this can be set with the following environment variable: " + DatabasePrefixEnvKey

	// DatabaseTimeoutDefault is the default storage timeout.
	DatabaseTimeoutDefault = 30
)

// Supported database types.
const (
	DatabaseTypeMongoDB = "mongodb"
	DatabaseTypeRedis   = "redis"
	DatabaseTypeMem     = "mem"
)

// DBParameters holds database configuration.
type DBParameters struct {
	Type    string
	URL     string
	Prefix  string
	Timeout uint64
}

// Flags registers common command flags.
func Flags(cmd *cobra.Command) {
	cmd.Flags().StringP(DatabaseTypeFlagName, "", "", DatabaseTypeFlagUsage)
	cmd.Flags().StringP(DatabaseURLFlagName, "", "", DatabaseURLFlagUsage)
	cmd.Flags().StringP(DatabasePrefixFlagName, "", "", DatabasePrefixFlagUsage)
	cmd.Flags().StringP(DatabaseTimeoutFlagName, "", "", DatabaseTimeoutFlagUsage)
}

// DBParams fetches the DB parameters configured for this command.
func DBParams(cmd *cobra.Command) (*DBParameters, error) {
	var err error

	params := &DBParameters{}

	params.Type = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseTypeFlagName, DatabaseTypeEnvKey)
	if params.Type == "" {
		params.Type = DatabaseTypeMem
	}

	switch params.Type {
	case DatabaseTypeMem:
	case DatabaseTypeMongoDB, DatabaseTypeRedis:
		params.URL, err = cmdutils.GetUserSetVarFromString(cmd, DatabaseURLFlagName, DatabaseURLEnvKey, false)
		if err != nil {
			return nil, fmt.Errorf("failed to configure dbURL: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", params.Type)
	}

	params.Prefix = cmdutils.GetUserSetOptionalVarFromString(cmd, DatabasePrefixFlagName, DatabasePrefixEnvKey)

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, DatabaseTimeoutFlagName, DatabaseTimeoutEnvKey)
	if timeout == "" {
		timeout = strconv.Itoa(DatabaseTimeoutDefault)
	}

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dbTimeout %s: %w", timeout, err)
	}

	return params, nil
}

// RedisAddrs splits a comma-separated redis address list.
func (p *DBParameters) RedisAddrs() []string {
	var addrs []string

	for _, addr := range strings.Split(p.URL, ",") {
		addr = strings.TrimPrefix(strings.TrimSpace(addr), "redis://")
		if addr != "" {
			addrs = append(addrs, addr)
		}
	}

	return addrs
}

// Retry runs task once per second until it succeeds or numRetries is exhausted.
func Retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to storage, will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
