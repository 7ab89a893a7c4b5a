/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package redis

import (
	"context"
	"fmt"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// New returns a redis health check over an existing client.
func New(client pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("failed to ping redis: %w", err)
		}

		return nil
	}
}
