/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
	"github.com/trustbloc/vp-verifier/pkg/storage/redis"
)

const (
	keyPrefix = "oidc4vp_session"

	maxTxRetries = 5
)

// Store manages verification sessions in redis.
type Store struct {
	redisClient *redis.Client
}

// New creates Store.
func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// Create stores a new session with a key TTL matching its expiry.
func (s *Store) Create(ctx context.Context, session *oidc4vp.Session) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	ttl := time.Until(session.ExpireAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.State)
	}

	ok, err := s.redisClient.API().SetNX(ctxWithTimeout, s.redisClient.Key(keyPrefix, string(session.State)),
		documentFromSession(session), ttl).Result()
	if err != nil {
		return fmt.Errorf("session set: %w", err)
	}

	if !ok {
		return oidc4vp.ErrDuplicateState
	}

	return nil
}

// Get returns the session for the state.
func (s *Store) Get(ctx context.Context, state oidc4vp.State) (*oidc4vp.Session, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	doc, err := getDocument(ctxWithTimeout, s.redisClient.API(), s.redisClient.Key(keyPrefix, string(state)))
	if err != nil {
		return nil, err
	}

	return doc.session(state), nil
}

// Complete merges the update into a pending session within a WATCH/MULTI transaction.
func (s *Store) Complete(ctx context.Context, state oidc4vp.State, update *oidc4vp.SessionUpdate) error {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	key := s.redisClient.Key(keyPrefix, string(state))

	txf := func(tx *redisapi.Tx) error {
		doc, err := getDocument(ctxWithTimeout, tx, key)
		if err != nil {
			return err
		}

		if doc.Status.IsTerminal() {
			return oidc4vp.ErrSessionCompleted
		}

		doc.apply(update)

		_, err = tx.TxPipelined(ctxWithTimeout, func(pipe redisapi.Pipeliner) error {
			return pipe.SetArgs(ctxWithTimeout, key, doc, redisapi.SetArgs{KeepTTL: true}).Err()
		})

		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := s.redisClient.API().Watch(ctxWithTimeout, txf, key)
		if errors.Is(err, redisapi.TxFailedErr) {
			continue
		}

		if err != nil && !errors.Is(err, oidc4vp.ErrDataNotFound) && !errors.Is(err, oidc4vp.ErrSessionCompleted) {
			return fmt.Errorf("session complete: %w", err)
		}

		return err
	}

	return fmt.Errorf("session complete: %w", redisapi.TxFailedErr)
}

func getDocument(ctx context.Context, cmd redisapi.Cmdable, key string) (*sessionDocument, error) {
	b, err := cmd.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, oidc4vp.ErrDataNotFound
		}

		return nil, fmt.Errorf("find session: %w", err)
	}

	doc := &sessionDocument{}
	if err = doc.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("get and decode: %w", err)
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, oidc4vp.ErrDataNotFound
	}

	return doc, nil
}
