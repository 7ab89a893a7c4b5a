/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
)

const (
	cleanupInterval = time.Minute
)

// Store keeps verification sessions in process memory. Sessions do not survive a restart.
type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
	now   func() time.Time
}

// New creates Store.
func New() *Store {
	return &Store{
		cache: cache.New(cache.NoExpiration, cleanupInterval),
		now:   time.Now,
	}
}

// Create stores a copy of the session until its expiry.
func (s *Store) Create(_ context.Context, session *oidc4vp.Session) error {
	ttl := session.ExpireAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.State)
	}

	cp := *session

	if err := s.cache.Add(string(session.State), &cp, ttl); err != nil {
		return oidc4vp.ErrDuplicateState
	}

	return nil
}

// Get returns a copy of the session for the state.
func (s *Store) Get(_ context.Context, state oidc4vp.State) (*oidc4vp.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.get(state, s.now())
	if err != nil {
		return nil, err
	}

	cp := *session

	return &cp, nil
}

// Complete merges the update into a pending session.
func (s *Store) Complete(_ context.Context, state oidc4vp.State, update *oidc4vp.SessionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	session, err := s.get(state, now)
	if err != nil {
		return err
	}

	if session.Status.IsTerminal() {
		return oidc4vp.ErrSessionCompleted
	}

	cp := *session
	cp.Status = update.Status
	cp.VerifiedAt = update.VerifiedAt
	cp.Claims = update.Claims
	cp.Error = update.Error
	cp.ResponseDigest = update.ResponseDigest

	// get guarantees ExpireAt is after now, so the item keeps a positive TTL. go-cache never expires
	// items set with a non-positive duration.
	s.cache.Set(string(state), &cp, cp.ExpireAt.Sub(now))

	return nil
}

// get returns the session unless it is missing or expired at now. Expired sessions are removed.
func (s *Store) get(state oidc4vp.State, now time.Time) (*oidc4vp.Session, error) {
	v, ok := s.cache.Get(string(state))
	if !ok {
		return nil, oidc4vp.ErrDataNotFound
	}

	session, ok := v.(*oidc4vp.Session)
	if !ok || !session.ExpireAt.After(now) {
		s.cache.Delete(string(state))

		return nil, oidc4vp.ErrDataNotFound
	}

	return session, nil
}
