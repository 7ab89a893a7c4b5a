/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/vp-verifier/pkg/doc/vp"
	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
)

func TestStore(t *testing.T) {
	store := New()
	ctx := context.Background()

	t.Run("create, get and complete", func(t *testing.T) {
		session := newSession(time.Hour)

		require.NoError(t, store.Create(ctx, session))

		got, err := store.Get(ctx, session.State)
		require.NoError(t, err)
		require.Equal(t, session, got)
		require.NotSame(t, session, got)

		verifiedAt := time.Now().UTC()

		require.NoError(t, store.Complete(ctx, session.State, &oidc4vp.SessionUpdate{
			Status:         oidc4vp.StatusSuccess,
			VerifiedAt:     &verifiedAt,
			Claims:         oidc4vp.Claims{"iss": "did:example:holder"},
			ResponseDigest: "digest",
		}))

		got, err = store.Get(ctx, session.State)
		require.NoError(t, err)
		require.Equal(t, oidc4vp.StatusSuccess, got.Status)
		require.Equal(t, oidc4vp.Claims{"iss": "did:example:holder"}, got.Claims)
		require.Equal(t, "digest", got.ResponseDigest)
		require.Equal(t, session.RequestObject, got.RequestObject)
		require.Equal(t, oidc4vp.StatusPending, session.Status)
	})

	t.Run("duplicate state", func(t *testing.T) {
		session := newSession(time.Hour)

		require.NoError(t, store.Create(ctx, session))
		require.ErrorIs(t, store.Create(ctx, session), oidc4vp.ErrDuplicateState)
	})

	t.Run("already expired", func(t *testing.T) {
		require.ErrorContains(t, store.Create(ctx, newSession(-time.Second)), "already expired")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := store.Get(ctx, "unknown")
		require.ErrorIs(t, err, oidc4vp.ErrDataNotFound)

		err = store.Complete(ctx, "unknown", &oidc4vp.SessionUpdate{Status: oidc4vp.StatusError})
		require.ErrorIs(t, err, oidc4vp.ErrDataNotFound)
	})

	t.Run("expired", func(t *testing.T) {
		session := newSession(50 * time.Millisecond)
		require.NoError(t, store.Create(ctx, session))

		time.Sleep(100 * time.Millisecond)

		_, err := store.Get(ctx, session.State)
		require.ErrorIs(t, err, oidc4vp.ErrDataNotFound)

		err = store.Complete(ctx, session.State, &oidc4vp.SessionUpdate{Status: oidc4vp.StatusSuccess})
		require.ErrorIs(t, err, oidc4vp.ErrDataNotFound)
	})

	t.Run("complete keeps session expiry", func(t *testing.T) {
		s := New()
		session := newSession(time.Hour)
		require.NoError(t, s.Create(ctx, session))

		s.now = func() time.Time { return session.ExpireAt.Add(-time.Minute) }

		require.NoError(t, s.Complete(ctx, session.State, &oidc4vp.SessionUpdate{Status: oidc4vp.StatusSuccess}))

		item, ok := s.cache.Items()[string(session.State)]
		require.True(t, ok)
		require.NotZero(t, item.Expiration)
		require.LessOrEqual(t, item.Expiration, time.Now().Add(time.Minute).UnixNano())
	})

	t.Run("complete at expiry removes session", func(t *testing.T) {
		s := New()
		session := newSession(time.Hour)
		require.NoError(t, s.Create(ctx, session))

		s.now = func() time.Time { return session.ExpireAt }

		err := s.Complete(ctx, session.State, &oidc4vp.SessionUpdate{Status: oidc4vp.StatusSuccess})
		require.ErrorIs(t, err, oidc4vp.ErrDataNotFound)

		_, ok := s.cache.Get(string(session.State))
		require.False(t, ok)

		s.now = time.Now

		_, err = s.Get(ctx, session.State)
		require.ErrorIs(t, err, oidc4vp.ErrDataNotFound)
	})

	t.Run("terminal session is not overwritten", func(t *testing.T) {
		session := newSession(time.Hour)
		require.NoError(t, store.Create(ctx, session))

		require.NoError(t, store.Complete(ctx, session.State, &oidc4vp.SessionUpdate{
			Status: oidc4vp.StatusError,
			Error:  "nonce mismatch",
		}))

		err := store.Complete(ctx, session.State, &oidc4vp.SessionUpdate{Status: oidc4vp.StatusSuccess})
		require.ErrorIs(t, err, oidc4vp.ErrSessionCompleted)

		got, err := store.Get(ctx, session.State)
		require.NoError(t, err)
		require.Equal(t, oidc4vp.StatusError, got.Status)
		require.Equal(t, "nonce mismatch", got.Error)
	})

	t.Run("concurrent completes", func(t *testing.T) {
		session := newSession(time.Hour)
		require.NoError(t, store.Create(ctx, session))

		const workers = 10

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)

		for i := 0; i < workers; i++ {
			wg.Add(1)

			go func() {
				defer wg.Done()

				err := store.Complete(ctx, session.State, &oidc4vp.SessionUpdate{Status: oidc4vp.StatusSuccess})
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()

					return
				}

				assert.ErrorIs(t, err, oidc4vp.ErrSessionCompleted)
			}()
		}

		wg.Wait()

		require.Equal(t, 1, succeeded)
	})
}

func newSession(ttl time.Duration) *oidc4vp.Session {
	now := time.Now().UTC()
	state := uuid.NewString()

	return &oidc4vp.Session{
		State:     oidc4vp.State(state),
		Status:    oidc4vp.StatusPending,
		ProfileID: "testProfileID",
		CreatedAt: now,
		ExpireAt:  now.Add(ttl),
		RequestObject: &oidc4vp.RequestObject{
			State:                  state,
			Nonce:                  "nonce",
			ClientID:               "https://verifier.example.com",
			PresentationDefinition: vp.DefaultDefinition(),
		},
		RequestObjectJWT: "header.payload.signature",
	}
}
