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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
	"github.com/trustbloc/vp-verifier/pkg/storage/mongodb"
	"github.com/trustbloc/vp-verifier/pkg/storage/mongodb/internal"
)

const (
	collectionName = "oidc4vp_session"
)

type sessionDocument struct {
	ID               string                 `bson:"_id"`
	ProfileID        string                 `bson:"profileId"`
	Status           oidc4vp.Status         `bson:"status"`
	CreatedAt        time.Time              `bson:"createdAt"`
	ExpireAt         time.Time              `bson:"expireAt"`
	RequestObject    map[string]interface{} `bson:"requestObject,omitempty"`
	RequestObjectJWT string                 `bson:"requestObjectJwt,omitempty"`
	VerifiedAt       *time.Time             `bson:"verifiedAt,omitempty"`
	Claims           map[string]interface{} `bson:"claims,omitempty"`
	Error            string                 `bson:"error,omitempty"`
	ResponseDigest   string                 `bson:"responseDigest,omitempty"`
}

// Store manages verification sessions in mongo.
type Store struct {
	mongoClient *mongodb.Client
}

// New creates Store and ensures the expiry index exists.
func New(ctx context.Context, mongoClient *mongodb.Client) (*Store, error) {
	s := &Store{
		mongoClient: mongoClient,
	}

	if err := s.migrate(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	if _, err := s.mongoClient.Database().Collection(collectionName).Indexes().
		CreateMany(ctxWithTimeout, []mongo.IndexModel{
			{ // ttl index https://www.mongodb.com/community/forums/t/ttl-index-internals/4086/2
				Keys: map[string]interface{}{
					"expireAt": 1,
				},
				Options: options.Index().SetExpireAfterSeconds(0),
			},
		}); err != nil {
		return err
	}

	return nil
}

// Create inserts a new session. The state is the primary key.
func (s *Store) Create(ctx context.Context, session *oidc4vp.Session) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &sessionDocument{
		ID:               string(session.State),
		ProfileID:        session.ProfileID,
		Status:           session.Status,
		CreatedAt:        session.CreatedAt,
		ExpireAt:         session.ExpireAt,
		RequestObjectJWT: session.RequestObjectJWT,
		VerifiedAt:       session.VerifiedAt,
		Error:            session.Error,
		ResponseDigest:   session.ResponseDigest,
	}

	var err error

	if session.RequestObject != nil {
		if doc.RequestObject, err = internal.EncodeDocument(session.RequestObject); err != nil {
			return fmt.Errorf("prepare request object: %w", err)
		}
	}

	if session.Claims != nil {
		if doc.Claims, err = internal.EncodeDocument(session.Claims); err != nil {
			return fmt.Errorf("prepare claims: %w", err)
		}
	}

	_, err = s.mongoClient.Database().Collection(collectionName).InsertOne(ctxWithTimeout, doc)
	if mongo.IsDuplicateKeyError(err) {
		return oidc4vp.ErrDuplicateState
	}

	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// Get returns the session for the state. Expired sessions are reported as not found even before
// the ttl monitor removes them.
func (s *Store) Get(ctx context.Context, state oidc4vp.State) (*oidc4vp.Session, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	doc, err := s.find(ctxWithTimeout, state)
	if err != nil {
		return nil, err
	}

	return doc.session()
}

// Complete merges the update into the session only while it is still pending.
func (s *Store) Complete(ctx context.Context, state oidc4vp.State, update *oidc4vp.SessionUpdate) error {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	set := bson.M{
		"status":         update.Status,
		"error":          update.Error,
		"responseDigest": update.ResponseDigest,
	}

	if update.VerifiedAt != nil {
		set["verifiedAt"] = update.VerifiedAt
	}

	if update.Claims != nil {
		claims, err := internal.EncodeDocument(update.Claims)
		if err != nil {
			return fmt.Errorf("prepare claims: %w", err)
		}

		set["claims"] = claims
	}

	res, err := s.mongoClient.Database().Collection(collectionName).UpdateOne(ctxWithTimeout,
		bson.M{
			"_id":      string(state),
			"status":   oidc4vp.StatusPending,
			"expireAt": bson.M{"$gt": time.Now().UTC()},
		},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	if res.MatchedCount > 0 {
		return nil
	}

	if _, err = s.find(ctxWithTimeout, state); err != nil {
		return err
	}

	return oidc4vp.ErrSessionCompleted
}

func (s *Store) find(ctx context.Context, state oidc4vp.State) (*sessionDocument, error) {
	doc := &sessionDocument{}

	err := s.mongoClient.Database().Collection(collectionName).
		FindOne(ctx, bson.M{"_id": string(state)}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, oidc4vp.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	if doc.ExpireAt.Before(time.Now().UTC()) {
		return nil, oidc4vp.ErrDataNotFound
	}

	return doc, nil
}

func (d *sessionDocument) session() (*oidc4vp.Session, error) {
	session := &oidc4vp.Session{
		State:            oidc4vp.State(d.ID),
		Status:           d.Status,
		ProfileID:        d.ProfileID,
		CreatedAt:        d.CreatedAt,
		ExpireAt:         d.ExpireAt,
		RequestObjectJWT: d.RequestObjectJWT,
		VerifiedAt:       d.VerifiedAt,
		Error:            d.Error,
		ResponseDigest:   d.ResponseDigest,
	}

	if d.RequestObject != nil {
		session.RequestObject = &oidc4vp.RequestObject{}

		if err := internal.DecodeDocument(d.RequestObject, session.RequestObject); err != nil {
			return nil, fmt.Errorf("decode request object: %w", err)
		}
	}

	if d.Claims != nil {
		if err := internal.DecodeDocument(d.Claims, &session.Claims); err != nil {
			return nil, fmt.Errorf("decode claims: %w", err)
		}
	}

	return session, nil
}
