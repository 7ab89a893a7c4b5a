/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package sessionstore

import (
	"encoding/json"
	"time"

	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
)

type sessionDocument struct {
	ProfileID        string                 `json:"profileId"`
	Status           oidc4vp.Status         `json:"status"`
	CreatedAt        time.Time              `json:"createdAt"`
	ExpireAt         time.Time              `json:"expireAt"`
	RequestObject    *oidc4vp.RequestObject `json:"requestObject,omitempty"`
	RequestObjectJWT string                 `json:"requestObjectJwt,omitempty"`
	VerifiedAt       *time.Time             `json:"verifiedAt,omitempty"`
	Claims           oidc4vp.Claims         `json:"claims,omitempty"`
	Error            string                 `json:"error,omitempty"`
	ResponseDigest   string                 `json:"responseDigest,omitempty"`
}

func (d *sessionDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

func (d *sessionDocument) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, d)
}

func (d *sessionDocument) apply(update *oidc4vp.SessionUpdate) {
	d.Status = update.Status
	d.VerifiedAt = update.VerifiedAt
	d.Claims = update.Claims
	d.Error = update.Error
	d.ResponseDigest = update.ResponseDigest
}

func documentFromSession(s *oidc4vp.Session) *sessionDocument {
	return &sessionDocument{
		ProfileID:        s.ProfileID,
		Status:           s.Status,
		CreatedAt:        s.CreatedAt,
		ExpireAt:         s.ExpireAt,
		RequestObject:    s.RequestObject,
		RequestObjectJWT: s.RequestObjectJWT,
		VerifiedAt:       s.VerifiedAt,
		Claims:           s.Claims,
		Error:            s.Error,
		ResponseDigest:   s.ResponseDigest,
	}
}

func (d *sessionDocument) session(state oidc4vp.State) *oidc4vp.Session {
	return &oidc4vp.Session{
		State:            state,
		Status:           d.Status,
		ProfileID:        d.ProfileID,
		CreatedAt:        d.CreatedAt,
		ExpireAt:         d.ExpireAt,
		RequestObject:    d.RequestObject,
		RequestObjectJWT: d.RequestObjectJWT,
		VerifiedAt:       d.VerifiedAt,
		Claims:           d.Claims,
		Error:            d.Error,
		ResponseDigest:   d.ResponseDigest,
	}
}
