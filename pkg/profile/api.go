/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"errors"
	"fmt"

	"github.com/trustbloc/vc-go/presexch"

	"github.com/trustbloc/vp-verifier/pkg/doc/jws"
	"github.com/trustbloc/vp-verifier/pkg/doc/vp"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileNotActive = errors.New("profile not active")
	ErrNoSigningKey     = errors.New("profile has no signing key")
)

type ID = string

// Verifier profile.
type Verifier struct {
	ID                     ID                               `json:"id,omitempty"`
	Name                   string                           `json:"name,omitempty"`
	URL                    string                           `json:"url,omitempty"`
	Active                 bool                             `json:"active,omitempty"`
	OrganizationID         string                           `json:"organizationID,omitempty"`
	LogoURL                string                           `json:"logoURL,omitempty"`
	Purpose                string                           `json:"purpose,omitempty"`
	ResponseRedirectURI    string                           `json:"responseRedirectURI,omitempty"`
	OIDCConfig             *OIDC4VPConfig                   `json:"oidcConfig,omitempty"`
	SigningDID             *SigningDID                      `json:"signingDID,omitempty"`
	PresentationDefinition *presexch.PresentationDefinition `json:"presentationDefinition,omitempty"`
}

// OIDC4VPConfig store config for verifier did that used to sign request object in oidc4vp process.
type OIDC4VPConfig struct {
	ROSigningAlgorithm jws.Algorithm `json:"roSigningAlgorithm,omitempty"`
	// DIDMethod is used to derive the signing DID from the KMS key when SigningDID.DID is empty.
	DIDMethod string `json:"didMethod,omitempty"`
}

// SigningDID contains information about profile signing did.
type SigningDID struct {
	DID      string `json:"did,omitempty"`
	KeyID    string `json:"keyID,omitempty"`
	KMSKeyID string `json:"kmsKeyID,omitempty"`
}

// SigningAlgorithm returns the request object signing algorithm, ES256 if not configured.
func (p *Verifier) SigningAlgorithm() jws.Algorithm {
	if p.OIDCConfig != nil && p.OIDCConfig.ROSigningAlgorithm != "" {
		return p.OIDCConfig.ROSigningAlgorithm
	}

	return jws.ES256
}

// SigningKey returns the reference to the key that signs request objects for the profile.
func (p *Verifier) SigningKey() (jws.KeyRef, error) {
	if p.SigningDID == nil || p.SigningDID.KMSKeyID == "" {
		return jws.KeyRef{}, fmt.Errorf("%w: %s", ErrNoSigningKey, p.ID)
	}

	return jws.KeyRef{
		KeyID: p.SigningDID.KMSKeyID,
		KID:   p.SigningDID.KeyID,
		Alg:   p.SigningAlgorithm(),
	}, nil
}

// Definition returns the configured presentation definition or the default one.
func (p *Verifier) Definition() *presexch.PresentationDefinition {
	if p.PresentationDefinition != nil {
		return p.PresentationDefinition
	}

	return vp.DefaultDefinition()
}
