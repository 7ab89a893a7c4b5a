/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/trustbloc/vc-go/presexch"

	"github.com/trustbloc/vp-verifier/internal/logfields"
	"github.com/trustbloc/vp-verifier/pkg/doc/jws"
)

// Reasons returned to the wallet for rejected responses.
const (
	ReasonMalformedToken      = "malformed vp_token"
	ReasonUnsupportedVPFormat = "unsupported vp_token format"
	ReasonUnsignedToken       = "vp_token is not signed"
	ReasonUnsupportedAlg      = "unsupported signature algorithm"
	ReasonInvalidSignature    = "invalid signature"
	ReasonKeyNotResolved      = "signer key could not be resolved"
	ReasonIssuerMismatch      = "issuer does not match signing key"
	ReasonNonceMismatch       = "nonce mismatch"
	ReasonAudienceMismatch    = "audience mismatch"
	ReasonTokenExpired        = "token expired or not yet valid"
	ReasonUnsupportedVCFormat = "unsupported credential format"
	ReasonDefinitionNotMet    = "presentation definition not satisfied"
)

var errUnsupportedVPFormat = errors.New("vp_token must be a compact JWS or a JSON array of compact JWSs")

const (
	vpClaim          = "vp"
	vcClaim          = "vc"
	credentialsField = "verifiableCredential"

	presentationsClaim = "presentations"
)

type verifiedPresentation struct {
	claims Claims
	// credentials are the compact JWTs of the verified credentials.
	credentials []string
}

// verifyVPToken checks every presentation in the vp_token and returns the claims to store in the session.
// A single presentation's claims are returned as is; multiple presentations are listed under "presentations".
func (s *Service) verifyVPToken(ctx context.Context, session *Session, vpToken string) (Claims, error) {
	tokens, err := splitVPToken(vpToken)
	if err != nil {
		if errors.Is(err, errUnsupportedVPFormat) {
			return nil, &VerificationError{Reason: ReasonUnsupportedVPFormat, Err: err}
		}

		return nil, &VerificationError{Reason: ReasonMalformedToken, Err: err}
	}

	presentations := make([]*verifiedPresentation, 0, len(tokens))

	for _, token := range tokens {
		vp, err := s.verifyPresentation(ctx, session.RequestObject, token)
		if err != nil {
			return nil, err
		}

		presentations = append(presentations, vp)
	}

	credentials := lo.FlatMap(presentations, func(vp *verifiedPresentation, _ int) []string {
		return vp.credentials
	})

	if !s.skipDefinitionCheck {
		if err = s.checkDefinition(ctx, session.RequestObject.PresentationDefinition, credentials); err != nil {
			return nil, err
		}
	}

	if len(presentations) == 1 {
		return presentations[0].claims, nil
	}

	return Claims{
		presentationsClaim: lo.Map(presentations, func(vp *verifiedPresentation, _ int) Claims {
			return vp.claims
		}),
	}, nil
}

func (s *Service) verifyPresentation(
	ctx context.Context,
	ro *RequestObject,
	token string,
) (*verifiedPresentation, error) {
	vt, err := s.verifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if nonce, _ := vt.Claims[jws.ClaimNonce].(string); nonce != ro.Nonce { //nolint:errcheck
		return nil, &VerificationError{Reason: ReasonNonceMismatch}
	}

	if aud := vt.Audience(); len(aud) > 0 && !lo.Contains(aud, ro.ClientID) {
		return nil, &VerificationError{
			Reason: ReasonAudienceMismatch,
			Err:    fmt.Errorf("expected %s, got %v", ro.ClientID, aud),
		}
	}

	credentials, err := s.verifyCredentials(ctx, vt)
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "Presentation verified", logfields.WithDID(vt.KeyID),
		logfields.WithTokenCount(len(credentials)))

	return &verifiedPresentation{
		claims:      vt.Claims,
		credentials: credentials,
	}, nil
}

// verifyCredentials verifies the JWT credentials embedded in a presentation. A token carrying a "vc"
// claim is itself a credential.
func (s *Service) verifyCredentials(ctx context.Context, vt *jws.VerifiedToken) ([]string, error) {
	if _, ok := vt.Claims[vcClaim]; ok {
		return []string{vt.Raw}, nil
	}

	raw, err := json.Marshal(vt.Claims)
	if err != nil {
		return nil, fmt.Errorf("marshal presentation claims: %w", err)
	}

	embedded := gjson.GetBytes(raw, vpClaim+"."+credentialsField)
	if !embedded.Exists() || embedded.Type == gjson.Null {
		return nil, nil
	}

	items := embedded.Array()
	if !embedded.IsArray() {
		items = []gjson.Result{embedded}
	}

	credentials := make([]string, 0, len(items))

	for i, item := range items {
		if item.Type != gjson.String {
			return nil, &VerificationError{
				Reason: ReasonUnsupportedVCFormat,
				Err:    fmt.Errorf("credential %d is not a JWT", i),
			}
		}

		cred, err := s.verifyToken(ctx, item.String())
		if err != nil {
			var verificationErr *VerificationError
			if errors.As(err, &verificationErr) {
				verificationErr.Reason = "credential: " + verificationErr.Reason
			}

			return nil, err
		}

		credentials = append(credentials, cred.Raw)
	}

	return credentials, nil
}

func (s *Service) verifyToken(ctx context.Context, token string) (*jws.VerifiedToken, error) {
	vt, err := s.tokenVerifier.Verify(ctx, token)
	if err != nil {
		reason, ok := verificationReason(err)
		if !ok {
			return nil, err
		}

		return nil, &VerificationError{Reason: reason, Err: err}
	}

	if err = vt.ValidateTime(time.Now(), s.clockSkew); err != nil {
		return nil, &VerificationError{Reason: ReasonTokenExpired, Err: err}
	}

	return vt, nil
}

func (s *Service) checkDefinition(
	ctx context.Context,
	pd *presexch.PresentationDefinition,
	credentials []string,
) error {
	if pd == nil {
		return nil
	}

	matched, err := s.definitionMatcher.Match(pd, credentials)
	if err != nil {
		return &VerificationError{Reason: ReasonDefinitionNotMet, Err: err}
	}

	logger.Debugc(ctx, "Presentation definition satisfied", logfields.WithPresDefID(pd.ID),
		logfields.WithClaimKeys(matched))

	return nil
}

func verificationReason(err error) (string, bool) {
	switch {
	case errors.Is(err, jws.ErrMalformedToken):
		return ReasonMalformedToken, true
	case errors.Is(err, jws.ErrUnsignedToken):
		return ReasonUnsignedToken, true
	case errors.Is(err, jws.ErrUnsupportedAlgorithm):
		return ReasonUnsupportedAlg, true
	case errors.Is(err, jws.ErrInvalidSignature):
		return ReasonInvalidSignature, true
	case errors.Is(err, jws.ErrKeyNotResolved):
		return ReasonKeyNotResolved, true
	case errors.Is(err, jws.ErrIssuerMismatch):
		return ReasonIssuerMismatch, true
	default:
		return "", false
	}
}

// splitVPToken accepts a compact JWS or a JSON array of compact JWSs. JSON-LD presentations are not supported.
func splitVPToken(vpToken string) ([]string, error) {
	vpToken = strings.TrimSpace(vpToken)

	if strings.HasPrefix(vpToken, "{") {
		return nil, errUnsupportedVPFormat
	}

	if !strings.HasPrefix(vpToken, "[") {
		return []string{vpToken}, nil
	}

	var tokens []string

	if err := json.Unmarshal([]byte(vpToken), &tokens); err != nil {
		return nil, fmt.Errorf("vp_token array: %w", err)
	}

	if len(tokens) == 0 {
		return nil, errors.New("vp_token array is empty")
	}

	return tokens, nil
}

