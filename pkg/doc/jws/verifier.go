/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	diddoc "github.com/trustbloc/did-go/doc/did"
	vdrapi "github.com/trustbloc/did-go/vdr/api"
	"github.com/trustbloc/kms-go/doc/jose"
	"github.com/trustbloc/vc-go/proof/defaults"
	"github.com/trustbloc/vc-go/vermethod"
)

const (
	segmentCount = 3

	// proof checker name of the P-521 algorithm.
	es521 = "ES521"
)

// Registered claim names checked by ValidateTime.
const (
	ClaimExpiration = "exp"
	ClaimNotBefore  = "nbf"
	ClaimIssuer     = "iss"
	ClaimAudience   = "aud"
	ClaimNonce      = "nonce"
)

// Claims naming the issuer of an embedded credential or the holder of a presentation.
const (
	claimVC     = "vc"
	claimVP     = "vp"
	fieldIssuer = "issuer"
	fieldHolder = "holder"
	fieldID     = "id"
)

var verifiableAlgorithms = map[Algorithm]struct{}{ //nolint:gochecknoglobals
	ES256: {}, ES384: {}, ES512: {}, ES256K: {}, EdDSA: {}, RS256: {}, PS256: {},
}

type didResolver interface {
	Resolve(did string, opts ...vdrapi.DIDMethodOption) (*diddoc.DocResolution, error)
}

type proofChecker interface {
	CheckJWTProof(headers jose.Headers, expectedProofIssuer string, msg, signature []byte) error
}

// ParsedToken is a decoded, not yet verified, compact JWS.
type ParsedToken struct {
	Raw          string
	Header       map[string]interface{}
	Claims       map[string]interface{}
	SigningInput []byte
	Signature    []byte
}

// Algorithm returns the "alg" header value.
func (t *ParsedToken) Algorithm() Algorithm {
	alg, _ := t.Header[HeaderAlgorithm].(string) //nolint:errcheck

	return Algorithm(alg)
}

// KeyID returns the "kid" header value.
func (t *ParsedToken) KeyID() string {
	kid, _ := t.Header[HeaderKeyID].(string) //nolint:errcheck

	return kid
}

// VerifiedToken is a token whose signature was checked against its signer's resolved key.
type VerifiedToken struct {
	Raw    string
	Header map[string]interface{}
	Claims map[string]interface{}
	// KeyID is the DID URL the verification key was resolved from.
	KeyID string
}

// Verifier checks compact JWS signatures against keys resolved from DIDs.
type Verifier struct {
	resolver didResolver
	checker  proofChecker
}

// NewVerifier returns a Verifier checking signatures with the vc-go proof checker. Keys are resolved
// from the "kid" DID URL through resolver.
func NewVerifier(resolver didResolver) *Verifier {
	return &Verifier{
		resolver: resolver,
		checker:  defaults.NewDefaultProofChecker(vermethod.NewVDRResolver(resolver)),
	}
}

// Parse decodes a compact JWS without verifying it.
func (v *Verifier) Parse(token string) (*ParsedToken, error) {
	return Parse(token)
}

// Parse decodes a compact JWS without verifying it.
func Parse(token string) (*ParsedToken, error) {
	parts := strings.Split(strings.TrimSpace(token), ".")
	if len(parts) != segmentCount {
		return nil, fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedToken, segmentCount, len(parts))
	}

	header, err := decodeSegment(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedToken, err)
	}

	claims, err := decodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %w", ErrMalformedToken, err)
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: signature: %w", ErrMalformedToken, err)
	}

	return &ParsedToken{
		Raw:          strings.TrimSpace(token),
		Header:       header,
		Claims:       claims,
		SigningInput: []byte(parts[0] + "." + parts[1]),
		Signature:    sig,
	}, nil
}

// Verify parses the token, resolves the signer's key from the "kid" DID URL and checks the signature.
// The DID of the key must also be the token's "iss", the "vc" issuer and the "vp" holder wherever those
// are present. Unsigned tokens are rejected.
func (v *Verifier) Verify(_ context.Context, token string) (*VerifiedToken, error) {
	parsed, err := Parse(token)
	if err != nil {
		return nil, err
	}

	alg := parsed.Algorithm()

	if alg == None || alg == "" {
		return nil, ErrUnsignedToken
	}

	if _, ok := verifiableAlgorithms[alg]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}

	if len(parsed.Signature) == 0 {
		return nil, fmt.Errorf("%w: empty signature", ErrInvalidSignature)
	}

	kid := parsed.KeyID()

	signerDID, fragment, found := strings.Cut(kid, "#")
	if !found || !strings.HasPrefix(signerDID, "did:") || fragment == "" {
		return nil, fmt.Errorf("%w: kid %q is not a DID URL", ErrKeyNotResolved, kid)
	}

	if err = checkIssuerBinding(parsed.Claims, signerDID); err != nil {
		return nil, err
	}

	if err = v.checkVerificationMethod(signerDID, "#"+fragment); err != nil {
		return nil, err
	}

	headers := make(jose.Headers, len(parsed.Header))
	for k, val := range parsed.Header {
		headers[k] = val
	}

	if alg == ES512 {
		headers[HeaderAlgorithm] = es521
	}

	if err = v.checker.CheckJWTProof(headers, signerDID, parsed.SigningInput, parsed.Signature); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	return &VerifiedToken{
		Raw:    parsed.Raw,
		Header: parsed.Header,
		Claims: parsed.Claims,
		KeyID:  kid,
	}, nil
}

func (v *Verifier) checkVerificationMethod(signerDID, fragment string) error {
	docRes, err := v.resolver.Resolve(signerDID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrKeyNotResolved, err)
	}

	for _, verifications := range docRes.DIDDocument.VerificationMethods() {
		for _, verification := range verifications {
			if strings.HasSuffix(verification.VerificationMethod.ID, fragment) &&
				verification.Relationship != diddoc.KeyAgreement {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: no verification method %s in %s", ErrKeyNotResolved, fragment, signerDID)
}

// checkIssuerBinding rejects tokens that name a party other than the key's DID controller.
func checkIssuerBinding(claims map[string]interface{}, signerDID string) error {
	if iss, ok := claims[ClaimIssuer]; ok {
		if s, _ := iss.(string); s != signerDID { //nolint:errcheck
			return fmt.Errorf("%w: iss %v, signed by %s", ErrIssuerMismatch, iss, signerDID)
		}
	}

	if vc, ok := claims[claimVC].(map[string]interface{}); ok {
		if issuer, present := partyID(vc[fieldIssuer]); present && issuer != signerDID {
			return fmt.Errorf("%w: vc issuer %s, signed by %s", ErrIssuerMismatch, issuer, signerDID)
		}
	}

	if vp, ok := claims[claimVP].(map[string]interface{}); ok {
		if holder, present := partyID(vp[fieldHolder]); present && holder != signerDID {
			return fmt.Errorf("%w: vp holder %s, signed by %s", ErrIssuerMismatch, holder, signerDID)
		}
	}

	return nil
}

// partyID reads an issuer or holder given either as a string or as an object with an "id".
func partyID(v interface{}) (string, bool) {
	switch p := v.(type) {
	case nil:
		return "", false
	case string:
		return p, true
	case map[string]interface{}:
		id, _ := p[fieldID].(string) //nolint:errcheck

		return id, true
	default:
		return fmt.Sprint(p), true
	}
}

// ValidateTime checks the "exp" and "nbf" claims, when present, against now with the given leeway.
func (t *VerifiedToken) ValidateTime(now time.Time, leeway time.Duration) error {
	if exp, ok, err := numericDate(t.Claims, ClaimExpiration); err != nil {
		return err
	} else if ok && now.Add(-leeway).After(exp) {
		return fmt.Errorf("token expired at %s", exp.UTC().Format(time.RFC3339))
	}

	if nbf, ok, err := numericDate(t.Claims, ClaimNotBefore); err != nil {
		return err
	} else if ok && now.Add(leeway).Before(nbf) {
		return fmt.Errorf("token not valid before %s", nbf.UTC().Format(time.RFC3339))
	}

	return nil
}

// Audience returns the "aud" claim, which may be a string or an array of strings.
func (t *VerifiedToken) Audience() []string {
	switch aud := t.Claims[ClaimAudience].(type) {
	case string:
		return []string{aud}
	case []interface{}:
		var res []string

		for _, a := range aud {
			if s, ok := a.(string); ok {
				res = append(res, s)
			}
		}

		return res
	default:
		return nil
	}
}

func decodeSegment(segment string) (map[string]interface{}, error) {
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return nil, err
	}

	var m map[string]interface{}

	if err = json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}

	if m == nil {
		return nil, errors.New("not a JSON object")
	}

	return m, nil
}

func numericDate(claims map[string]interface{}, name string) (time.Time, bool, error) {
	v, ok := claims[name]
	if !ok {
		return time.Time{}, false, nil
	}

	f, ok := v.(float64)
	if !ok {
		return time.Time{}, false, fmt.Errorf("claim %q is not a numeric date", name)
	}

	return time.Unix(int64(f), 0), true, nil
}
