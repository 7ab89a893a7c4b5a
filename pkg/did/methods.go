/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"encoding/base64"
	"fmt"

	"github.com/trustbloc/kms-go/doc/util/fingerprint"
)

// DID methods the verifier can create and resolve.
const (
	MethodKey = "key"
	MethodJWK = "jwk"
	MethodWeb = "web"

	jwkVerificationMethodID = "0"
)

// CreateKeyDID returns a did:key DID and its verification method DID URL for an Ed25519 or NIST curve
// public key.
func CreateKeyDID(pub crypto.PublicKey) (string, string, error) {
	switch k := pub.(type) {
	case ed25519.PublicKey:
		didKey, keyID := fingerprint.CreateDIDKey(k)

		return didKey, keyID, nil
	case *ecdsa.PublicKey:
		code, err := ecCode(k.Curve)
		if err != nil {
			return "", "", err
		}

		didKey, keyID := fingerprint.CreateDIDKeyByCode(code, elliptic.MarshalCompressed(k.Curve, k.X, k.Y))

		return didKey, keyID, nil
	default:
		return "", "", fmt.Errorf("%w: %T", ErrUnsupportedKey, pub)
	}
}

// CreateJWKDID returns a did:jwk DID and its verification method DID URL for a public key.
func CreateJWKDID(pub crypto.PublicKey) (string, string, error) {
	raw, err := MarshalPublicJWK(pub)
	if err != nil {
		return "", "", fmt.Errorf("marshal JWK: %w", err)
	}

	did := "did:jwk:" + base64.RawURLEncoding.EncodeToString(raw)

	return did, did + "#" + jwkVerificationMethodID, nil
}

// CreateDID creates a DID of the given method for a public key.
func CreateDID(method string, pub crypto.PublicKey) (string, string, error) {
	switch method {
	case MethodKey:
		return CreateKeyDID(pub)
	case MethodJWK, "":
		return CreateJWKDID(pub)
	default:
		return "", "", fmt.Errorf("%w: cannot create did:%s", ErrMethodUnsupported, method)
	}
}

func ecCode(curve elliptic.Curve) (uint64, error) {
	switch curve {
	case elliptic.P256():
		return fingerprint.P256PubKeyMultiCodec, nil
	case elliptic.P384():
		return fingerprint.P384PubKeyMultiCodec, nil
	case elliptic.P521():
		return fingerprint.P521PubKeyMultiCodec, nil
	default:
		return 0, fmt.Errorf("%w: curve %s", ErrUnsupportedKey, curve.Params().Name)
	}
}
