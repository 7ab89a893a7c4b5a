/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import (
	"crypto"
	"crypto/ecdsa"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/go-jose/go-jose/v3"
)

const secp256k1Crv = "secp256k1"

// MarshalPublicJWK encodes a public key as JWK JSON, including secp256k1 keys.
func MarshalPublicJWK(pub crypto.PublicKey) ([]byte, error) {
	if k, ok := pub.(*ecdsa.PublicKey); ok && k.Curve == btcec.S256() {
		const coordSize = 32

		x := make([]byte, coordSize)
		y := make([]byte, coordSize)

		k.X.FillBytes(x)
		k.Y.FillBytes(y)

		return json.Marshal(map[string]string{
			"kty": "EC",
			"crv": secp256k1Crv,
			"x":   base64.RawURLEncoding.EncodeToString(x),
			"y":   base64.RawURLEncoding.EncodeToString(y),
		})
	}

	raw, err := (&jose.JSONWebKey{Key: pub}).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedKey, err)
	}

	return raw, nil
}
