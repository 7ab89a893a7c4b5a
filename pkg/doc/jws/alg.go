/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

import (
	"crypto"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
)

// Algorithm is a JWS "alg" header value.
type Algorithm string

// Supported algorithms. RS256 and PS256 are accepted from wallets but not used for signing.
const (
	ES256  Algorithm = "ES256"
	ES384  Algorithm = "ES384"
	ES512  Algorithm = "ES512"
	ES256K Algorithm = "ES256K"
	EdDSA  Algorithm = "EdDSA"
	RS256  Algorithm = "RS256"
	PS256  Algorithm = "PS256"
	None   Algorithm = "none"
)

// Hash returns the digest function used with the algorithm. EdDSA signs the message itself.
func (a Algorithm) Hash() (crypto.Hash, error) {
	switch a { //nolint:exhaustive
	case ES256, ES256K:
		return crypto.SHA256, nil
	case ES384:
		return crypto.SHA384, nil
	case ES512:
		return crypto.SHA512, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
}

// Digest hashes the message with the algorithm's digest function.
func (a Algorithm) Digest(msg []byte) ([]byte, error) {
	h, err := a.Hash()
	if err != nil {
		return nil, err
	}

	switch h { //nolint:exhaustive
	case crypto.SHA384:
		d := sha512.Sum384(msg)
		return d[:], nil
	case crypto.SHA512:
		d := sha512.Sum512(msg)
		return d[:], nil
	default:
		d := sha256.Sum256(msg)
		return d[:], nil
	}
}

// keySize is the byte length of each of R and S in the compact signature.
func (a Algorithm) keySize() (int, error) {
	switch a { //nolint:exhaustive
	case ES256, ES256K:
		return 32, nil //nolint:gomnd
	case ES384:
		return 48, nil //nolint:gomnd
	case ES512:
		return 66, nil //nolint:gomnd
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
}
