/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

import (
	"encoding/asn1"
	"fmt"
	"math/big"
)

type ecdsaSignature struct {
	R, S *big.Int
}

// DERToCompact converts an ASN.1 DER encoded ECDSA signature into the fixed-length R||S form
// used by JWS. Each half is left-padded with zeros to the curve size of alg.
func DERToCompact(der []byte, alg Algorithm) ([]byte, error) {
	keyBytes, err := alg.keySize()
	if err != nil {
		return nil, err
	}

	signature := ecdsaSignature{}

	rest, err := asn1.Unmarshal(der, &signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: trailing data after DER signature", ErrInvalidSignature)
	}

	if signature.R == nil || signature.S == nil || signature.R.Sign() <= 0 || signature.S.Sign() <= 0 {
		return nil, fmt.Errorf("%w: signature values must be positive", ErrInvalidSignature)
	}

	rBytes, sBytes := signature.R.Bytes(), signature.S.Bytes()

	if len(rBytes) > keyBytes || len(sBytes) > keyBytes {
		return nil, fmt.Errorf("%w: signature values exceed %d bytes for %s", ErrInvalidSignature, keyBytes, alg)
	}

	copyPadded := func(source []byte, size int) []byte {
		dest := make([]byte, size)
		copy(dest[size-len(source):], source)

		return dest
	}

	return append(copyPadded(rBytes, keyBytes), copyPadded(sBytes, keyBytes)...), nil
}
