/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

// NewUnsecuredToken encodes payload as an "alg":"none" token with an empty signature.
// The result carries no integrity protection.
func NewUnsecuredToken(payload interface{}, typ string) (string, error) {
	if typ == "" {
		typ = defaultType
	}

	signingInput, err := encodeSigningInput(map[string]interface{}{
		HeaderAlgorithm: None,
		HeaderType:      typ,
	}, payload)
	if err != nil {
		return "", err
	}

	return signingInput + ".", nil
}
