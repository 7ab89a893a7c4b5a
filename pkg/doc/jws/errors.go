/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

import "errors"

var (
	ErrMalformedToken       = errors.New("malformed token")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidSignature     = errors.New("invalid signature")
	ErrUnsignedToken        = errors.New("unsigned token")
	ErrKeyNotResolved       = errors.New("signing key not resolved")
	ErrIssuerMismatch       = errors.New("issuer does not match signing key")
)
