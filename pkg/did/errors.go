/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package did

import "errors"

var (
	ErrMethodUnsupported = errors.New("DID method not supported")
	ErrUnsupportedKey    = errors.New("unsupported key")
)
