/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

type Component string

const (
	VerifierOIDC4vpSvcComponent   Component = "verifier.oidc4vp-service"
	VerifierProfileSvcComponent   Component = "verifier.profile-service"
	VerifierSessionStoreComponent Component = "verifier.session-store"
	VerifierRequestObjectSigner   Component = "verifier.request-object-signer"
	VerifierPresentationVerifier  Component = "verifier.presentation-verifier"
)
