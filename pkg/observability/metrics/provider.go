/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "vp_verifier"

	// Crypto plain crypto operations.
	Crypto                          = "crypto"
	CryptoSignTimeMetric            = "crypto_sign_seconds"
	CryptoSignCountMetric           = "crypto_sign_count"
	CryptoExportPublicKeyTimeMetric = "crypto_export_public_key_seconds"
	CryptoExportPublicKeyCount      = "crypto_export_public_key_count"
	CryptoJWSSignTimeMetric         = "crypto_jws_sign_seconds"

	// Controller operations.
	Controller                       = "controller"
	ControllerRequestObjectMetric    = "controller_requestObject_seconds"
	ControllerCheckAuthRespMetric    = "controller_checkAuthResponse_seconds"
	ControllerInitiateInteractionMet = "controller_initiateInteraction_seconds"

	// Service operations.
	Service                     = "service"
	InitiateInteraction         = "service_initiateOidcInteraction_seconds"
	VerifyAuthorizationResponse = "service_verifyAuthorizationResponse_seconds"
	VerificationOutcome         = "service_verification_outcome_count"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
//
//nolint:interfacebloat
type Metrics interface {
	SignCount()
	SignTime(value time.Duration)
	ExportPublicKeyCount()
	ExportPublicKeyTime(value time.Duration)
	JWSSignTime(value time.Duration)
	RequestObjectTime(value time.Duration)
	CheckAuthorizationResponseTime(value time.Duration)
	InitiateInteractionTime(value time.Duration)
	VerifyAuthorizationResponseTime(value time.Duration)
	VerificationOutcome(status string)
}
