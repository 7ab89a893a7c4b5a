/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/vp-verifier/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) SignCount()                                      {}
func (n *NoMetrics) SignTime(_ time.Duration)                        {}
func (n *NoMetrics) ExportPublicKeyCount()                           {}
func (n *NoMetrics) ExportPublicKeyTime(_ time.Duration)             {}
func (n *NoMetrics) JWSSignTime(_ time.Duration)                     {}
func (n *NoMetrics) RequestObjectTime(_ time.Duration)               {}
func (n *NoMetrics) CheckAuthorizationResponseTime(_ time.Duration)  {}
func (n *NoMetrics) InitiateInteractionTime(_ time.Duration)         {}
func (n *NoMetrics) VerifyAuthorizationResponseTime(_ time.Duration) {}
func (n *NoMetrics) VerificationOutcome(_ string)                    {}
