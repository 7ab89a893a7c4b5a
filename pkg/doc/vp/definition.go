/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import (
	"github.com/trustbloc/vc-go/presexch"
)

const (
	// VerifiableCredentialSchemaURI is the schema URI required by the default definition.
	VerifiableCredentialSchemaURI = "https://www.w3.org/2018/credentials#VerifiableCredential"

	defaultDefinitionID          = "vc-required"
	defaultInputDescriptorID     = "vc"
	defaultInputDescriptorName   = "Verifiable Credential"
	defaultInputDescriptorPurpos = "A verifiable credential is required to complete the interaction."
)

// DefaultDefinition returns the definition used when a verifier profile does not configure one: a single
// input descriptor requiring any verifiable credential.
func DefaultDefinition() *presexch.PresentationDefinition {
	return &presexch.PresentationDefinition{
		ID: defaultDefinitionID,
		InputDescriptors: []*presexch.InputDescriptor{{
			ID:      defaultInputDescriptorID,
			Name:    defaultInputDescriptorName,
			Purpose: defaultInputDescriptorPurpos,
			Schema: []*presexch.Schema{{
				URI: VerifiableCredentialSchemaURI,
			}},
		}},
	}
}
