/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vp

import (
	"errors"
	"fmt"

	jsonld "github.com/piprate/json-gold/ld"
	"github.com/samber/lo"
	"github.com/trustbloc/vc-go/presexch"
	"github.com/trustbloc/vc-go/verifiable"
)

// ErrDefinitionNotSatisfied is returned when the credentials do not satisfy a presentation definition.
var ErrDefinitionNotSatisfied = errors.New("presentation definition not satisfied")

// Matcher evaluates presentation definitions against JWT credentials whose signatures were already checked.
type Matcher struct {
	documentLoader jsonld.DocumentLoader
}

func NewMatcher(documentLoader jsonld.DocumentLoader) *Matcher {
	return &Matcher{documentLoader: documentLoader}
}

// Match selects credentials for the input descriptors of pd. It returns the IDs of the matched credentials,
// in presentation order.
func (m *Matcher) Match(pd *presexch.PresentationDefinition, jwtCredentials []string) ([]string, error) {
	credentials := make([]*verifiable.Credential, 0, len(jwtCredentials))

	for i, raw := range jwtCredentials {
		cred, err := verifiable.ParseCredential([]byte(raw),
			verifiable.WithDisabledProofCheck(),
			verifiable.WithCredDisableValidation(),
			verifiable.WithJSONLDDocumentLoader(m.documentLoader),
		)
		if err != nil {
			return nil, fmt.Errorf("parse credential %d: %w", i, err)
		}

		credentials = append(credentials, cred)
	}

	if len(credentials) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDefinitionNotSatisfied, presexch.ErrNoCredentials)
	}

	presentation, err := pd.CreateVP(credentials, m.documentLoader,
		presexch.WithSDCredentialOptions(
			verifiable.WithDisabledProofCheck(),
			verifiable.WithJSONLDDocumentLoader(m.documentLoader),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDefinitionNotSatisfied, err)
	}

	return lo.Map(presentation.Credentials(), func(cred *verifiable.Credential, _ int) string {
		return cred.Contents().ID
	}), nil
}
