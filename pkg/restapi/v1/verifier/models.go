/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifier

import (
	"encoding/json"
	"time"

	"github.com/trustbloc/vc-go/presexch"
)

// InitiateOIDC4VPData is the body of POST /verifier/profiles/{profileID}/interactions/initiate-oidc.
type InitiateOIDC4VPData struct {
	// BaseURL is used as client_id and redirect_uri. Defaults to the profile URL or the external host URL.
	BaseURL                string                           `json:"base_url,omitempty"`
	PresentationDefinition *presexch.PresentationDefinition `json:"presentation_definition,omitempty"`
	Purpose                string                           `json:"purpose,omitempty"`
}

type InitiateOIDC4VPResponse struct {
	AuthorizationRequest string `json:"authorization_request"`
	RequestURI           string `json:"request_uri"`
	State                string `json:"state"`
}

// InteractionResponse is the session view returned to the initiating party.
type InteractionResponse struct {
	State      string                 `json:"state"`
	ProfileID  string                 `json:"profile_id"`
	Status     string                 `json:"status"`
	CreatedAt  time.Time              `json:"created_at"`
	ExpireAt   time.Time              `json:"expire_at"`
	VerifiedAt *time.Time             `json:"verified_at,omitempty"`
	Claims     map[string]interface{} `json:"claims,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

type authorizationResponseJSON struct {
	VPToken json.RawMessage `json:"vp_token"`
	State   string          `json:"state"`
}

type authorizationResponseResult struct {
	RedirectURI string `json:"redirect_uri,omitempty"`
}
