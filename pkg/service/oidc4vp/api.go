/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp

import (
	"context"
	"errors"
	"time"

	"github.com/trustbloc/vc-go/presexch"
)

var (
	ErrDataNotFound     = errors.New("data not found")
	ErrDuplicateState   = errors.New("duplicate state")
	ErrSessionCompleted = errors.New("interaction already completed")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidState     = errors.New("invalid or expired state")
	ErrNoRequestObject  = errors.New("session has no request object")
)

// State is the opaque session token. It doubles as the OAuth state parameter.
type State string

// Status of a verification session.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// IsTerminal reports whether no further transition is allowed from the status.
func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusError
}

type Claims = map[string]interface{}

// Session is a verification session.
type Session struct {
	State            State
	Status           Status
	ProfileID        string
	CreatedAt        time.Time
	ExpireAt         time.Time
	RequestObject    *RequestObject
	RequestObjectJWT string
	VerifiedAt       *time.Time
	Claims           Claims
	Error            string
	// ResponseDigest is the SHA-256 of the accepted vp_token.
	ResponseDigest string
}

// SessionUpdate is merged into a pending session on its terminal transition.
type SessionUpdate struct {
	Status         Status
	VerifiedAt     *time.Time
	Claims         Claims
	Error          string
	ResponseDigest string
}

// RequestObject represents the request object sent to the wallet. It contains the presentation definition
// that specifies what verifiable credentials should be sent back by the wallet.
type RequestObject struct {
	JTI                    string                           `json:"jti"`
	IAT                    int64                            `json:"iat"`
	ISS                    string                           `json:"iss"`
	ResponseType           string                           `json:"response_type"`
	ResponseMode           string                           `json:"response_mode"`
	ResponseURI            string                           `json:"response_uri"`
	Nonce                  string                           `json:"nonce"`
	ClientID               string                           `json:"client_id"`
	RedirectURI            string                           `json:"redirect_uri"`
	State                  string                           `json:"state"`
	Exp                    int64                            `json:"exp"`
	ClientMetadata         *ClientMetadata                  `json:"client_metadata,omitempty"`
	PresentationDefinition *presexch.PresentationDefinition `json:"presentation_definition"`
}

type ClientMetadata struct {
	ClientName                  string           `json:"client_name,omitempty"`
	SubjectSyntaxTypesSupported []string         `json:"subject_syntax_types_supported,omitempty"`
	VPFormats                   *presexch.Format `json:"vp_formats,omitempty"`
	ClientPurpose               string           `json:"client_purpose,omitempty"`
	LogoURI                     string           `json:"logo_uri,omitempty"`
}

// InitiateRequest starts an interaction for a verifier profile.
type InitiateRequest struct {
	ProfileID string
	// BaseURL is the verifier origin, used as client_id and redirect_uri.
	BaseURL                string
	PresentationDefinition *presexch.PresentationDefinition
	Purpose                string
}

type InteractionInfo struct {
	AuthorizationRequest string
	RequestURI           string
	State                State
}

// AuthorizationResponse is the wallet's direct_post response.
type AuthorizationResponse struct {
	// VPToken is a compact JWS or a JSON array of compact JWSs.
	VPToken string
	State   State
}

type VerificationResult struct {
	Status      Status
	RedirectURI string
	// Replayed is set when an identical response was already accepted.
	Replayed bool
}

// VerificationError is a rejected authorization response. Reason is safe to return to the wallet.
type VerificationError struct {
	Reason string
	Err    error
}

func (e *VerificationError) Error() string {
	if e.Err == nil {
		return e.Reason
	}

	return e.Reason + ": " + e.Err.Error()
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

type ServiceInterface interface {
	InitiateOidcInteraction(ctx context.Context, req *InitiateRequest) (*InteractionInfo, error)
	GetRequestObject(ctx context.Context, state State) (*Session, error)
	GetSession(ctx context.Context, state State) (*Session, error)
	VerifyAuthorizationResponse(ctx context.Context, resp *AuthorizationResponse) (*VerificationResult, error)
}
