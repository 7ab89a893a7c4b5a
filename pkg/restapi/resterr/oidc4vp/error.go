/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package oidc4vp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/trustbloc/vp-verifier/pkg/restapi/resterr"
)

// oidc4vpErrorCode is the "error" value returned by the verifier endpoints.
type oidc4vpErrorCode string

const (
	// invalidRequest is the OAuth 2.0 code for a missing or malformed parameter.
	invalidRequest oidc4vpErrorCode = "invalid_request"

	// invalidState is returned for an unknown or expired interaction state.
	invalidState oidc4vpErrorCode = "invalid_state"

	notFound oidc4vpErrorCode = "not_found"

	// verificationFailed is returned when the presented vp_token is rejected.
	verificationFailed oidc4vpErrorCode = "verification_failed"

	// interactionCompleted is returned for responses to an interaction that already has an outcome.
	interactionCompleted oidc4vpErrorCode = "interaction_completed"

	unauthorized oidc4vpErrorCode = "unauthorized"

	// serverError is the OAuth 2.0 code for unexpected failures.
	serverError oidc4vpErrorCode = "server_error"
)

// Error represents OIDC4VP error.
type Error = resterr.RFCError[oidc4vpErrorCode]

func NewInvalidRequestError(err error) *Error {
	return &Error{
		ErrorCode:  invalidRequest,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidStateError(err error) *Error {
	return &Error{
		ErrorCode:  invalidState,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewNotFoundError(err error) *Error {
	return &Error{
		ErrorCode:  notFound,
		Err:        err,
		HTTPStatus: http.StatusNotFound,
	}
}

func NewVerificationFailedError(err error) *Error {
	return &Error{
		ErrorCode:  verificationFailed,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInteractionCompletedError(err error) *Error {
	return &Error{
		ErrorCode:  interactionCompleted,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewUnauthorizedError(err error) *Error {
	return &Error{
		ErrorCode:  unauthorized,
		Err:        err,
		HTTPStatus: http.StatusUnauthorized,
	}
}

func NewServerError(err error) *Error {
	return &Error{
		ErrorCode:  serverError,
		Err:        err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Parse decodes an error response body.
func Parse(reader io.Reader) *Error {
	b, err := io.ReadAll(reader)
	if err != nil {
		return NewServerError(fmt.Errorf("read OIDC4VPErr: %w", err))
	}

	var e *Error

	if err = json.Unmarshal(b, &e); err != nil {
		return NewServerError(fmt.Errorf("decode OIDC4VPErr from body: %s, err: %w", string(b), err))
	}

	return e
}
