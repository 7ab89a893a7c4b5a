/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type testCode string

func newTestError(status int) *RFCError[testCode] {
	return (&RFCError[testCode]{
		ErrorCode:  "invalid_state",
		HTTPStatus: status,
		Err:        errors.New("session not found"),
	}).
		WithComponent(VerifierSessionStoreComponent).
		WithOperation("Get").
		WithIncorrectValue("state")
}

func TestRFCError_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		err  *RFCError[testCode]
		want string
	}{
		{
			name: "full context",
			err:  newTestError(http.StatusBadRequest),
			want: `{"error":"invalid_state","component":"verifier.session-store","operation":"Get",
				"incorrect_value":"state","http_status":400,"error_description":"session not found"}`,
		},
		{
			name: "public client error keeps the cause",
			err:  newTestError(http.StatusBadRequest).UsePublicAPIResponse(),
			want: `{"error":"invalid_state","error_description":"session not found"}`,
		},
		{
			name: "public server error hides the cause",
			err:  newTestError(http.StatusInternalServerError).UsePublicAPIResponse(),
			want: `{"error":"invalid_state","error_description":"internal server error"}`,
		},
		{
			name: "nil cause",
			err:  &RFCError[testCode]{ErrorCode: "server_error"},
			want: `{"error":"server_error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.err)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestRFCError_UnmarshalJSON(t *testing.T) {
	t.Run("restores the full context", func(t *testing.T) {
		b, err := json.Marshal(newTestError(http.StatusBadRequest))
		require.NoError(t, err)

		var decoded RFCError[testCode]
		require.NoError(t, json.Unmarshal(b, &decoded))

		require.Equal(t, "invalid_state", decoded.Code())
		require.Equal(t, string(VerifierSessionStoreComponent), decoded.Component())
		require.Equal(t, "Get", decoded.Operation)
		require.Equal(t, "state", decoded.IncorrectValue)
		require.Equal(t, http.StatusBadRequest, decoded.HTTPStatus)
		require.EqualError(t, decoded.Unwrap(), "session not found")
	})

	t.Run("malformed body", func(t *testing.T) {
		var decoded RFCError[testCode]
		require.Error(t, decoded.UnmarshalJSON([]byte("{")))
	})
}

func TestRFCError_Error(t *testing.T) {
	cause := errors.New("some error")

	e := &RFCError[testCode]{ErrorCode: "invalid_request", Err: cause}
	require.Equal(t, "invalid_request[]: some error", e.Error())
	require.ErrorIs(t, e, cause)

	require.Equal(t,
		"invalid_state[component: verifier.session-store; operation: Get; incorrect value: state; "+
			"http status: 400]: session not found",
		newTestError(http.StatusBadRequest).Error())
}
