/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// RFCError is an OAuth style error with an "error" code and an "error_description".
type RFCError[T ~string] struct {
	ErrorCode      T
	ErrorComponent Component
	Operation      string
	IncorrectValue string
	HTTPStatus     int
	Err            error

	public bool
}

// RFCErrorJSON is the wire form of RFCError.
type RFCErrorJSON[T comparable] struct {
	ErrorCode       T         `json:"error"`
	Component       Component `json:"component,omitempty"`
	Operation       string    `json:"operation,omitempty"`
	IncorrectValue  string    `json:"incorrect_value,omitempty"`
	HTTPStatusField int       `json:"http_status,omitempty"`
	Description     string    `json:"error_description,omitempty"`
}

// MarshalJSON writes the full error context, or only the code and a safe description for public responses.
func (e *RFCError[T]) MarshalJSON() ([]byte, error) {
	if e.public {
		return json.Marshal(&RFCErrorJSON[T]{ErrorCode: e.ErrorCode, Description: e.publicDescription()})
	}

	return json.Marshal(&RFCErrorJSON[T]{
		ErrorCode:       e.ErrorCode,
		Component:       e.ErrorComponent,
		Operation:       e.Operation,
		IncorrectValue:  e.IncorrectValue,
		HTTPStatusField: e.HTTPStatus,
		Description:     e.cause(),
	})
}

func (e *RFCError[T]) UnmarshalJSON(b []byte) error {
	var data RFCErrorJSON[T]

	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	*e = RFCError[T]{
		ErrorCode:      data.ErrorCode,
		ErrorComponent: data.Component,
		Operation:      data.Operation,
		IncorrectValue: data.IncorrectValue,
		HTTPStatus:     data.HTTPStatusField,
		Err:            errors.New(data.Description),
	}

	return nil
}

// Error renders the code, the non-empty context fields and the cause, e.g.
// "invalid_state[incorrect value: state; http status: 400]: session not found".
func (e *RFCError[T]) Error() string {
	var ctx []string

	add := func(label, value string) {
		if value != "" {
			ctx = append(ctx, label+": "+value)
		}
	}

	add("component", string(e.ErrorComponent))
	add("operation", e.Operation)
	add("incorrect value", e.IncorrectValue)

	if e.HTTPStatus != 0 {
		add("http status", fmt.Sprint(e.HTTPStatus))
	}

	return fmt.Sprintf("%s[%s]: %v", e.ErrorCode, strings.Join(ctx, "; "), e.Err)
}

func (e *RFCError[T]) cause() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

// publicDescription hides the cause of server errors.
func (e *RFCError[T]) publicDescription() string {
	if e.HTTPStatus >= http.StatusInternalServerError {
		return strings.ToLower(http.StatusText(e.HTTPStatus))
	}

	return e.cause()
}

func (e *RFCError[T]) WithComponent(component Component) *RFCError[T] {
	e.ErrorComponent = component

	return e
}

func (e *RFCError[T]) WithOperation(operation string) *RFCError[T] {
	e.Operation = operation

	return e
}

// WithIncorrectValue names the request parameter that caused the error.
func (e *RFCError[T]) WithIncorrectValue(incorrectValue string) *RFCError[T] {
	e.IncorrectValue = incorrectValue

	return e
}

// UsePublicAPIResponse limits the JSON form to "error" and "error_description".
func (e *RFCError[T]) UsePublicAPIResponse() *RFCError[T] {
	e.public = true

	return e
}

func (e *RFCError[T]) Code() string {
	return string(e.ErrorCode)
}

func (e *RFCError[T]) Component() string {
	return string(e.ErrorComponent)
}

func (e *RFCError[T]) Unwrap() error {
	return e.Err
}
