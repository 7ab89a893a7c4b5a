/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package oidc4vp . Service

package oidc4vp

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vp-verifier/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/vp-verifier/pkg/service/oidc4vp"
)

const maxAttributeLength = 4096

type Service oidc4vp.ServiceInterface

// Wrapper records a span for every call to the wrapped service.
type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) InitiateOidcInteraction(
	ctx context.Context,
	req *oidc4vp.InitiateRequest,
) (*oidc4vp.InteractionInfo, error) {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.InitiateOidcInteraction")
	defer span.End()

	span.SetAttributes(attribute.String("profile_id", req.ProfileID))
	span.SetAttributes(attribute.String("purpose", req.Purpose))
	span.SetAttributes(attributeutil.JSON("presentation_definition", req.PresentationDefinition,
		attributeutil.WithMaxLength(maxAttributeLength)))

	resp, err := w.svc.InitiateOidcInteraction(ctx, req)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.String("state", string(resp.State)))

	return resp, nil
}

func (w *Wrapper) GetRequestObject(ctx context.Context, state oidc4vp.State) (*oidc4vp.Session, error) {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.GetRequestObject")
	defer span.End()

	span.SetAttributes(attribute.String("state", string(state)))

	session, err := w.svc.GetRequestObject(ctx, state)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	return session, nil
}

func (w *Wrapper) GetSession(ctx context.Context, state oidc4vp.State) (*oidc4vp.Session, error) {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.GetSession")
	defer span.End()

	span.SetAttributes(attribute.String("state", string(state)))

	session, err := w.svc.GetSession(ctx, state)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.String("status", string(session.Status)))

	return session, nil
}

func (w *Wrapper) VerifyAuthorizationResponse(
	ctx context.Context,
	resp *oidc4vp.AuthorizationResponse,
) (*oidc4vp.VerificationResult, error) {
	ctx, span := w.tracer.Start(ctx, "oidc4vp.VerifyAuthorizationResponse")
	defer span.End()

	span.SetAttributes(attribute.String("state", string(resp.State)))
	span.SetAttributes(attributeutil.JSON("response", resp, attributeutil.WithRedacted("VPToken")))

	result, err := w.svc.VerifyAuthorizationResponse(ctx, resp)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(
		attribute.String("status", string(result.Status)),
		attribute.Bool("replayed", result.Replayed),
	)

	return result, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
