/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination oidc4vp_service_mocks_test.go -self_package mocks -package oidc4vp_test -source=oidc4vp_service.go -mock_names sessionStore=MockSessionStore,profileService=MockProfileService,requestObjectSigner=MockRequestObjectSigner,tokenVerifier=MockTokenVerifier,definitionMatcher=MockDefinitionMatcher,metricsProvider=MockMetricsProvider

package oidc4vp

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/trustbloc/vc-go/presexch"

	"github.com/trustbloc/vp-verifier/internal/logfields"
	"github.com/trustbloc/vp-verifier/pkg/doc/jws"
	noopMetricsProvider "github.com/trustbloc/vp-verifier/pkg/observability/metrics/noop"
	profileapi "github.com/trustbloc/vp-verifier/pkg/profile"
)

var logger = log.New("oidc4vp-service")

const (
	nonceSize = 32

	walletURIScheme = "openid-vc://"

	RequestObjectPath = "/verifier/oidc4vp/request-object"
	ResponsePath      = "/verifier/oidc4vp/response"

	// RequestObjectType is the "typ" header of signed request objects.
	RequestObjectType = "oauth-authz-req+jwt"

	responseTypeVPToken    = "vp_token"
	responseModeDirectPost = "direct_post"

	defaultSessionTTL = 15 * time.Minute
	defaultClockSkew  = time.Minute
)

type sessionStore interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, state State) (*Session, error)
	// Complete merges the update into the session only while its status is pending.
	Complete(ctx context.Context, state State, update *SessionUpdate) error
}

type profileService interface {
	GetProfile(profileID profileapi.ID) (*profileapi.Verifier, error)
	ResolveSigningKey(profileID profileapi.ID) (jws.KeyRef, error)
}

type requestObjectSigner interface {
	Sign(ctx context.Context, payload interface{}, keyRef jws.KeyRef) (string, error)
}

type tokenVerifier interface {
	Verify(ctx context.Context, token string) (*jws.VerifiedToken, error)
}

// definitionMatcher returns the IDs of the JWT credentials selected by the presentation definition.
type definitionMatcher interface {
	Match(pd *presexch.PresentationDefinition, jwtCredentials []string) ([]string, error)
}

type metricsProvider interface {
	InitiateInteractionTime(value time.Duration)
	VerifyAuthorizationResponseTime(value time.Duration)
	VerificationOutcome(status string)
}

type Config struct {
	SessionStore      sessionStore
	ProfileService    profileService
	Signer            requestObjectSigner
	TokenVerifier     tokenVerifier
	DefinitionMatcher definitionMatcher
	Metrics           metricsProvider

	// ExternalURL is the public origin of the verifier endpoints. The initiating base URL is used when empty.
	ExternalURL string
	SessionTTL  time.Duration
	ClockSkew   time.Duration
	// AllowUnsignedRequestObject enables "alg: none" request objects for profiles without a signing key.
	// Unsigned request objects are not authenticated and must not be used in production.
	AllowUnsignedRequestObject bool
	// SkipDefinitionCheck disables presentation definition matching of the presented credentials.
	SkipDefinitionCheck bool
}

type Service struct {
	sessionStore      sessionStore
	profileService    profileService
	signer            requestObjectSigner
	tokenVerifier     tokenVerifier
	definitionMatcher definitionMatcher
	metrics           metricsProvider

	externalURL         string
	sessionTTL          time.Duration
	clockSkew           time.Duration
	allowUnsigned       bool
	skipDefinitionCheck bool
}

func NewService(cfg *Config) *Service {
	metrics := cfg.Metrics

	if metrics == nil {
		metrics = &noopMetricsProvider.NoMetrics{}
	}

	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}

	clockSkew := cfg.ClockSkew
	if clockSkew <= 0 {
		clockSkew = defaultClockSkew
	}

	return &Service{
		sessionStore:        cfg.SessionStore,
		profileService:      cfg.ProfileService,
		signer:              cfg.Signer,
		tokenVerifier:       cfg.TokenVerifier,
		definitionMatcher:   cfg.DefinitionMatcher,
		metrics:             metrics,
		externalURL:         strings.TrimSuffix(cfg.ExternalURL, "/"),
		sessionTTL:          sessionTTL,
		clockSkew:           clockSkew,
		allowUnsigned:       cfg.AllowUnsignedRequestObject,
		skipDefinitionCheck: cfg.SkipDefinitionCheck,
	}
}

func (s *Service) InitiateOidcInteraction(ctx context.Context, req *InitiateRequest) (*InteractionInfo, error) {
	logger.Debugc(ctx, "InitiateOidcInteraction begin", logfields.WithProfileID(req.ProfileID))
	startTime := time.Now()

	defer func() {
		s.metrics.InitiateInteractionTime(time.Since(startTime))
	}()

	profile, err := s.profileService.GetProfile(req.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if !profile.Active {
		return nil, fmt.Errorf("%w: %s", profileapi.ErrProfileNotActive, profile.ID)
	}

	baseURL := strings.TrimSuffix(req.BaseURL, "/")
	if baseURL == "" {
		baseURL = strings.TrimSuffix(profile.URL, "/")
	}

	if baseURL == "" {
		baseURL = s.externalURL
	}

	if baseURL == "" {
		return nil, fmt.Errorf("%w: base url is required", ErrInvalidInput)
	}

	keyRef, signed, err := s.resolveSigningKey(ctx, profile)
	if err != nil {
		return nil, err
	}

	pd := req.PresentationDefinition
	if pd == nil {
		pd = profile.Definition()
	}

	purpose := req.Purpose
	if purpose == "" {
		purpose = profile.Purpose
	}

	nonce, err := genNonce()
	if err != nil {
		return nil, err
	}

	state := State(uuid.NewString())
	endpointURL := s.endpointURL(baseURL)
	now := time.Now().UTC()

	ro := s.createRequestObject(pd, baseURL, endpointURL, state, nonce, purpose, profile, now)

	var token string

	if signed {
		token, err = s.signer.Sign(ctx, ro, keyRef)
		if err != nil {
			return nil, fmt.Errorf("sign request object: %w", err)
		}
	} else {
		token, err = jws.NewUnsecuredToken(ro, RequestObjectType)
		if err != nil {
			return nil, fmt.Errorf("encode request object: %w", err)
		}
	}

	logger.Debugc(ctx, "InitiateOidcInteraction request object created", log.WithState(string(state)))

	session := &Session{
		State:            state,
		Status:           StatusPending,
		ProfileID:        profile.ID,
		CreatedAt:        now,
		ExpireAt:         now.Add(s.sessionTTL),
		RequestObject:    ro,
		RequestObjectJWT: token,
	}

	if err = s.sessionStore.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	requestURI := endpointURL + RequestObjectPath + "?state=" + url.QueryEscape(string(state))

	q := url.Values{}
	q.Set("client_id", ro.ClientID)
	q.Set("request_uri", requestURI)
	q.Set("state", string(state))

	logger.Debugc(ctx, "InitiateOidcInteraction succeed", log.WithState(string(state)),
		logfields.WithProfileID(profile.ID))

	return &InteractionInfo{
		AuthorizationRequest: walletURIScheme + "?" + q.Encode(),
		RequestURI:           requestURI,
		State:                state,
	}, nil
}

func (s *Service) resolveSigningKey(ctx context.Context, profile *profileapi.Verifier) (jws.KeyRef, bool, error) {
	keyRef, err := s.profileService.ResolveSigningKey(profile.ID)
	if err == nil {
		return keyRef, true, nil
	}

	if errors.Is(err, profileapi.ErrNoSigningKey) && s.allowUnsigned {
		logger.Warnc(ctx, "Profile has no signing key, request object is not signed",
			logfields.WithProfileID(profile.ID))

		return jws.KeyRef{}, false, nil
	}

	return jws.KeyRef{}, false, fmt.Errorf("resolve signing key: %w", err)
}

func (s *Service) endpointURL(baseURL string) string {
	if s.externalURL != "" {
		return s.externalURL
	}

	return baseURL
}

func (s *Service) createRequestObject(
	pd *presexch.PresentationDefinition,
	baseURL string,
	endpointURL string,
	state State,
	nonce string,
	purpose string,
	profile *profileapi.Verifier,
	now time.Time,
) *RequestObject {
	iss := baseURL
	if profile.SigningDID != nil && profile.SigningDID.DID != "" {
		iss = profile.SigningDID.DID
	}

	return &RequestObject{
		JTI:          uuid.NewString(),
		IAT:          now.Unix(),
		ISS:          iss,
		ResponseType: responseTypeVPToken,
		ResponseMode: responseModeDirectPost,
		ResponseURI:  endpointURL + ResponsePath + "?state=" + url.QueryEscape(string(state)),
		Nonce:        nonce,
		ClientID:     baseURL,
		RedirectURI:  baseURL,
		State:        string(state),
		Exp:          now.Add(s.sessionTTL).Unix(),
		ClientMetadata: &ClientMetadata{
			ClientName:                  profile.Name,
			SubjectSyntaxTypesSupported: []string{"did:key", "did:jwk", "did:web"},
			VPFormats:                   supportedFormats(),
			ClientPurpose:               purpose,
			LogoURI:                     profile.LogoURL,
		},
		PresentationDefinition: pd,
	}
}

func supportedFormats() *presexch.Format {
	algs := []string{
		string(jws.ES256), string(jws.ES384), string(jws.ES512), string(jws.ES256K), string(jws.EdDSA),
		string(jws.RS256), string(jws.PS256),
	}

	return &presexch.Format{
		JwtVC: &presexch.JwtType{Alg: algs},
		JwtVP: &presexch.JwtType{Alg: algs},
	}
}

// GetRequestObject returns the session holding the request object. It never mutates the session.
func (s *Service) GetRequestObject(ctx context.Context, state State) (*Session, error) {
	if state == "" {
		return nil, fmt.Errorf("%w: state is required", ErrInvalidInput)
	}

	session, err := s.sessionStore.Get(ctx, state)
	if err != nil {
		return nil, err
	}

	if session.RequestObject == nil {
		logger.Errorc(ctx, "Session has no request object", log.WithState(string(state)))

		return nil, ErrNoRequestObject
	}

	return session, nil
}

// GetSession returns the session status and claims.
func (s *Service) GetSession(ctx context.Context, state State) (*Session, error) {
	if state == "" {
		return nil, fmt.Errorf("%w: state is required", ErrInvalidInput)
	}

	return s.sessionStore.Get(ctx, state)
}

// VerifyAuthorizationResponse verifies the wallet response and moves the session to a terminal status.
func (s *Service) VerifyAuthorizationResponse(
	ctx context.Context,
	resp *AuthorizationResponse,
) (*VerificationResult, error) {
	logger.Debugc(ctx, "VerifyAuthorizationResponse begin", log.WithState(string(resp.State)))
	startTime := time.Now()

	defer func() {
		s.metrics.VerifyAuthorizationResponseTime(time.Since(startTime))
		logger.Debugc(ctx, "VerifyAuthorizationResponse", log.WithDuration(time.Since(startTime)))
	}()

	if strings.TrimSpace(resp.VPToken) == "" {
		return nil, fmt.Errorf("%w: vp_token is required", ErrInvalidInput)
	}

	if resp.State == "" {
		return nil, fmt.Errorf("%w: state is required", ErrInvalidInput)
	}

	session, err := s.sessionStore.Get(ctx, resp.State)
	if err != nil {
		if errors.Is(err, ErrDataNotFound) {
			logger.Infoc(ctx, "Authorization response for unknown state", log.WithState(string(resp.State)))

			return nil, ErrInvalidState
		}

		return nil, fmt.Errorf("get session: %w", err)
	}

	digest := responseDigest(resp.VPToken)

	if session.Status.IsTerminal() {
		return s.completedResult(ctx, session, digest)
	}

	if session.RequestObject == nil {
		s.failBestEffort(ctx, resp.State, ErrNoRequestObject)

		return nil, ErrNoRequestObject
	}

	claims, err := s.verifyVPToken(ctx, session, resp.VPToken)
	if err != nil {
		var verificationErr *VerificationError

		if !errors.As(err, &verificationErr) {
			s.failBestEffort(ctx, resp.State, err)

			return nil, fmt.Errorf("verify vp_token: %w", err)
		}

		logger.Infoc(ctx, "Authorization response rejected", log.WithState(string(resp.State)),
			log.WithError(err))

		completeErr := s.sessionStore.Complete(ctx, resp.State, &SessionUpdate{
			Status: StatusError,
			Error:  verificationErr.Reason,
		})
		if completeErr != nil {
			if errors.Is(completeErr, ErrSessionCompleted) {
				return nil, ErrSessionCompleted
			}

			logger.Errorc(ctx, "Failed to record verification error", log.WithState(string(resp.State)),
				log.WithError(completeErr))

			return nil, fmt.Errorf("complete session: %w", completeErr)
		}

		s.metrics.VerificationOutcome(string(StatusError))

		return nil, err
	}

	verifiedAt := time.Now().UTC()

	err = s.sessionStore.Complete(ctx, resp.State, &SessionUpdate{
		Status:         StatusSuccess,
		VerifiedAt:     &verifiedAt,
		Claims:         claims,
		ResponseDigest: digest,
	})
	if err != nil {
		if errors.Is(err, ErrSessionCompleted) {
			return s.lostRace(ctx, resp.State, digest)
		}

		s.failBestEffort(ctx, resp.State, err)

		return nil, fmt.Errorf("complete session: %w", err)
	}

	s.metrics.VerificationOutcome(string(StatusSuccess))

	logger.Infoc(ctx, "Authorization response verified", log.WithState(string(resp.State)),
		logfields.WithProfileID(session.ProfileID))

	return &VerificationResult{
		Status:      StatusSuccess,
		RedirectURI: s.redirectURI(ctx, session.ProfileID),
	}, nil
}

// completedResult acknowledges a repeated identical response and rejects anything else.
func (s *Service) completedResult(ctx context.Context, session *Session, digest string) (*VerificationResult, error) {
	if session.Status == StatusSuccess && session.ResponseDigest == digest {
		logger.Debugc(ctx, "Authorization response already accepted", log.WithState(string(session.State)))

		return &VerificationResult{
			Status:      StatusSuccess,
			RedirectURI: s.redirectURI(ctx, session.ProfileID),
			Replayed:    true,
		}, nil
	}

	logger.Infoc(ctx, "Authorization response for completed interaction", log.WithState(string(session.State)),
		logfields.WithSessionStatus(string(session.Status)))

	return nil, ErrSessionCompleted
}

func (s *Service) lostRace(ctx context.Context, state State, digest string) (*VerificationResult, error) {
	session, err := s.sessionStore.Get(ctx, state)
	if err != nil {
		return nil, ErrSessionCompleted
	}

	return s.completedResult(ctx, session, digest)
}

// failBestEffort records an unexpected failure. Its own failure is only logged.
func (s *Service) failBestEffort(ctx context.Context, state State, cause error) {
	logger.Errorc(ctx, "Authorization response processing failed", log.WithState(string(state)),
		log.WithError(cause))

	err := s.sessionStore.Complete(ctx, state, &SessionUpdate{
		Status: StatusError,
		Error:  "internal error",
	})
	if err != nil {
		logger.Warnc(ctx, "Failed to record session error", log.WithState(string(state)), log.WithError(err))

		return
	}

	s.metrics.VerificationOutcome(string(StatusError))
}

func (s *Service) redirectURI(ctx context.Context, profileID string) string {
	profile, err := s.profileService.GetProfile(profileID)
	if err != nil {
		logger.Warnc(ctx, "Failed to get profile for redirect", logfields.WithProfileID(profileID),
			log.WithError(err))

		return ""
	}

	return profile.ResponseRedirectURI
}

func responseDigest(vpToken string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(vpToken)))

	return hex.EncodeToString(sum[:])
}

func genNonce() (string, error) {
	nonceBytes := make([]byte, nonceSize)

	_, err := rand.Read(nonceBytes)
	if err != nil {
		return "", fmt.Errorf("nonce generating random failed: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(nonceBytes), nil
}
