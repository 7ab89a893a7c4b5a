/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks_test.go -package aws -source=service.go

package aws

import (
	"context"
	"crypto"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
)

var logger = log.New("aws-kms")

type awsClient interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput,
		optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
	DescribeKey(ctx context.Context, params *kms.DescribeKeyInput,
		optFns ...func(*kms.Options)) (*kms.DescribeKeyOutput, error)
}

type metricsProvider interface {
	SignCount()
	SignTime(value time.Duration)
	ExportPublicKeyCount()
	ExportPublicKeyTime(value time.Duration)
}

// Service signs digests with keys held in AWS KMS.
type Service struct {
	options          *opts
	client           awsClient
	metrics          metricsProvider
	healthCheckKeyID string
}

const (
	sha256Size = 32
	sha384Size = 48
	sha512Size = 64
)

// nolint: gochecknoglobals
var digestSigningAlgorithms = map[int]types.SigningAlgorithmSpec{
	sha256Size: types.SigningAlgorithmSpecEcdsaSha256,
	sha384Size: types.SigningAlgorithmSpecEcdsaSha384,
	sha512Size: types.SigningAlgorithmSpecEcdsaSha512,
}

// nolint: gochecknoglobals
var secp256k1OID = asn1.ObjectIdentifier{1, 3, 132, 0, 10}

// New return aws service.
func New(
	awsConfig *aws.Config,
	metrics metricsProvider,
	healthCheckKeyID string,
	opts ...Opts,
) *Service {
	options := newOpts()

	for _, opt := range opts {
		opt(options)
	}

	client := options.awsClient
	if client == nil {
		client = kms.NewFromConfig(*awsConfig, func(o *kms.Options) {
			if options.endpoint != "" {
				o.BaseEndpoint = aws.String(options.endpoint)
			}
		})
	}

	return &Service{
		options:          options,
		client:           client,
		metrics:          metrics,
		healthCheckKeyID: healthCheckKeyID,
	}
}

// SignDigest signs a precomputed digest. The signing algorithm is chosen by digest length
// (SHA-256, SHA-384 or SHA-512). The returned signature is ASN.1 DER encoded, as produced by KMS.
func (s *Service) SignDigest(ctx context.Context, keyURI string, digest []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignTime(time.Since(startTime))
		}
	}()

	if s.metrics != nil {
		s.metrics.SignCount()
	}

	keyID, err := s.getKeyID(keyURI)
	if err != nil {
		return nil, err
	}

	algorithm, ok := digestSigningAlgorithms[len(digest)]
	if !ok {
		return nil, fmt.Errorf("unknown signing algorithm for digest of %d bytes", len(digest))
	}

	input := &kms.SignInput{
		KeyId:            aws.String(keyID),
		Message:          digest,
		MessageType:      types.MessageTypeDigest,
		SigningAlgorithm: algorithm,
	}

	result, err := s.client.Sign(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Debugc(ctx, "Digest signed", logfields.WithKeyID(keyID), log.WithDuration(time.Since(startTime)))

	return result.Signature, nil
}

// PublicKey returns the public key of keyURI. secp256k1 keys are returned as *ecdsa.PublicKey on
// the btcec curve.
func (s *Service) PublicKey(ctx context.Context, keyURI string) (crypto.PublicKey, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.ExportPublicKeyTime(time.Since(startTime))
		}
	}()

	if s.metrics != nil {
		s.metrics.ExportPublicKeyCount()
	}

	keyID, err := s.getKeyID(keyURI)
	if err != nil {
		return nil, err
	}

	result, err := s.client.GetPublicKey(ctx, &kms.GetPublicKeyInput{
		KeyId: aws.String(keyID),
	})
	if err != nil {
		return nil, err
	}

	if result.KeySpec == types.KeySpecEccSecgP256k1 {
		return parseSecp256k1PublicKey(result.PublicKey)
	}

	pub, err := x509.ParsePKIXPublicKey(result.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return pub, nil
}

// HealthCheck check kms.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.healthCheckKeyID == "" {
		return nil
	}

	keyID, err := s.getKeyID(s.healthCheckKeyID)
	if err != nil {
		return err
	}

	_, err = s.client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: &keyID})
	if err != nil {
		return err
	}

	return nil
}

func (s *Service) getKeyID(keyURI string) (string, error) {
	if !strings.Contains(keyURI, "aws-kms") {
		aliasPrefix := s.options.KeyAliasPrefix()

		if strings.TrimSpace(aliasPrefix) != "" && !strings.HasPrefix(keyURI, "alias/") &&
			!strings.HasPrefix(keyURI, "arn:") {
			return fmt.Sprintf("alias/%s_%s", aliasPrefix, keyURI), nil
		}

		return keyURI, nil
	}

	// keyURI must have the following format: 'aws-kms://arn:<partition>:kms:<region>:[:path]'.
	// See http://docs.aws.amazon.com/general/latest/gr/aws-arns-and-namespaces.html.
	re1 := regexp.MustCompile(`aws-kms://arn:(aws[a-zA-Z0-9-_]*):kms:([a-z0-9-]+):([a-z0-9-]+):key/(.+)`)

	if strings.Contains(keyURI, "alias") {
		re1 = regexp.MustCompile(`aws-kms://arn:(aws[a-zA-Z0-9-_]*):kms:([a-z0-9-]+):([a-z0-9-]+):(.+)`)
	}

	r := re1.FindStringSubmatch(keyURI)

	const subStringCount = 5

	if len(r) != subStringCount {
		return "", fmt.Errorf("extracting key id from URI failed")
	}

	return r[4], nil
}

type subjectPublicKeyInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	PublicKey asn1.BitString
}

func parseSecp256k1PublicKey(der []byte) (crypto.PublicKey, error) {
	spki := subjectPublicKeyInfo{}

	if _, err := asn1.Unmarshal(der, &spki); err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	var curve asn1.ObjectIdentifier

	if _, err := asn1.Unmarshal(spki.Algorithm.Parameters.FullBytes, &curve); err != nil {
		return nil, fmt.Errorf("parse public key curve: %w", err)
	}

	if !curve.Equal(secp256k1OID) {
		return nil, errors.New("public key is not on secp256k1")
	}

	pub, err := btcec.ParsePubKey(spki.PublicKey.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return pub.ToECDSA(), nil
}
