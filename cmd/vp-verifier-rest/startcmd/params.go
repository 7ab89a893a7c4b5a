/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/vp-verifier/cmd/common"
	"github.com/trustbloc/vp-verifier/pkg/kms"
	"github.com/trustbloc/vp-verifier/pkg/observability/tracing"
	profilereader "github.com/trustbloc/vp-verifier/pkg/profile/reader/file"
	"github.com/trustbloc/vp-verifier/pkg/restapi/v1/verifier"
)

// kms params
const (
	kmsTypeFlagName  = "kms-type"
	kmsTypeEnvKey    = "VP_VERIFIER_KMS_TYPE"
	kmsTypeFlagUsage = "KMS holding the request object signing keys (local,aws). Default: local. " +
		commonEnvVarUsageText + kmsTypeEnvKey

	kmsEndpointFlagName  = "kms-endpoint"
	kmsEndpointEnvKey    = "VP_VERIFIER_KMS_ENDPOINT"
	kmsEndpointFlagUsage = "Optional AWS KMS endpoint override. " + commonEnvVarUsageText + kmsEndpointEnvKey

	kmsRegionFlagName  = "kms-region"
	kmsRegionEnvKey    = "VP_VERIFIER_KMS_REGION"
	kmsRegionFlagUsage = "AWS KMS region. " + commonEnvVarUsageText + kmsRegionEnvKey

	aliasPrefixFlagName  = "kms-alias-prefix"
	aliasPrefixEnvKey    = "VP_VERIFIER_KMS_ALIAS_PREFIX"
	aliasPrefixFlagUsage = "Alias prefix prepended to AWS KMS key ids. " + commonEnvVarUsageText + aliasPrefixEnvKey

	kmsHealthCheckKeyIDFlagName  = "kms-health-check-key-id"
	kmsHealthCheckKeyIDEnvKey    = "VP_VERIFIER_KMS_HEALTH_CHECK_KEY_ID"
	kmsHealthCheckKeyIDFlagUsage = "Key id used by the AWS KMS health check. The check is disabled when not set. " +
		commonEnvVarUsageText + kmsHealthCheckKeyIDEnvKey

	kmsLocalKeyDirFlagName  = "kms-local-key-dir"
	kmsLocalKeyDirEnvKey    = "VP_VERIFIER_KMS_LOCAL_KEY_DIR"
	kmsLocalKeyDirFlagUsage = "Directory with <keyID>.pem private keys for the local KMS. " +
		"Keys are generated in memory when not set. " + commonEnvVarUsageText + kmsLocalKeyDirEnvKey
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the vp-verifier instance on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey
	hostURLEnvKey = "VP_VERIFIER_HOST_URL"

	hostURLExternalFlagName      = "host-url-external"
	hostURLExternalFlagShorthand = "x"
	hostURLExternalEnvKey        = "VP_VERIFIER_HOST_URL_EXTERNAL"
	hostURLExternalFlagUsage     = "This is the URL for the host server as seen externally by wallets. " +
		"Format: https://<HOST>:<PORT>. Defaults to the host URL. " + commonEnvVarUsageText + hostURLExternalEnvKey

	apiKeyFlagName  = "api-key"
	apiKeyEnvKey    = "VP_VERIFIER_API_KEY" //nolint: gosec
	apiKeyFlagUsage = "API key expected in the X-API-Key header of the admin endpoints. " +
		commonEnvVarUsageText + apiKeyEnvKey

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool. Possible values [true] [false]. " +
		"Defaults to false if not set. " + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "VP_VERIFIER_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-separated list of CA certs path. " + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "VP_VERIFIER_TLS_CACERTS"

	tlsCertificateFlagName  = "tls-certificate"
	tlsCertificateFlagUsage = "TLS certificate for the verifier server. " + commonEnvVarUsageText +
		tlsCertificateEnvKey
	tlsCertificateEnvKey = "VP_VERIFIER_TLS_CERTIFICATE"

	tlsKeyFlagName  = "tls-key"
	tlsKeyFlagUsage = "TLS key for the verifier server. " + commonEnvVarUsageText + tlsKeyEnvKey
	tlsKeyEnvKey    = "VP_VERIFIER_TLS_KEY"

	redisMasterNameFlagName  = "redis-master-name"
	redisMasterNameEnvKey    = "VP_VERIFIER_REDIS_MASTER_NAME"
	redisMasterNameFlagUsage = "Sentinel master name of the redis deployment. " +
		commonEnvVarUsageText + redisMasterNameEnvKey

	redisPasswordFlagName  = "redis-password"             //nolint: gosec
	redisPasswordEnvKey    = "VP_VERIFIER_REDIS_PASSWORD" //nolint: gosec
	redisPasswordFlagUsage = "Redis password. " + commonEnvVarUsageText + redisPasswordEnvKey

	redisTLSFlagName  = "redis-tls"
	redisTLSEnvKey    = "VP_VERIFIER_REDIS_TLS"
	redisTLSFlagUsage = "Connect to redis over TLS using the configured CA certs. Possible values [true] [false]. " +
		commonEnvVarUsageText + redisTLSEnvKey

	sessionTTLFlagName  = "session-ttl"
	sessionTTLEnvKey    = "VP_VERIFIER_SESSION_TTL"
	sessionTTLFlagUsage = "Lifetime of an interaction session, e.g. 15m. Default: 15m. " +
		commonEnvVarUsageText + sessionTTLEnvKey

	clockSkewFlagName  = "clock-skew"
	clockSkewEnvKey    = "VP_VERIFIER_CLOCK_SKEW"
	clockSkewFlagUsage = "Leeway applied to exp and nbf of presented tokens. Default: 1m. " +
		commonEnvVarUsageText + clockSkewEnvKey

	requestObjectFormatFlagName  = "request-object-format"
	requestObjectFormatEnvKey    = "VP_VERIFIER_REQUEST_OBJECT_FORMAT"
	requestObjectFormatFlagUsage = "Request object format served when the wallet accepts any media type (json,jwt). " +
		"Default: json. " + commonEnvVarUsageText + requestObjectFormatEnvKey

	allowUnsignedFlagName  = "insecure-unsigned-request-objects"
	allowUnsignedEnvKey    = "VP_VERIFIER_INSECURE_UNSIGNED_REQUEST_OBJECTS"
	allowUnsignedFlagUsage = "Serve \"alg: none\" request objects for profiles without a signing key. " +
		"Not for production. " + commonEnvVarUsageText + allowUnsignedEnvKey

	skipDefinitionCheckFlagName  = "skip-definition-check"
	skipDefinitionCheckEnvKey    = "VP_VERIFIER_SKIP_DEFINITION_CHECK"
	skipDefinitionCheckFlagUsage = "Accept presentations without matching them against the presentation " +
		"definition. " + commonEnvVarUsageText + skipDefinitionCheckEnvKey

	didWebTimeoutFlagName  = "did-web-timeout"
	didWebTimeoutEnvKey    = "VP_VERIFIER_DID_WEB_TIMEOUT"
	didWebTimeoutFlagUsage = "HTTP timeout for did:web resolution. Default: 10s. " +
		commonEnvVarUsageText + didWebTimeoutEnvKey

	didCacheTTLFlagName  = "did-cache-ttl"
	didCacheTTLEnvKey    = "VP_VERIFIER_DID_CACHE_TTL"
	didCacheTTLFlagUsage = "How long resolved DID documents are cached. Default: 5m. " +
		commonEnvVarUsageText + didCacheTTLEnvKey

	didWebRetryMaxFlagName  = "did-web-retry-max"
	didWebRetryMaxEnvKey    = "VP_VERIFIER_DID_WEB_RETRY_MAX"
	didWebRetryMaxFlagUsage = "Retries of a failed did:web fetch. Default: 2. " +
		commonEnvVarUsageText + didWebRetryMaxEnvKey

	didWebAllowPrivateFlagName  = "did-web-allow-private-networks"
	didWebAllowPrivateEnvKey    = "VP_VERIFIER_DID_WEB_ALLOW_PRIVATE_NETWORKS"
	didWebAllowPrivateFlagUsage = "Allow did:web documents to be fetched from loopback, private and link-local " +
		"addresses. Possible values [true] [false]. Default: false. " + commonEnvVarUsageText + didWebAllowPrivateEnvKey

	contextEnableRemoteFlagName  = "context-enable-remote"
	contextEnableRemoteEnvKey    = "VP_VERIFIER_CONTEXT_ENABLE_REMOTE"
	contextEnableRemoteFlagUsage = "Fetch JSON-LD contexts missing from the embedded set over HTTP. " +
		"Possible values [true] [false]. Default: false. " + commonEnvVarUsageText + contextEnableRemoteEnvKey

	metricsProviderFlagName         = "metrics-provider-name"
	metricsProviderEnvKey           = "VP_VERIFIER_METRICS_PROVIDER_NAME"
	allowedMetricsProviderFlagUsage = "The metrics provider name (for example: 'prometheus' etc.). " +
		commonEnvVarUsageText + metricsProviderEnvKey

	promHTTPURLFlagName             = "prom-http-url"
	promHTTPURLEnvKey               = "VP_VERIFIER_PROM_HTTP_URL"
	allowedPromHTTPURLFlagNameUsage = "Optional separate listen address for the prometheus /metrics endpoint. " +
		"Metrics are served by the main server when not set. " + commonEnvVarUsageText + promHTTPURLEnvKey

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "VP_VERIFIER_TRACING_EXPORTER"
	tracingExporterFlagUsage = "Span exporter type (JAEGER, STDOUT). Tracing is disabled when not set. " +
		commonEnvVarUsageText + tracingExporterEnvKey

	tracingServiceNameFlagName  = "tracing-service-name"
	tracingServiceNameEnvKey    = "VP_VERIFIER_TRACING_SERVICE_NAME"
	tracingServiceNameFlagUsage = "Name of the tracing service. Default: vp-verifier. " +
		commonEnvVarUsageText + tracingServiceNameEnvKey

	defaultTracingServiceName = "vp-verifier"
	prometheusProviderName    = "prometheus"

	defaultSessionTTL     = 15 * time.Minute
	defaultClockSkew      = time.Minute
	defaultDIDWebTimeout  = 10 * time.Second
	defaultDIDCacheTTL    = 5 * time.Minute
	defaultDIDWebRetryMax = 2
)

type startupParameters struct {
	hostURL                         string
	hostURLExternal                 string
	apiKey                          string
	logLevel                        string
	dbParameters                    *common.DBParameters
	redisParameters                 *redisParameters
	kmsParameters                   *kmsParameters
	tlsParameters                   *tlsParameters
	serviceParameters               *serviceParameters
	didParameters                   *didParameters
	metricsProviderName             string
	prometheusMetricsProviderParams *prometheusMetricsProviderParams
	tracingParams                   *tracingParams
}

type prometheusMetricsProviderParams struct {
	url string
}

type tracingParams struct {
	exporter    tracing.SpanExporterType
	serviceName string
}

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
	serveCertPath  string
	serveKeyPath   string
}

type redisParameters struct {
	masterName string
	password   string
	useTLS     bool
}

type kmsParameters struct {
	kmsType          kms.Type
	kmsEndpoint      string
	kmsRegion        string
	aliasPrefix      string
	healthCheckKeyID string
	localKeyDir      string
}

type serviceParameters struct {
	sessionTTL          time.Duration
	clockSkew           time.Duration
	requestObjectFormat string
	allowUnsigned       bool
	skipDefinitionCheck bool
}

type didParameters struct {
	webTimeout           time.Duration
	cacheTTL             time.Duration
	retryMax             int
	allowPrivateNetworks bool
	contextEnableRemote  bool
}

// nolint: funlen
func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	hostURLExternal := cmdutils.GetUserSetOptionalVarFromString(cmd, hostURLExternalFlagName, hostURLExternalEnvKey)
	if hostURLExternal == "" {
		hostURLExternal = defaultExternalURL(hostURL, tlsParams)
	}

	apiKey := cmdutils.GetUserSetOptionalVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey)

	dbParams, err := common.DBParams(cmd)
	if err != nil {
		return nil, err
	}

	redisParams, err := getRedisParameters(cmd)
	if err != nil {
		return nil, err
	}

	kmsParams, err := getKMSParameters(cmd)
	if err != nil {
		return nil, err
	}

	serviceParams, err := getServiceParameters(cmd)
	if err != nil {
		return nil, err
	}

	didParams, err := getDIDParameters(cmd)
	if err != nil {
		return nil, err
	}

	metricsProviderName, err := getMetricsProviderName(cmd)
	if err != nil {
		return nil, err
	}

	var promParams *prometheusMetricsProviderParams
	if metricsProviderName == prometheusProviderName {
		promParams = &prometheusMetricsProviderParams{
			url: cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey),
		}
	}

	tracingParams, err := getTracingParams(cmd)
	if err != nil {
		return nil, err
	}

	loggingLevel := cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey)

	return &startupParameters{
		hostURL:                         hostURL,
		hostURLExternal:                 hostURLExternal,
		apiKey:                          apiKey,
		logLevel:                        loggingLevel,
		dbParameters:                    dbParams,
		redisParameters:                 redisParams,
		kmsParameters:                   kmsParams,
		tlsParameters:                   tlsParams,
		serviceParameters:               serviceParams,
		didParameters:                   didParams,
		metricsProviderName:             metricsProviderName,
		prometheusMetricsProviderParams: promParams,
		tracingParams:                   tracingParams,
	}, nil
}

func defaultExternalURL(hostURL string, tlsParams *tlsParameters) string {
	if strings.Contains(hostURL, "://") {
		return hostURL
	}

	if tlsParams.serveCertPath != "" && tlsParams.serveKeyPath != "" {
		return "https://" + hostURL
	}

	return "http://" + hostURL
}

func getMetricsProviderName(cmd *cobra.Command) (string, error) {
	metricsProvider, err := cmdutils.GetUserSetVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey, true)
	if err != nil {
		return "", err
	}

	if metricsProvider != "" && metricsProvider != prometheusProviderName {
		return "", fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	return metricsProvider, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPool, err := getBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey)
	if err != nil {
		return nil, err
	}

	tlsCACerts := cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	tlsServeCertPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsCertificateFlagName, tlsCertificateEnvKey)

	tlsServeKeyPath := cmdutils.GetUserSetOptionalVarFromString(cmd, tlsKeyFlagName, tlsKeyEnvKey)

	if (tlsServeCertPath == "") != (tlsServeKeyPath == "") {
		return nil, fmt.Errorf("both %s and %s must be set to serve TLS", tlsCertificateFlagName, tlsKeyFlagName)
	}

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        tlsCACerts,
		serveCertPath:  tlsServeCertPath,
		serveKeyPath:   tlsServeKeyPath,
	}, nil
}

func getRedisParameters(cmd *cobra.Command) (*redisParameters, error) {
	useTLS, err := getBool(cmd, redisTLSFlagName, redisTLSEnvKey)
	if err != nil {
		return nil, err
	}

	return &redisParameters{
		masterName: cmdutils.GetUserSetOptionalVarFromString(cmd, redisMasterNameFlagName, redisMasterNameEnvKey),
		password:   cmdutils.GetUserSetOptionalVarFromString(cmd, redisPasswordFlagName, redisPasswordEnvKey),
		useTLS:     useTLS,
	}, nil
}

func getKMSParameters(cmd *cobra.Command) (*kmsParameters, error) {
	kmsType := kms.Type(cmdutils.GetUserSetOptionalVarFromString(cmd, kmsTypeFlagName, kmsTypeEnvKey))
	if kmsType == "" {
		kmsType = kms.Local
	}

	if !supportedKmsType(kmsType) {
		return nil, fmt.Errorf("unsupported kms type: %s", kmsType)
	}

	return &kmsParameters{
		kmsType:          kmsType,
		kmsEndpoint:      cmdutils.GetUserSetOptionalVarFromString(cmd, kmsEndpointFlagName, kmsEndpointEnvKey),
		kmsRegion:        cmdutils.GetUserSetOptionalVarFromString(cmd, kmsRegionFlagName, kmsRegionEnvKey),
		aliasPrefix:      cmdutils.GetUserSetOptionalVarFromString(cmd, aliasPrefixFlagName, aliasPrefixEnvKey),
		healthCheckKeyID: cmdutils.GetUserSetOptionalVarFromString(cmd, kmsHealthCheckKeyIDFlagName,
			kmsHealthCheckKeyIDEnvKey),
		localKeyDir: cmdutils.GetUserSetOptionalVarFromString(cmd, kmsLocalKeyDirFlagName, kmsLocalKeyDirEnvKey),
	}, nil
}

func supportedKmsType(kmsType kms.Type) bool {
	return kmsType == kms.Local || kmsType == kms.AWS
}

func getServiceParameters(cmd *cobra.Command) (*serviceParameters, error) {
	sessionTTL, err := getDuration(cmd, sessionTTLFlagName, sessionTTLEnvKey, defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	clockSkew, err := getDuration(cmd, clockSkewFlagName, clockSkewEnvKey, defaultClockSkew)
	if err != nil {
		return nil, err
	}

	format := cmdutils.GetUserSetOptionalVarFromString(cmd, requestObjectFormatFlagName, requestObjectFormatEnvKey)

	switch format {
	case "":
		format = verifier.RequestObjectFormatJSON
	case verifier.RequestObjectFormatJSON, verifier.RequestObjectFormatJWT:
	default:
		return nil, fmt.Errorf("unsupported request object format: %s", format)
	}

	allowUnsigned, err := getBool(cmd, allowUnsignedFlagName, allowUnsignedEnvKey)
	if err != nil {
		return nil, err
	}

	skipDefinitionCheck, err := getBool(cmd, skipDefinitionCheckFlagName, skipDefinitionCheckEnvKey)
	if err != nil {
		return nil, err
	}

	return &serviceParameters{
		sessionTTL:          sessionTTL,
		clockSkew:           clockSkew,
		requestObjectFormat: format,
		allowUnsigned:       allowUnsigned,
		skipDefinitionCheck: skipDefinitionCheck,
	}, nil
}

func getDIDParameters(cmd *cobra.Command) (*didParameters, error) {
	webTimeout, err := getDuration(cmd, didWebTimeoutFlagName, didWebTimeoutEnvKey, defaultDIDWebTimeout)
	if err != nil {
		return nil, err
	}

	cacheTTL, err := getDuration(cmd, didCacheTTLFlagName, didCacheTTLEnvKey, defaultDIDCacheTTL)
	if err != nil {
		return nil, err
	}

	retryMax := defaultDIDWebRetryMax

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, didWebRetryMaxFlagName, didWebRetryMaxEnvKey); v != "" {
		retryMax, err = strconv.Atoi(v)
		if err != nil || retryMax < 0 {
			return nil, fmt.Errorf("invalid value [%s] for %s", v, didWebRetryMaxFlagName)
		}
	}

	allowPrivate, err := getBool(cmd, didWebAllowPrivateFlagName, didWebAllowPrivateEnvKey)
	if err != nil {
		return nil, err
	}

	contextEnableRemote, err := getBool(cmd, contextEnableRemoteFlagName, contextEnableRemoteEnvKey)
	if err != nil {
		return nil, err
	}

	return &didParameters{
		webTimeout:           webTimeout,
		cacheTTL:             cacheTTL,
		retryMax:             retryMax,
		allowPrivateNetworks: allowPrivate,
		contextEnableRemote:  contextEnableRemote,
	}, nil
}

func getTracingParams(cmd *cobra.Command) (*tracingParams, error) {
	serviceName := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingServiceNameFlagName, tracingServiceNameEnvKey)
	if serviceName == "" {
		serviceName = defaultTracingServiceName
	}

	exporter := strings.ToUpper(
		cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey))

	if !tracing.IsExporterSupported(exporter) {
		return nil, fmt.Errorf("unsupported tracing exporter: %s", exporter)
	}

	return &tracingParams{
		exporter:    exporter,
		serviceName: serviceName,
	}, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

func getBool(cmd *cobra.Command, flagName, envKey string) (bool, error) {
	v := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if v == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid value [%s] for %s: %w", v, flagName, err)
	}

	return b, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(hostURLExternalFlagName, hostURLExternalFlagShorthand, "", hostURLExternalFlagUsage)
	startCmd.Flags().String(apiKeyFlagName, "", apiKeyFlagUsage)
	startCmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)

	common.Flags(startCmd)

	startCmd.Flags().String(redisMasterNameFlagName, "", redisMasterNameFlagUsage)
	startCmd.Flags().String(redisPasswordFlagName, "", redisPasswordFlagUsage)
	startCmd.Flags().String(redisTLSFlagName, "", redisTLSFlagUsage)

	startCmd.Flags().StringP(tlsSystemCertPoolFlagName, "", "", tlsSystemCertPoolFlagUsage)
	startCmd.Flags().StringArrayP(tlsCACertsFlagName, "", []string{}, tlsCACertsFlagUsage)
	startCmd.Flags().StringP(tlsCertificateFlagName, "", "", tlsCertificateFlagUsage)
	startCmd.Flags().StringP(tlsKeyFlagName, "", "", tlsKeyFlagUsage)

	startCmd.Flags().String(kmsTypeFlagName, "", kmsTypeFlagUsage)
	startCmd.Flags().String(kmsEndpointFlagName, "", kmsEndpointFlagUsage)
	startCmd.Flags().String(kmsRegionFlagName, "", kmsRegionFlagUsage)
	startCmd.Flags().String(aliasPrefixFlagName, "", aliasPrefixFlagUsage)
	startCmd.Flags().String(kmsHealthCheckKeyIDFlagName, "", kmsHealthCheckKeyIDFlagUsage)
	startCmd.Flags().String(kmsLocalKeyDirFlagName, "", kmsLocalKeyDirFlagUsage)

	startCmd.Flags().String(sessionTTLFlagName, "", sessionTTLFlagUsage)
	startCmd.Flags().String(clockSkewFlagName, "", clockSkewFlagUsage)
	startCmd.Flags().String(requestObjectFormatFlagName, "", requestObjectFormatFlagUsage)
	startCmd.Flags().String(allowUnsignedFlagName, "", allowUnsignedFlagUsage)
	startCmd.Flags().String(skipDefinitionCheckFlagName, "", skipDefinitionCheckFlagUsage)

	startCmd.Flags().String(didWebTimeoutFlagName, "", didWebTimeoutFlagUsage)
	startCmd.Flags().String(didCacheTTLFlagName, "", didCacheTTLFlagUsage)
	startCmd.Flags().String(didWebRetryMaxFlagName, "", didWebRetryMaxFlagUsage)
	startCmd.Flags().String(didWebAllowPrivateFlagName, "", didWebAllowPrivateFlagUsage)
	startCmd.Flags().String(contextEnableRemoteFlagName, "", contextEnableRemoteFlagUsage)

	startCmd.Flags().StringP(metricsProviderFlagName, "", "", allowedMetricsProviderFlagUsage)
	startCmd.Flags().StringP(promHTTPURLFlagName, "", "", allowedPromHTTPURLFlagNameUsage)

	startCmd.Flags().StringP(tracingExporterFlagName, "", "", tracingExporterFlagUsage)
	startCmd.Flags().StringP(tracingServiceNameFlagName, "", "", tracingServiceNameFlagUsage)

	profilereader.AddFlags(startCmd)
}
