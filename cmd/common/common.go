/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the default log level.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the default log level.
	LogLevelEnvKey = "VP_VERIFIER_LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the default log level.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Logging level, either a single level applied to every module or a spec of the form " +
		"module1=level1:module2=level2:defaultLevel, e.g. oidc4vp-service=DEBUG:restapi=WARNING:INFO. " +
		"Levels: PANIC, FATAL, ERROR, WARNING, INFO, DEBUG. Defaults to INFO." +
		" Alternatively, this can be set with the following environment variable: " + LogLevelEnvKey
)

var supportedLevels = []string{ //nolint:gochecknoglobals
	log.PANIC.String(), log.FATAL.String(), log.ERROR.String(),
	log.WARNING.String(), log.INFO.String(), log.DEBUG.String(),
}

// SetDefaultLogLevel applies the user supplied level or module spec. Invalid values fall back to INFO.
func SetDefaultLogLevel(logger *log.Log, userLogLevel string) {
	if strings.Contains(userLogLevel, "=") {
		if err := log.SetSpec(userLogLevel); err != nil {
			logger.Warn("Invalid log spec, defaulting to INFO",
				logfields.WithUserLogLevel(userLogLevel), log.WithError(err))

			log.SetLevel("", log.INFO)
		}

		return
	}

	level, err := log.ParseLevel(userLogLevel)
	if err != nil {
		logger.Warn("Unsupported log level, defaulting to INFO. Supported levels: "+strings.Join(supportedLevels, ", "),
			logfields.WithUserLogLevel(userLogLevel))

		level = log.INFO
	}

	if level == log.DEBUG {
		logger.Info("Debug logging enabled, performance may be affected")
	}

	log.SetLevel("", level)
}
