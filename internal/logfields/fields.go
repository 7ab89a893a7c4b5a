/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAdditionalMessage = "additionalMessage"
	FieldClaimKeys         = "claimKeys"
	FieldDatabaseType      = "databaseType"
	FieldDID               = "did"
	FieldKeyID             = "keyID"
	FieldKMSType           = "kmsType"
	FieldPresDefID         = "presDefID"
	FieldProfile           = "profile"
	FieldProfileID         = "profileID"
	FieldSessionStatus     = "sessionStatus"
	FieldSleep             = "sleep"
	FieldTokenCount        = "tokenCount"
	FieldUserLogLevel      = "userLogLevel"
)

// WithAdditionalMessage sets the AdditionalMessage field.
func WithAdditionalMessage(value string) zap.Field {
	return zap.String(FieldAdditionalMessage, value)
}

// WithClaimKeys sets the ClaimKeys field.
func WithClaimKeys(claimKeys []string) zap.Field {
	return zap.Strings(FieldClaimKeys, claimKeys)
}

// WithDatabaseType sets the DatabaseType field.
func WithDatabaseType(value string) zap.Field {
	return zap.String(FieldDatabaseType, value)
}

// WithDID sets the DID field.
func WithDID(did string) zap.Field {
	return zap.String(FieldDID, did)
}

// WithKeyID sets the KeyID (KMS key identifier) field.
func WithKeyID(keyID string) zap.Field {
	return zap.String(FieldKeyID, keyID)
}

// WithKMSType sets the KMSType field.
func WithKMSType(value string) zap.Field {
	return zap.String(FieldKMSType, value)
}

// WithPresDefID sets the PresDefID (presentation definition ID) field.
func WithPresDefID(presDefID string) zap.Field {
	return zap.String(FieldPresDefID, presDefID)
}

// WithProfile sets the Profile field. The value is marshalled by reflection.
func WithProfile(profile interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldProfile, profile))
}

// WithProfileID sets the ProfileID field.
func WithProfileID(profileID string) zap.Field {
	return zap.String(FieldProfileID, profileID)
}

// WithSessionStatus sets the SessionStatus field.
func WithSessionStatus(status string) zap.Field {
	return zap.String(FieldSessionStatus, status)
}

// WithSleep sets the Sleep field.
func WithSleep(value time.Duration) zap.Field {
	return zap.Duration(FieldSleep, value)
}

// WithTokenCount sets the TokenCount field.
func WithTokenCount(count int) zap.Field {
	return zap.Int(FieldTokenCount, count)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
