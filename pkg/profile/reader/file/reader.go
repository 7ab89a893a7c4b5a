/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package file

import (
	"context"
	"crypto"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vp-verifier/internal/logfields"
	"github.com/trustbloc/vp-verifier/pkg/did"
	"github.com/trustbloc/vp-verifier/pkg/doc/jws"
	"github.com/trustbloc/vp-verifier/pkg/doc/validator/jsonschema"
	profileapi "github.com/trustbloc/vp-verifier/pkg/profile"
)

var logger = log.New("verifier-profile-file-reader")

const (
	profilesFilePathFlagName  = "profiles-file-path"
	profilesFilePathEnvKey    = "VP_VERIFIER_PROFILES_FILE_PATH"
	profilesFilePathFlagUsage = "Path to the JSON file with verifier profiles. " +
		"Alternatively, this can be set with the following environment variable: " + profilesFilePathEnvKey
)

const profilesSchemaID = "https://trustbloc.github.io/vp-verifier/schemas/profiles.json"

//go:embed profiles.schema.json
var profilesSchema []byte

type keyManager interface {
	PublicKey(ctx context.Context, keyID string) (crypto.PublicKey, error)
}

type schemaValidator interface {
	Validate(data interface{}, schemaID string, schema []byte) error
}

// Config contains params for the profile file reader.
type Config struct {
	// KeyManager derives missing signing DIDs from the profiles' KMS keys.
	KeyManager keyManager
	// SchemaValidator checks the profiles file structure. A caching JSON schema validator is used when nil.
	SchemaValidator schemaValidator
}

type profileData struct {
	Verifiers []*profileapi.Verifier `json:"verifiers"`
}

// VerifierReader reads verifier profiles from a JSON file.
type VerifierReader struct {
	verifiers map[string]*profileapi.Verifier
}

// AddFlags adds flags for the profile reader.
func AddFlags(startCmd *cobra.Command) {
	startCmd.Flags().String(profilesFilePathFlagName, "", profilesFilePathFlagUsage)
}

// NewVerifierReader reads the profiles file set by the profiles-file-path flag.
func NewVerifierReader(ctx context.Context, cmd *cobra.Command, config *Config) (*VerifierReader, error) {
	path, err := cmdutils.GetUserSetVarFromString(cmd, profilesFilePathFlagName, profilesFilePathEnvKey, false)
	if err != nil {
		return nil, err
	}

	return NewVerifierReaderFromFile(ctx, path, config)
}

// NewVerifierReaderFromFile reads verifier profiles from path.
func NewVerifierReaderFromFile(ctx context.Context, path string, config *Config) (*VerifierReader, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	if err = validateProfiles(raw, config); err != nil {
		return nil, err
	}

	var data profileData

	if err = json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal profiles file: %w", err)
	}

	r := &VerifierReader{
		verifiers: make(map[string]*profileapi.Verifier, len(data.Verifiers)),
	}

	for _, v := range data.Verifiers {
		if err = prepare(ctx, v, config); err != nil {
			return nil, fmt.Errorf("verifier profile %q: %w", v.ID, err)
		}

		if _, ok := r.verifiers[v.ID]; ok {
			return nil, fmt.Errorf("duplicate verifier profile %q", v.ID)
		}

		r.verifiers[v.ID] = v

		logger.Infoc(ctx, "Verifier profile loaded", logfields.WithProfileID(v.ID),
			logfields.WithDID(lo.FromPtrOr(v.SigningDID, profileapi.SigningDID{}).DID))
	}

	return r, nil
}

func validateProfiles(raw []byte, config *Config) error {
	var doc interface{}

	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("unmarshal profiles file: %w", err)
	}

	var validator schemaValidator = jsonschema.NewCachingValidator()
	if config != nil && config.SchemaValidator != nil {
		validator = config.SchemaValidator
	}

	if err := validator.Validate(doc, profilesSchemaID, profilesSchema); err != nil {
		return fmt.Errorf("invalid profiles file: %w", err)
	}

	return nil
}

func prepare(ctx context.Context, v *profileapi.Verifier, config *Config) error {
	if strings.TrimSpace(v.ID) == "" {
		return fmt.Errorf("profile id is required")
	}

	if v.PresentationDefinition != nil {
		if err := v.PresentationDefinition.ValidateSchema(); err != nil {
			return fmt.Errorf("invalid presentation definition: %w", err)
		}
	}

	switch v.SigningAlgorithm() {
	case jws.ES256, jws.ES384, jws.ES512, jws.ES256K:
	default:
		return fmt.Errorf("unsupported request object signing algorithm %q", v.SigningAlgorithm())
	}

	sd := v.SigningDID
	if sd == nil || sd.KMSKeyID == "" {
		return nil
	}

	if sd.DID != "" {
		if sd.KeyID == "" {
			sd.KeyID = sd.DID
		}

		return nil
	}

	if config == nil || config.KeyManager == nil {
		return fmt.Errorf("signing DID for kms key %q cannot be derived without a key manager", sd.KMSKeyID)
	}

	pub, err := config.KeyManager.PublicKey(ctx, sd.KMSKeyID)
	if err != nil {
		return fmt.Errorf("get public key: %w", err)
	}

	method := ""
	if v.OIDCConfig != nil {
		method = v.OIDCConfig.DIDMethod
	}

	didID, keyID, err := did.CreateDID(method, pub)
	if err != nil {
		return fmt.Errorf("create signing DID: %w", err)
	}

	sd.DID = didID
	sd.KeyID = keyID

	logger.Debugc(ctx, "Signing DID derived from kms key", logfields.WithProfileID(v.ID),
		logfields.WithKeyID(sd.KMSKeyID), logfields.WithDID(didID))

	return nil
}

// GetProfile returns the verifier profile with the given ID.
func (r *VerifierReader) GetProfile(profileID profileapi.ID) (*profileapi.Verifier, error) {
	v, ok := r.verifiers[profileID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", profileapi.ErrProfileNotFound, profileID)
	}

	return v, nil
}

// ResolveSigningKey returns the request object signing key of an active verifier profile.
func (r *VerifierReader) ResolveSigningKey(profileID profileapi.ID) (jws.KeyRef, error) {
	v, err := r.GetProfile(profileID)
	if err != nil {
		return jws.KeyRef{}, err
	}

	if !v.Active {
		return jws.KeyRef{}, fmt.Errorf("%w: %s", profileapi.ErrProfileNotActive, profileID)
	}

	return v.SigningKey()
}

// GetAllProfiles returns all verifier profiles.
func (r *VerifierReader) GetAllProfiles() []*profileapi.Verifier {
	return lo.Values(r.verifiers)
}
