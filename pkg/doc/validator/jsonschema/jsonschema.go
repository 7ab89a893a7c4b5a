/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"
)

var logger = log.New("jsonschema")

const (
	defaultExpiration = time.Hour
	cleanupInterval   = 10 * time.Minute
)

// Document holds the JSON schema document.
type Document map[string]interface{}

// Validator validates a document against one compiled schema.
type Validator interface {
	ValidateJSONSchema(data interface{}) error
}

type compileFunc func(schema Document) (Validator, error)

// CachingValidator compiles each schema once per schema ID. Entries unused for an hour are evicted.
type CachingValidator struct {
	compiled *cache.Cache
	compile  compileFunc
}

// Opt configures CachingValidator.
type Opt func(v *CachingValidator)

// WithExpiration sets how long an unused compiled schema stays cached.
func WithExpiration(expiration time.Duration) Opt {
	return func(v *CachingValidator) {
		v.compiled = cache.New(expiration, cleanupInterval)
	}
}

func NewCachingValidator(opts ...Opt) *CachingValidator {
	v := &CachingValidator{
		compiled: cache.New(defaultExpiration, cleanupInterval),
		compile:  newValidator,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// Validate validates data against schema. When the schema declares an "$id" it must equal schemaID.
func (c *CachingValidator) Validate(data interface{}, schemaID string, schema []byte) error {
	v, err := c.validatorFor(schemaID, schema)
	if err != nil {
		return fmt.Errorf("get schema validator from cache: %w", err)
	}

	return v.ValidateJSONSchema(data)
}

func (c *CachingValidator) validatorFor(schemaID string, schema []byte) (Validator, error) {
	if cached, ok := c.compiled.Get(schemaID); ok {
		v := cached.(Validator) //nolint:forcetypeassert
		c.compiled.SetDefault(schemaID, v)

		return v, nil
	}

	var doc Document

	if err := json.Unmarshal(schema, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	if err := checkSchemaID(doc, schemaID); err != nil {
		return nil, err
	}

	v, err := c.compile(doc)
	if err != nil {
		return nil, fmt.Errorf("create validator [%s]: %w", schemaID, err)
	}

	c.compiled.SetDefault(schemaID, v)

	logger.Debug("Compiled JSON schema", log.WithID(schemaID))

	return v, nil
}

func checkSchemaID(doc Document, schemaID string) error {
	raw, ok := doc["$id"]
	if !ok {
		return nil
	}

	id, ok := raw.(string)
	if !ok {
		return fmt.Errorf("schema field '$id' must be a string, got %T", raw)
	}

	if id != schemaID {
		return fmt.Errorf("schema field '$id' [%s] does not match schema ID [%s]", id, schemaID)
	}

	return nil
}

func newValidator(schema Document) (Validator, error) {
	compiled, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return &validator{schema: compiled}, nil
}

type validator struct {
	schema *gojsonschema.Schema
}

func (v *validator) ValidateJSONSchema(data interface{}) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		msgs = append(msgs, resultErr.String())
	}

	return fmt.Errorf("validation error: %w", errors.New("["+strings.Join(msgs, "; ")+"]"))
}
