/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const redactedValue = "[REDACTED]"

// JSON returns attribute with the value marshaled to JSON. Value can be redacted using WithRedacted option
// and truncated using WithMaxLength option.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	for _, path := range op.redacted {
		if gjson.GetBytes(b, path).Exists() {
			b, _ = sjson.SetBytes(b, path, redactedValue)
		}
	}

	s := string(b)

	if op.maxLength > 0 && len(s) > op.maxLength {
		s = s[:op.maxLength] + "..."
	}

	return attribute.KeyValue{
		Key:   attribute.Key(key),
		Value: attribute.StringValue(s),
	}
}

type options struct {
	redacted  []string
	maxLength int
}

type Opt func(*options)

// WithRedacted returns option that replaces value with [REDACTED] for the given path.
// Refer to https://github.com/tidwall/gjson/blob/master/SYNTAX.md for path syntax.
func WithRedacted(path string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, path)
	}
}

// WithMaxLength caps the attribute value at n bytes.
func WithMaxLength(n int) Opt {
	return func(o *options) {
		o.maxLength = n
	}
}
