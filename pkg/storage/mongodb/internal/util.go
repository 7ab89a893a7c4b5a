/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	dot          = "."
	dotEscapeRep = "`"
)

// EncodeDocument converts a json-tagged struct or map into a document the driver can insert. Key dots are
// replaced with backticks since neither MongoDB nor DocumentDB accept them in field names.
func EncodeDocument(value interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic map[string]interface{}
	if err = dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	encoded, err := rewriteKeys(generic, escapeKey)
	if err != nil {
		return nil, err
	}

	return encoded.(map[string]interface{}), nil //nolint:forcetypeassert
}

// DecodeDocument restores keys escaped by EncodeDocument and unmarshals the stored document into out.
func DecodeDocument(stored map[string]interface{}, out interface{}) error {
	decoded, err := rewriteKeys(stored, unescapeKey)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(decoded)
	if err != nil {
		return fmt.Errorf("marshal stored document: %w", err)
	}

	return json.Unmarshal(raw, out)
}

func escapeKey(key string) (string, error) {
	if strings.Contains(key, dotEscapeRep) {
		return "", fmt.Errorf("key %q contains reserved character %s", key, dotEscapeRep)
	}

	return strings.ReplaceAll(key, dot, dotEscapeRep), nil
}

func unescapeKey(key string) (string, error) {
	return strings.ReplaceAll(key, dotEscapeRep, dot), nil
}

// rewriteKeys walks nested objects and arrays, renaming every object key with fn. Driver types returned by
// queries are normalized to plain maps and slices.
func rewriteKeys(value interface{}, fn func(string) (string, error)) (interface{}, error) {
	switch v := value.(type) {
	case primitive.M:
		return rewriteKeys(map[string]interface{}(v), fn)
	case primitive.A:
		return rewriteKeys([]interface{}(v), fn)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))

		for key, nested := range v {
			newKey, err := fn(key)
			if err != nil {
				return nil, err
			}

			if out[newKey], err = rewriteKeys(nested, fn); err != nil {
				return nil, err
			}
		}

		return out, nil
	case []interface{}:
		out := make([]interface{}, len(v))

		for i, nested := range v {
			rewritten, err := rewriteKeys(nested, fn)
			if err != nil {
				return nil, err
			}

			out[i] = rewritten
		}

		return out, nil
	default:
		return value, nil
	}
}
