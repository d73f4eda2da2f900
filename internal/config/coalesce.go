// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// Coalesce resolves one configuration value from an explicit argument, a
// parsed JSON config file and an environment variable, in that order.
//
// A non-nil arg always wins, even when it points to an empty string. When
// fileContents is non-empty, fileKey is looked up in it: a string is
// returned, null or absence falls through, any other JSON type fails with
// [ErrWrongType]. Finally envKey is looked up in the process environment.
//
// The boolean result reports whether any source supplied a value.
func Coalesce(arg *string, fileKey string, fileContents map[string]any, envKey string) (string, bool, error) {
	if arg != nil {
		return *arg, true, nil
	}

	if len(fileContents) > 0 {
		switch v := fileContents[fileKey].(type) {
		case string:
			return v, true, nil
		case nil:
		default:
			return "", false, fmt.Errorf("%w for %q; want: 'string', got: '%s'", ErrWrongType, fileKey, jsonTypeName(v))
		}
	}

	v, ok := os.LookupEnv(envKey)
	return v, ok, nil
}

// jsonTypeName names the JSON type of a value produced by encoding/json.
func jsonTypeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case string:
		return "string"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
