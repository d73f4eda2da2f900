// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Error kinds returned by the resolver. Every returned error wraps exactly
// one of these, so callers can tell them apart with [errors.Is].
var (
	// ErrMissingConfig indicates that a required value was not supplied by
	// any source.
	ErrMissingConfig = errors.New("missing required configuration")
	// ErrWrongType indicates a config file value of the wrong JSON type.
	ErrWrongType = errors.New("incorrect value type")
	// ErrMalformedURL indicates a Traffic Ops URL that cannot be used: no
	// host, a non-HTTPS scheme, a bad port or a bad API version path.
	ErrMalformedURL = errors.New("malformed Traffic Ops URL")
	// ErrConfigFile indicates a config file that cannot be read or is not a
	// JSON object.
	ErrConfigFile = errors.New("invalid configuration file")
	// ErrInvalidSettings indicates an ambient setting that is out of range.
	ErrInvalidSettings = errors.New("invalid settings")
)
