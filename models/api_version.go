// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAPIVersion is returned by [ParseAPIVersion] when the input is not
// of the form "{major}.{minor}".
var ErrInvalidAPIVersion = errors.New("invalid version; must be of the form '{major}.{minor}'")

// DefaultAPIVersion is the Traffic Ops API version used when the configured
// URL does not name one.
var DefaultAPIVersion = APIVersion{Major: 4, Minor: 0}

// APIVersion identifies a revision of the Traffic Ops API surface.
type APIVersion struct {
	// Major is the API's major version number.
	Major int
	// Minor is the API's minor version number.
	Minor int
}

// ParseAPIVersion parses a "{major}.{minor}" string. The input is split on the
// first "." only, so "4.0.1" fails because "0.1" is not an integer.
func ParseAPIVersion(s string) (APIVersion, error) {
	majorStr, minorStr, found := strings.Cut(s, ".")
	if !found {
		return APIVersion{}, fmt.Errorf("%w: %q", ErrInvalidAPIVersion, s)
	}

	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return APIVersion{}, fmt.Errorf("%w: bad major version %q: %w", ErrInvalidAPIVersion, majorStr, err)
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return APIVersion{}, fmt.Errorf("%w: bad minor version %q: %w", ErrInvalidAPIVersion, minorStr, err)
	}
	if major < 0 || minor < 0 {
		return APIVersion{}, fmt.Errorf("%w: negative component in %q", ErrInvalidAPIVersion, s)
	}

	return APIVersion{Major: major, Minor: minor}, nil
}

// String renders the version as "{major}.{minor}".
func (v APIVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}
