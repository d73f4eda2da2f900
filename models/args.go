// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Args is the resolved configuration needed to open a Traffic Ops session.
// It is built once per test run and never mutated afterwards.
type Args struct {
	// User is the username used for authentication.
	User string
	// Password is the password used for authentication.
	Password string
	// URL is the raw Traffic Ops URL as configured.
	URL string
	// Port is the port number on which to connect to Traffic Ops.
	Port int
	// APIVersion is the version of the API to use.
	APIVersion APIVersion
}

// String formats the configuration, omitting the password and the derived
// port and version.
func (a Args) String() string {
	return fmt.Sprintf("User: '%s', URL: '%s'", a.User, a.URL)
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so Args can be
// logged with .Object without leaking the password.
func (a Args) MarshalZerologObject(e *zerolog.Event) {
	e.Str("user", a.User).
		Str("url", a.URL).
		Int("port", a.Port).
		Stringer("api_version", a.APIVersion)
}
