// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Environment variables consulted by the resolver.
const (
	EnvUser           = "TO_USER"
	EnvPassword       = "TO_PASSWORD"
	EnvRequestTimeout = "TO_REQUEST_TIMEOUT"
	EnvLogLevel       = "TO_LOG_LEVEL"
)

// Keys looked up in the JSON config file.
const (
	FileKeyUser     = "user"
	FileKeyPassword = "password"
	FileKeyURL      = "url"
)

// Default file names, relative to the working directory of the test binary
// (the package directory under `go test`).
const (
	DefaultConfigFile        = "to_data.json"
	DefaultPrerequisitesFile = "prerequisite_data.json"
)

// Defaults for the ambient settings.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// Settings holds ambient, non-credential knobs of a test run.
//
// Struct tags:
//   - env — environment variable name (caarlos0/env).
type Settings struct {
	// RequestTimeout bounds every HTTP request sent to Traffic Ops
	// (e.g. "30s", "1m").
	// Env: TO_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"TO_REQUEST_TIMEOUT"`

	// LogLevel is the minimum level written by the test logger
	// (e.g. "debug", "info").
	// Env: TO_LOG_LEVEL
	LogLevel string `env:"TO_LOG_LEVEL"`
}

// Options is what the command line supplied. A nil credential pointer means
// the flag was not given at all, as opposed to given with an empty value.
type Options struct {
	User     *string
	Password *string
	URL      *string

	// ConfigPath is the JSON config file. Empty disables the file source.
	ConfigPath string
	// PrerequisitesPath is the JSON file holding prerequisite objects.
	PrerequisitesPath string

	// Settings is the flag layer of the ambient settings; zero fields were
	// not given.
	Settings Settings
}

// LoadSettings layers defaults, environment variables and the flag values
// carried by opts, then validates the result.
func LoadSettings(opts *Options) (*Settings, error) {
	return newSettingsBuilder().
		withDefaults().
		withEnv().
		withFlags(opts).
		build()
}
