// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

// LoadArgs resolves the Traffic Ops connection arguments.
//
// The config file named by opts.ConfigPath is read first, if set; failing to
// read it is an error even when every value could come from elsewhere. User,
// password and URL are then coalesced and must all be non-empty. The URL is
// parsed for its port and API version.
func LoadArgs(opts *Options, log *logger.Logger) (models.Args, error) {
	var fileContents map[string]any
	if opts.ConfigPath != "" {
		contents, err := readConfigFile(opts.ConfigPath)
		if err != nil {
			return models.Args{}, err
		}
		fileContents = contents
	}

	user, err := required(opts.User, FileKeyUser, fileContents, EnvUser, "user name", FlagUser)
	if err != nil {
		return models.Args{}, err
	}

	password, err := required(opts.Password, FileKeyPassword, fileContents, EnvPassword, "password", FlagPassword)
	if err != nil {
		return models.Args{}, err
	}

	// The URL falls back to TO_USER rather than a URL-specific variable.
	// Kept until the intended variable name is confirmed.
	toURL, err := required(opts.URL, FileKeyURL, fileContents, EnvUser, "URL", FlagURL)
	if err != nil {
		return models.Args{}, err
	}

	apiVersion, port, err := ParseURL(toURL, log)
	if err != nil {
		return models.Args{}, fmt.Errorf("invalid Traffic Ops URL: %w", err)
	}

	return models.Args{
		User:       user,
		Password:   password,
		URL:        toURL,
		Port:       port,
		APIVersion: apiVersion,
	}, nil
}

func required(arg *string, fileKey string, fileContents map[string]any, envKey, what, flagName string) (string, error) {
	v, _, err := Coalesce(arg, fileKey, fileContents, envKey)
	if err != nil {
		return "", err
	}

	if v == "" {
		return "", fmt.Errorf(
			"%w: Traffic Ops %s is not configured - use '--%s', the config file (key '%s'), or the %s environment variable to do so",
			ErrMissingConfig, what, flagName, fileKey, envKey,
		)
	}

	return v, nil
}
