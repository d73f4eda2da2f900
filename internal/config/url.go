// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

// DefaultPort is used when the Traffic Ops URL carries no explicit port.
const DefaultPort = 443

// URLParts is a Traffic Ops URL split into the pieces the resolver cares
// about. Host is the full network location, including any port.
type URLParts struct {
	Scheme string
	Host   string
	Path   string
}

// SplitURL splits raw into scheme, network location and path.
//
// A URL without "://" is read as starting with the network location, so
// "trafficops.example.test" and "trafficops.example.test:8443/api/4.0" are
// both accepted. Query and fragment are discarded.
func SplitURL(raw string) URLParts {
	var parts URLParts

	rest := strings.TrimSpace(raw)
	if scheme, after, found := strings.Cut(rest, "://"); found {
		parts.Scheme = scheme
		rest = after
	} else {
		rest = strings.TrimPrefix(rest, "//")
	}

	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '/'); i >= 0 {
		parts.Host, parts.Path = rest[:i], rest[i:]
	} else {
		parts.Host = rest
	}

	return parts
}

// Hostname returns the host of the network location without user info,
// port or IPv6 brackets.
func (p URLParts) Hostname() string {
	host := p.Host
	if i := strings.LastIndexByte(host, '@'); i >= 0 {
		host = host[i+1:]
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}

	return strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
}

// ParseURL extracts the API version and port from a raw Traffic Ops URL.
//
// The URL must name a host and, if it has a scheme, the scheme must be
// HTTPS. The port defaults to [DefaultPort]; the API version is read from
// the first path segment after "/api/" and defaults to
// [models.DefaultAPIVersion], which is logged as a warning.
func ParseURL(raw string, log *logger.Logger) (models.APIVersion, int, error) {
	parts := SplitURL(raw)
	if parts.Host == "" {
		return models.APIVersion{}, 0, fmt.Errorf("%w: missing network location (hostname & optional port)", ErrMalformedURL)
	}

	if parts.Scheme != "" && !strings.EqualFold(parts.Scheme, "https") {
		return models.APIVersion{}, 0, fmt.Errorf("%w: invalid scheme %q; must use HTTPS", ErrMalformedURL, parts.Scheme)
	}

	hostPort := parts.Host
	if i := strings.LastIndexByte(hostPort, '@'); i >= 0 {
		hostPort = hostPort[i+1:]
	}
	if i := strings.LastIndexByte(hostPort, ']'); i >= 0 {
		hostPort = hostPort[i+1:]
	}

	port := DefaultPort
	if i := strings.LastIndexByte(hostPort, ':'); i >= 0 {
		portStr := hostPort[i+1:]
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return models.APIVersion{}, 0, fmt.Errorf("%w: invalid port number: %s: %w", ErrMalformedURL, portStr, err)
		}
		port = p
	}

	apiVersion := models.DefaultAPIVersion
	if parts.Path != "" && parts.Path != "/" {
		// Leading '/', 'a', 'p' and 'i' characters are all stripped, so
		// both "/api/4.0" and "/4.0" name version 4.0.
		verStr, _, _ := strings.Cut(strings.TrimLeft(parts.Path, "/api"), "/")
		if verStr == "" {
			return models.APIVersion{}, 0, fmt.Errorf("%w: invalid API path: %s (should be e.g. '/api/4.0')", ErrMalformedURL, parts.Path)
		}

		v, err := models.ParseAPIVersion(verStr)
		if err != nil {
			return models.APIVersion{}, 0, fmt.Errorf("%w: %w", ErrMalformedURL, err)
		}
		apiVersion = v
	} else {
		log.Warn().Stringer("api_version", apiVersion).Msg("using default API version")
	}

	return apiVersion, port, nil
}
