// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fixtures

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/to-api-contract/internal/adapter"
	"github.com/MKhiriev/to-api-contract/models"
)

// Prefix lengths kept from the prerequisite values before the uniqueness
// suffix is appended.
const (
	cdnNamePrefixLen       = 4
	cdnDomainNamePrefixLen = 5
	suffixRange            = 1000
)

// CDNPostData creates a CDN from the first prerequisite CDN record using the
// authenticated session and returns the created object.
func (f *Fixtures) CDNPostData(ctx context.Context) (map[string]any, error) {
	session, err := f.ToSession(ctx)
	if err != nil {
		return nil, err
	}

	cdns, err := f.CDNPrereqData()
	if err != nil {
		return nil, err
	}

	return f.CreateCDN(ctx, session, cdns)
}

// CreateCDN rewrites the first record of cdns so that its name and
// domainName are unique to this run, POSTs it and returns the created
// object.
//
// The record is modified in place. Both fields receive the same decimal
// suffix in [0, 1000). A reply without response data logs an error and
// exits the process with [ExitNoResponseData].
func (f *Fixtures) CreateCDN(ctx context.Context, session adapter.TOSession, cdns []models.JSONData) (map[string]any, error) {
	if len(cdns) == 0 {
		return nil, fmt.Errorf("%w: no CDNs present in '%s' array property", ErrMalformedPrerequisite, CDNsKey)
	}

	cdn, ok := cdns[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: CDNs must be objects, not '%T'", ErrMalformedPrerequisite, cdns[0])
	}

	suffix := strconv.Itoa(f.intN(suffixRange))
	for _, field := range []struct {
		key       string
		prefixLen int
	}{
		{key: models.CDNNameKey, prefixLen: cdnNamePrefixLen},
		{key: models.CDNDomainNameKey, prefixLen: cdnDomainNamePrefixLen},
	} {
		if err := uniquify(cdn, field.key, field.prefixLen, suffix); err != nil {
			return nil, err
		}
	}

	f.logger.Info().Interface("cdn", cdn).Msg("New cdn data to hit POST method")

	payload, _, err := session.CreateCDN(ctx, cdn)
	if err != nil {
		return nil, fmt.Errorf("create cdn %q: %w", cdn[models.CDNNameKey], err)
	}

	if payload == nil {
		f.logger.Error().Msg("No CDN response data from cdns POST request.")
		f.exit(ExitNoResponseData)
		return nil, fmt.Errorf("%w: no cdn in response", ErrMalformedResponse)
	}

	created, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: cdn is not an object, got '%T'", ErrMalformedResponse, payload)
	}

	return created, nil
}

// uniquify replaces obj[key] with its first prefixLen characters followed by
// suffix.
func uniquify(obj map[string]any, key string, prefixLen int, suffix string) error {
	raw, ok := obj[key]
	if !ok {
		return fmt.Errorf("%w: missing CDN property '%s'", ErrMalformedPrerequisite, key)
	}

	value, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%w: %s must be string, not '%T'", ErrMalformedPrerequisite, key, raw)
	}

	runes := []rune(value)
	if len(runes) > prefixLen {
		runes = runes[:prefixLen]
	}

	obj[key] = string(runes) + suffix
	return nil
}

// DeleteCDNByName removes every CDN called name. Suites register it as
// cleanup for the CDNs they create.
func DeleteCDNByName(ctx context.Context, session adapter.TOSession, name string) error {
	cdns, _, err := session.GetCDNs(ctx, map[string]string{models.CDNNameKey: name})
	if err != nil {
		return fmt.Errorf("look up cdn %q: %w", name, err)
	}

	for _, cdn := range cdns {
		if _, err = session.DeleteCDN(ctx, cdn.ID); err != nil {
			return fmt.Errorf("delete cdn %q (id %d): %w", name, cdn.ID, err)
		}
	}

	return nil
}
