// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/to-api-contract/internal/logger"
)

// validate checks the merged [Settings] before they are used.
func (s *Settings) validate() error {
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidSettings, s.RequestTimeout)
	}

	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}

	return nil
}
