package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// readConfigFile reads the JSON config file at path.
//
// A file holding JSON null yields nil contents; any other non-object
// document fails with [ErrConfigFile].
func readConfigFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read configuration file at '%s': %w", ErrConfigFile, path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: could not decode configuration file at '%s': %w", ErrConfigFile, path, err)
	}

	switch v := doc.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: expected top-level object, got: '%s'", ErrConfigFile, jsonTypeName(v))
	}
}
