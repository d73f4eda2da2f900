package fixtures

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/to-api-contract/models"
)

// CDNsKey is the prerequisites property holding the CDN records.
const CDNsKey = "cdns"

// Prerequisites returns the decoded prerequisites file, a JSON object whose
// properties are arrays of baseline objects keyed by endpoint name.
func (f *Fixtures) Prerequisites() (map[string]models.JSONData, error) {
	if f.prerequisites != nil {
		return f.prerequisites, nil
	}

	prerequisites, err := LoadPrerequisites(f.opts.PrerequisitesPath)
	if err != nil {
		return nil, err
	}

	f.prerequisites = prerequisites
	return prerequisites, nil
}

// CDNPrereqData returns the "cdns" array of the prerequisites file.
func (f *Fixtures) CDNPrereqData() ([]models.JSONData, error) {
	prerequisites, err := f.Prerequisites()
	if err != nil {
		return nil, err
	}

	raw, ok := prerequisites[CDNsKey]
	if !ok {
		return nil, fmt.Errorf("%w: missing '%s' property", ErrMalformedPrerequisite, CDNsKey)
	}

	cdns, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: '%s' must be an array, not '%T'", ErrMalformedPrerequisite, CDNsKey, raw)
	}

	return cdns, nil
}

// LoadPrerequisites reads and decodes the prerequisites file at path.
func LoadPrerequisites(path string) (map[string]models.JSONData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read prerequisites file at '%s': %w", ErrPrerequisitesFile, path, err)
	}

	var doc any
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: could not decode prerequisites file at '%s': %w", ErrPrerequisitesFile, path, err)
	}

	prerequisites, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected top-level object in '%s', got '%T'", ErrMalformedPrerequisite, path, doc)
	}

	return prerequisites, nil
}
