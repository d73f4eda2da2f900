package fixtures

import "errors"

var (
	// ErrPrerequisitesFile indicates a prerequisites file that cannot be
	// read or decoded.
	ErrPrerequisitesFile = errors.New("invalid prerequisites file")
	// ErrMalformedPrerequisite indicates prerequisite data of the wrong
	// shape: an empty or missing array, a non-object record or a missing
	// or mistyped property.
	ErrMalformedPrerequisite = errors.New("malformed prerequisite data")
	// ErrMalformedResponse indicates an API response whose payload does not
	// have the expected shape.
	ErrMalformedResponse = errors.New("malformed API response")
)
