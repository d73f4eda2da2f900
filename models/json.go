package models

// JSONData is any value encoding/json produces when decoding into an
// interface: map[string]any, []any, bool, float64, string or nil.
type JSONData = any
