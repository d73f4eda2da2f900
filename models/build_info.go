package models

import "github.com/rs/zerolog"

const notAvailable = "N/A"

// BuildInfo is the linker-injected metadata of a binary. Empty fields read
// as "N/A".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns a BuildInfo with "N/A" in place of empty values.
func NewBuildInfo(version, date, commit string) BuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}

	return BuildInfo{Version: orNA(version), Date: orNA(date), Commit: orNA(commit)}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (b BuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", b.Version).Str("date", b.Date).Str("commit", b.Commit)
}
