package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagUser           = "to-user"
	FlagPassword       = "to-password"
	FlagURL            = "to-url"
	FlagConfig         = "config"
	FlagPrerequisites  = "prerequisites"
	FlagRequestTimeout = "request-timeout"
	FlagLogLevel       = "log-level"
)

// NewFlagSet returns a FlagSet with every resolver flag registered.
//
// Flags:
//
//	--to-user          user name for the Traffic Ops session
//	--to-password      password for the Traffic Ops session
//	--to-url           Traffic Ops URL
//	--config           path to the JSON configuration file
//	--prerequisites    path to the JSON prerequisites file
//	--request-timeout  per-request timeout (e.g. "30s", "1m")
//	--log-level        minimum log level (e.g. "debug")
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.String(FlagUser, "", "User name for Traffic Ops Session.")
	fs.String(FlagPassword, "", "Password for Traffic Ops Session.")
	fs.String(FlagURL, "", "Traffic Ops URL.")
	fs.String(FlagConfig, DefaultConfigFile, "Path to configuration file.")
	fs.String(FlagPrerequisites, DefaultPrerequisitesFile, "Path to prerequisites file.")
	fs.Duration(FlagRequestTimeout, 0, "Timeout for a single Traffic Ops request (e.g. 30s, 1m).")
	fs.String(FlagLogLevel, "", "Minimum log level (debug, info, warn, error).")

	return fs
}

// ParseFlags parses argv with fs, which must come from [NewFlagSet], and
// returns the resulting [Options].
func ParseFlags(fs *pflag.FlagSet, argv []string) (*Options, error) {
	if err := fs.Parse(argv); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return OptionsFromFlags(fs)
}

// OptionsFromFlags reads [Options] from an already parsed FlagSet.
func OptionsFromFlags(fs *pflag.FlagSet) (*Options, error) {
	var (
		opts Options
		err  error
	)

	if opts.User, err = changedString(fs, FlagUser); err != nil {
		return nil, err
	}
	if opts.Password, err = changedString(fs, FlagPassword); err != nil {
		return nil, err
	}
	if opts.URL, err = changedString(fs, FlagURL); err != nil {
		return nil, err
	}
	if opts.ConfigPath, err = fs.GetString(FlagConfig); err != nil {
		return nil, fmt.Errorf("error reading --%s: %w", FlagConfig, err)
	}
	if opts.PrerequisitesPath, err = fs.GetString(FlagPrerequisites); err != nil {
		return nil, fmt.Errorf("error reading --%s: %w", FlagPrerequisites, err)
	}

	var timeout time.Duration
	if timeout, err = fs.GetDuration(FlagRequestTimeout); err != nil {
		return nil, fmt.Errorf("error reading --%s: %w", FlagRequestTimeout, err)
	}
	opts.Settings.RequestTimeout = timeout

	if opts.Settings.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
		return nil, fmt.Errorf("error reading --%s: %w", FlagLogLevel, err)
	}

	return &opts, nil
}

// changedString returns nil when the flag was not given on the command line.
func changedString(fs *pflag.FlagSet, name string) (*string, error) {
	if !fs.Changed(name) {
		return nil, nil
	}

	v, err := fs.GetString(name)
	if err != nil {
		return nil, fmt.Errorf("error reading --%s: %w", name, err)
	}

	return &v, nil
}
