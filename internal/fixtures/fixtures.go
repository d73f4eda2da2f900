// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fixtures

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"

	"github.com/MKhiriev/to-api-contract/internal/adapter"
	"github.com/MKhiriev/to-api-contract/internal/config"
	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

// Exit codes used by the fatal paths.
const (
	ExitSessionFailure = -1
	ExitNoResponseData = 1
)

// SessionFactory constructs an unauthenticated session.
type SessionFactory func(cfg adapter.Config, log *logger.Logger) (adapter.TOSession, error)

// Fixtures holds the session-scoped state of a contract-test run.
type Fixtures struct {
	opts     *config.Options
	settings *config.Settings
	logger   *logger.Logger

	exit       func(code int)
	newSession SessionFactory
	intN       func(n int) int

	args          *models.Args
	session       adapter.TOSession
	prerequisites map[string]models.JSONData
}

// Option customises a [Fixtures].
type Option func(*Fixtures)

// WithExit replaces os.Exit on the fatal paths.
func WithExit(exit func(code int)) Option {
	return func(f *Fixtures) { f.exit = exit }
}

// WithSessionFactory replaces [adapter.NewTOSession].
func WithSessionFactory(factory SessionFactory) Option {
	return func(f *Fixtures) { f.newSession = factory }
}

// WithRand makes the uniqueness suffixes reproducible.
func WithRand(r *rand.Rand) Option {
	return func(f *Fixtures) { f.intN = r.IntN }
}

// New returns a Fixtures resolving its values from opts. A nil settings
// means the built-in defaults.
func New(opts *config.Options, settings *config.Settings, log *logger.Logger, options ...Option) *Fixtures {
	if settings == nil {
		settings = &config.Settings{RequestTimeout: config.DefaultRequestTimeout, LogLevel: config.DefaultLogLevel}
	}

	f := &Fixtures{
		opts:       opts,
		settings:   settings,
		logger:     log,
		exit:       os.Exit,
		newSession: adapter.NewTOSession,
		intN:       rand.IntN,
	}
	for _, o := range options {
		o(f)
	}

	return f
}

// ToArgs returns the resolved Traffic Ops connection arguments.
func (f *Fixtures) ToArgs() (models.Args, error) {
	if f.args != nil {
		return *f.args, nil
	}

	args, err := config.LoadArgs(f.opts, f.logger)
	if err != nil {
		return models.Args{}, fmt.Errorf("resolve traffic ops arguments: %w", err)
	}

	f.logger.Debug().Object("args", args).Msg("resolved Traffic Ops arguments")
	f.args = &args
	return args, nil
}

// ToSession returns a session authenticated with the resolved credentials.
//
// The session is built over TLS without certificate verification. Failing to
// build it logs the error and exits the process with [ExitSessionFailure];
// a failed login is returned to the caller.
func (f *Fixtures) ToSession(ctx context.Context) (adapter.TOSession, error) {
	if f.session != nil {
		return f.session, nil
	}

	args, err := f.ToArgs()
	if err != nil {
		return nil, err
	}

	session, err := f.newSession(adapter.Config{
		Host:       config.SplitURL(args.URL).Hostname(),
		Port:       args.Port,
		APIVersion: args.APIVersion,
		UseSSL:     true,
		VerifyCert: false,
		Timeout:    f.settings.RequestTimeout,
	}, f.logger)
	if err != nil {
		f.logger.Debug().Err(err).Str("stack", string(debug.Stack())).Msg("session creation failed")
		f.logger.Error().Err(err).Msg("Failure in Traffic Ops session creation")
		f.exit(ExitSessionFailure)
		return nil, err
	}
	f.logger.Info().Str("base_url", session.BaseURL()).Msg("Established Traffic Ops Session.")

	if err = session.Login(ctx, args.User, args.Password); err != nil {
		return nil, fmt.Errorf("login to traffic ops as %q: %w", args.User, err)
	}
	f.logger.Info().Msg("Successfully logged into Traffic Ops.")

	f.session = session
	return session, nil
}
