// Package config resolves the arguments needed to reach a Traffic Ops
// instance under test.
//
// Credentials and the target URL are coalesced per field from three sources
// in descending precedence:
//  1. Command-line flags (--to-user, --to-password, --to-url)
//  2. The JSON config file named by --config
//  3. Environment variables
//
// Ambient settings (request timeout, log level) are layered with the same
// builder the rest of the code base uses: defaults, then environment
// variables, then flags, where later non-zero fields win.
//
// The main entry points are [ParseFlags], [LoadArgs] and [LoadSettings].
package config
