// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fixtures builds the shared state of a Traffic Ops contract-test
// run: the resolved connection arguments, an authenticated session, the
// prerequisite data file and the POST payloads derived from it.
//
// A [Fixtures] value plays the role of a test-session scope. Each fixture is
// computed on first use and reused by every later caller, so a suite can ask
// for the session in every spec while logging in only once. Fixtures is not
// safe for concurrent use; Ginkgo runs the specs of one process serially.
//
// Two failures are fatal for the whole process rather than returned: a
// session that cannot be constructed, and a CDN creation that returns no
// response data. Both are logged and end the process through the exit
// function, which tests replace with [WithExit].
package fixtures
