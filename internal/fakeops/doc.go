// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeops implements an in-memory stand-in for the parts of the
// Traffic Ops API the contract suite touches: cookie-based login and the
// /cdns collection.
//
// Responses use the Traffic Ops envelope ({"response": ..., "alerts": [...]})
// and every route is mounted under /api/{version}. The server is meant for
// local runs of the contract suite and for the package tests of the HTTP
// adapter; it does not persist anything.
package fakeops
