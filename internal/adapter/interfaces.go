// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the Traffic Ops session used by the contract-test
// fixtures.
//
// The primary abstraction is [TOSession], which decouples the fixtures from
// the HTTP client library. The package ships a resty implementation
// ([NewTOSession]) that talks to the versioned /api/{major}.{minor}/ surface,
// keeps the login cookies in a cookie jar and unwraps the standard
// {"response": ..., "alerts": [...]} envelope.
//
// Non-2xx responses are returned as [*OperationError] wrapping one of the
// sentinel values in errors.go, so callers can use [errors.Is] for the status
// class and [errors.As] for the alerts the server sent.
package adapter

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/to-api-contract/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/to_session_mock.go -package=mock

// TOSession is an authenticated conversation with one Traffic Ops instance.
type TOSession interface {
	// BaseURL returns the versioned API root, e.g.
	// "https://to.example.test:443/api/4.0".
	BaseURL() string

	// Login authenticates with user and password. On success the session
	// cookies are kept for every subsequent request. Returns an
	// [*OperationError] wrapping [ErrUnauthorized] on bad credentials.
	Login(ctx context.Context, user, password string) error

	// CreateCDN POSTs data to /cdns and returns the "response" member of the
	// reply envelope together with the raw response. The payload is nil when
	// the server sent no response data.
	CreateCDN(ctx context.Context, data models.JSONData) (models.JSONData, *resty.Response, error)

	// GetCDNs lists CDNs, optionally filtered by query parameters such as
	// "name".
	GetCDNs(ctx context.Context, params map[string]string) ([]models.CDN, *resty.Response, error)

	// DeleteCDN deletes the CDN with the given ID.
	DeleteCDN(ctx context.Context, id int) (*resty.Response, error)
}
