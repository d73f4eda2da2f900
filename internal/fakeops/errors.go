package fakeops

import "errors"

var (
	// ErrNoAccessToken is reported when a protected route is called without
	// the access_token cookie.
	ErrNoAccessToken = errors.New("no access_token cookie")
	// ErrInvalidCredentials is reported by the login route.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
