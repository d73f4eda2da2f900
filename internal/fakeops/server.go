// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeops

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

const (
	tokenIssuer      = "fakeops"
	defaultTokenTTL  = time.Hour
	lastUpdatedFmt   = "2006-01-02 15:04:05-07"
	accessTokenName  = "access_token"
	mojoliciousName  = "mojolicious"
	traceIDHeader    = "X-Trace-ID"
	defaultAPIPrefix = "/api/{version}"
)

// Server is an in-memory Traffic Ops. It is safe for concurrent use.
type Server struct {
	user     string
	password string

	signKey  []byte
	tokenTTL time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cdns   map[int]models.CDN
	nextID int

	logger *logger.Logger
}

// Option customises a [Server].
type Option func(*Server)

// WithTokenTTL sets the lifetime of issued access tokens.
func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.tokenTTL = ttl }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithCDNs seeds the CDN collection.
func WithCDNs(cdns ...models.CDN) Option {
	return func(s *Server) {
		for _, c := range cdns {
			s.insertLocked(c)
		}
	}
}

// New returns a Server accepting exactly one user/password pair.
func New(user, password string, log *logger.Logger, opts ...Option) *Server {
	s := &Server{
		user:     user,
		password: password,
		signKey:  []byte(uuid.NewString()),
		tokenTTL: defaultTokenTTL,
		now:      time.Now,
		cdns:     make(map[int]models.CDN),
		nextID:   1,
		logger:   log,
	}
	for _, o := range opts {
		o(s)
	}

	return s
}

// NewTLSServer starts s behind a TLS listener with a self-signed
// certificate. The caller must Close it.
func NewTLSServer(s *Server) *httptest.Server {
	return httptest.NewTLSServer(s.Handler())
}

// CDNs returns a snapshot of the stored CDNs ordered by ID.
func (s *Server) CDNs() []models.CDN {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CDN, 0, len(s.cdns))
	for _, c := range s.cdns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// insertLocked stores c under a fresh ID. s.mu must be held or s unshared.
func (s *Server) insertLocked(c models.CDN) models.CDN {
	c.ID = s.nextID
	s.nextID++
	c.LastUpdated = s.now().UTC().Format(lastUpdatedFmt)
	s.cdns[c.ID] = c

	return c
}

// Handler returns the HTTP handler serving the fake API.
func (s *Server) Handler() http.Handler {
	return s.routes()
}
