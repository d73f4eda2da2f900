package adapter

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

const (
	traceIDHeader     = "X-Trace-ID"
	accessTokenCookie = "access_token"
	defaultTimeout    = 30 * time.Second
)

// Config describes how to reach a Traffic Ops instance.
type Config struct {
	// Host is the bare host name or IP address.
	Host string
	// Port is the TCP port, 1-65535.
	Port int
	// APIVersion selects the /api/{version} root.
	APIVersion models.APIVersion
	// UseSSL selects https instead of http.
	UseSSL bool
	// VerifyCert enables TLS certificate verification.
	VerifyCert bool
	// Timeout bounds each request. Zero means 30s.
	Timeout time.Duration
}

type toSession struct {
	client  *resty.Client
	baseURL string

	logger *logger.Logger
}

// NewTOSession constructs a resty implementation of [TOSession]. No request
// is sent until [TOSession.Login] is called.
//
// Returns an [*OperationError] wrapping [ErrInvalidSession] when the host is
// empty or the port is out of range.
func NewTOSession(cfg Config, log *logger.Logger) (TOSession, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, &OperationError{Op: "create session", Err: fmt.Errorf("%w: empty host", ErrInvalidSession)}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, &OperationError{Op: "create session", Err: fmt.Errorf("%w: port %d out of range", ErrInvalidSession, cfg.Port)}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	baseURL := fmt.Sprintf("%s://%s/api/%s", scheme, net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)), cfg.APIVersion)

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		//nolint:gosec // test environments run with self-signed certificates
		SetTLSClientConfig(&tls.Config{InsecureSkipVerify: !cfg.VerifyCert})

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(traceIDHeader) == "" {
			r.SetHeader(traceIDHeader, uuid.NewString())
		}
		return nil
	})

	return &toSession{client: client, baseURL: baseURL, logger: log}, nil
}

// BaseURL implements [TOSession].
func (s *toSession) BaseURL() string {
	return s.baseURL
}

// Login implements [TOSession]. It POSTs {"u": user, "p": password} to
// /user/login. When the server issues an access_token JWT cookie, its
// expiry is logged at debug level.
func (s *toSession) Login(ctx context.Context, user, password string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{User: user, Password: password}).
		Post("/user/login")
	if err != nil {
		return s.requestError("login", resp, err)
	}
	if err = mapHTTPError("login", resp); err != nil {
		return err
	}

	if exp, ok := accessTokenExpiry(resp.Cookies()); ok {
		s.logger.Debug().Time("expires_at", exp.UTC()).Msg("received access token")
	}

	return nil
}

// CreateCDN implements [TOSession].
func (s *toSession) CreateCDN(ctx context.Context, data models.JSONData) (models.JSONData, *resty.Response, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(data).
		Post("/cdns")
	if err != nil {
		return nil, resp, s.requestError("create cdn", resp, err)
	}
	if err = mapHTTPError("create cdn", resp); err != nil {
		return nil, resp, err
	}

	if len(resp.Body()) == 0 {
		return nil, resp, nil
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, resp, &OperationError{Op: "create cdn", StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode response: %w", err)}
	}

	return env.Response, resp, nil
}

// GetCDNs implements [TOSession].
func (s *toSession) GetCDNs(ctx context.Context, params map[string]string) ([]models.CDN, *resty.Response, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/cdns")
	if err != nil {
		return nil, resp, s.requestError("get cdns", resp, err)
	}
	if err = mapHTTPError("get cdns", resp); err != nil {
		return nil, resp, err
	}

	var env struct {
		Response []models.CDN `json:"response"`
	}
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, resp, &OperationError{Op: "get cdns", StatusCode: resp.StatusCode(), Err: fmt.Errorf("decode response: %w", err)}
	}

	return env.Response, resp, nil
}

// DeleteCDN implements [TOSession].
func (s *toSession) DeleteCDN(ctx context.Context, id int) (*resty.Response, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.Itoa(id)).
		Delete("/cdns/{id}")
	if err != nil {
		return resp, s.requestError("delete cdn", resp, err)
	}

	return resp, mapHTTPError("delete cdn", resp)
}

// requestError wraps a transport failure and logs it with the request's
// trace ID so it can be found in the server logs.
func (s *toSession) requestError(op string, resp *resty.Response, err error) error {
	opErr := &OperationError{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	if resp != nil && resp.Request != nil {
		opErr.TraceID = resp.Request.Header.Get(traceIDHeader)
	}

	s.logger.Error().Err(err).Str("op", op).Str("trace_id", opErr.TraceID).Msg("traffic ops request failed")
	return opErr
}

// accessTokenExpiry reads the expiry of the access_token cookie without
// verifying its signature; the client has no key to verify it with.
func accessTokenExpiry(cookies []*http.Cookie) (time.Time, bool) {
	for _, c := range cookies {
		if c.Name != accessTokenCookie {
			continue
		}

		var claims jwt.RegisteredClaims
		if _, _, err := jwt.NewParser().ParseUnverified(c.Value, &claims); err != nil {
			return time.Time{}, false
		}
		if claims.ExpiresAt == nil {
			return time.Time{}, false
		}
		return claims.ExpiresAt.Time, true
	}

	return time.Time{}, false
}
