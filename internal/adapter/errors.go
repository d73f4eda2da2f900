package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/to-api-contract/models"
)

// Status classes of failed Traffic Ops requests.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	// ErrInvalidSession is returned when a session cannot be constructed
	// from the given [Config].
	ErrInvalidSession = errors.New("invalid session configuration")
)

// OperationError is returned by every failed [TOSession] operation and by
// [NewTOSession].
type OperationError struct {
	// Op names the operation, e.g. "create cdn".
	Op string
	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// TraceID is the X-Trace-ID sent with the request, if any.
	TraceID string
	// Alerts are the error alerts the server attached to its response.
	Alerts []models.Alert
	// Err is the underlying cause.
	Err error
}

func (e *OperationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.TraceID != "" {
		fmt.Fprintf(&b, " (trace ID: %s)", e.TraceID)
	}
	return b.String()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
