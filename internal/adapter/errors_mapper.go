package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/to-api-contract/models"
)

// mapHTTPError returns nil for a 2xx response and an [*OperationError]
// otherwise. The error alerts of a Traffic Ops envelope, when present, are
// used as the message instead of the raw body.
func mapHTTPError(op string, resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	opErr := &OperationError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		TraceID:    resp.Request.Header.Get(traceIDHeader),
	}

	body := strings.TrimSpace(string(resp.Body()))
	var env models.Envelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil {
		opErr.Alerts = env.ErrorAlerts()
	}
	if len(opErr.Alerts) > 0 {
		texts := make([]string, 0, len(opErr.Alerts))
		for _, a := range opErr.Alerts {
			texts = append(texts, a.Text)
		}
		body = strings.Join(texts, "; ")
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		opErr.Err = fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		opErr.Err = fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		opErr.Err = fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		opErr.Err = fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		opErr.Err = fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		opErr.Err = fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		opErr.Err = fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		opErr.Err = fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}

	return opErr
}
