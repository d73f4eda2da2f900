package models

// Alert is a single message attached to a Traffic Ops API response.
type Alert struct {
	// Text is the human-readable alert message.
	Text string `json:"text"`

	// Level is one of "success", "info", "warning" or "error".
	Level string `json:"level"`
}

// Envelope is the wrapper every Traffic Ops API endpoint responds with.
// Response holds the endpoint-specific payload and is left undecoded so
// callers can check its shape.
type Envelope struct {
	Response JSONData `json:"response,omitempty"`
	Alerts   []Alert  `json:"alerts,omitempty"`
}

// ErrorAlerts returns only the alerts with level "error".
func (e Envelope) ErrorAlerts() []Alert {
	var out []Alert
	for _, a := range e.Alerts {
		if a.Level == "error" {
			out = append(out, a)
		}
	}
	return out
}
