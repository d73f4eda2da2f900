package fakeops

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

const (
	levelSuccess = "success"
	levelError   = "error"
)

// writeJSON serializes data and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error.
func writeJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// writeEnvelope wraps response in the Traffic Ops envelope with a single
// alert. An empty text means no alerts.
func writeEnvelope(w http.ResponseWriter, r *http.Request, statusCode int, response any, level, text string) {
	env := models.Envelope{Response: response}
	if text != "" {
		env.Alerts = []models.Alert{{Text: text, Level: level}}
	}

	if _, err := writeJSON(w, env, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, text string) {
	writeEnvelope(w, r, statusCode, nil, levelError, text)
}
