package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_ErrorAlerts(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{
		"alerts": [
			{"text": "cdn was created.", "level": "success"},
			{"text": "name already exists", "level": "error"}
		],
		"response": {"name": "cdn1"}
	}`), &env))

	assert.Equal(t, []Alert{{Text: "name already exists", Level: "error"}}, env.ErrorAlerts())
	assert.Equal(t, map[string]any{"name": "cdn1"}, env.Response)
}
