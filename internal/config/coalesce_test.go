// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalesce_ArgumentWins(t *testing.T) {
	t.Setenv("TEST_COALESCE", "from-env")
	file := map[string]any{"k": "from-file"}

	tests := []struct {
		name string
		file map[string]any
	}{
		{name: "file and env set", file: file},
		{name: "no file", file: nil},
		{name: "file with wrong type", file: map[string]any{"k": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := Coalesce(ptr("x"), "k", tt.file, "TEST_COALESCE")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "x", got)
		})
	}
}

// TestCoalesce_EmptyArgumentStillWins verifies that an explicitly given empty
// argument shadows the other sources.
func TestCoalesce_EmptyArgumentStillWins(t *testing.T) {
	t.Setenv("TEST_COALESCE", "from-env")

	got, ok, err := Coalesce(ptr(""), "k", map[string]any{"k": "y"}, "TEST_COALESCE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestCoalesce_FileValue(t *testing.T) {
	t.Setenv("TEST_COALESCE", "from-env")

	got, ok, err := Coalesce(nil, "k", map[string]any{"k": "y"}, "TEST_COALESCE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "y", got)
}

func TestCoalesce_FileWrongType(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "int", value: 5, want: "int"},
		{name: "decoded number", value: float64(5), want: "number"},
		{name: "bool", value: true, want: "boolean"},
		{name: "object", value: map[string]any{}, want: "object"},
		{name: "array", value: []any{"a"}, want: "array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := Coalesce(nil, "k", map[string]any{"k": tt.value}, "TEST_COALESCE")
			require.Error(t, err)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrWrongType)
			assert.Contains(t, err.Error(), "got: '"+tt.want+"'")
		})
	}
}

// TestCoalesce_FileNullFallsThrough verifies that a JSON null in the file is
// treated as absent.
func TestCoalesce_FileNullFallsThrough(t *testing.T) {
	t.Setenv("TEST_COALESCE", "z")

	got, ok, err := Coalesce(nil, "k", map[string]any{"k": nil}, "TEST_COALESCE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "z", got)
}

func TestCoalesce_MissingFileKeyFallsThrough(t *testing.T) {
	t.Setenv("TEST_COALESCE", "z")

	got, ok, err := Coalesce(nil, "k", map[string]any{"other": "y"}, "TEST_COALESCE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "z", got)
}

func TestCoalesce_Environment(t *testing.T) {
	t.Setenv("TEST_COALESCE", "z")

	got, ok, err := Coalesce(nil, "k", nil, "TEST_COALESCE")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "z", got)
}

func TestCoalesce_Absent(t *testing.T) {
	unsetEnv(t, "TEST_COALESCE")

	got, ok, err := Coalesce(nil, "k", nil, "TEST_COALESCE")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}
