package fixtures

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/to-api-contract/internal/adapter"
	"github.com/MKhiriev/to-api-contract/internal/config"
	"github.com/MKhiriev/to-api-contract/internal/logger"
)

// exitRecorder captures exit codes instead of terminating the test binary.
type exitRecorder struct {
	codes []int
}

func (r *exitRecorder) exit(code int) {
	r.codes = append(r.codes, code)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvUser, config.EnvPassword} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func ptr(s string) *string {
	return &s
}

func testOptions(url string) *config.Options {
	return &config.Options{
		User:     ptr("admin"),
		Password: ptr("twelve12"),
		URL:      ptr(url),
	}
}

func writePrerequisites(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return writeRaw(t, string(data))
}

func writeRaw(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultPrerequisitesFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// newTestFixtures wires f to session and a seeded random source. The
// returned buffer receives the JSON log output.
func newTestFixtures(t *testing.T, opts *config.Options, session adapter.TOSession, exits *exitRecorder) (*Fixtures, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	log := logger.New(buf, "fixtures-test", zerolog.DebugLevel)

	f := New(opts, nil, log,
		WithExit(exits.exit),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithSessionFactory(func(adapter.Config, *logger.Logger) (adapter.TOSession, error) {
			return session, nil
		}),
	)
	return f, buf
}

func writeOver(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
